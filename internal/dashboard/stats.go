// Package dashboard derives the read-only display statistics from the
// locally stored profile. Nothing here talks to the network.
package dashboard

import (
	"strconv"
	"time"

	"orbosis/pkg/types"
)

const defaultCause = "Women Empowerment"

// DonorStats computes the impact figures shown on the donor dashboard.
// One rupee of every thousand donated is counted as a beneficiary helped;
// the impact score is the amount in hundreds.
func DonorStats(profile *types.Profile) types.DonorStats {
	amount := profile.DonationAmount

	count := 0
	recent := []types.Donation{}
	if amount > 0 {
		count = 1
		recent = append(recent, types.Donation{
			ID:     profile.ID,
			Amount: amount,
			Cause:  defaultCause,
			Status: "Completed",
			Date:   profile.RegistrationDate,
		})
	}

	return types.DonorStats{
		TotalDonated:        amount,
		DonationsCount:      count,
		BeneficiariesHelped: amount / 1000,
		ImpactScore:         amount / 100,
		LastUpdated:         time.Now().UTC().Format(time.RFC3339),
		RecentDonations:     recent,
	}
}

func VolunteerStats(profile *types.Profile) types.VolunteerStats {
	return types.VolunteerStats{
		TasksCompleted:   profile.TasksCompleted,
		EventsAttended:   profile.EventsAttended,
		HoursVolunteered: profile.HoursVolunteered,
		LastUpdated:      time.Now().UTC().Format(time.RFC3339),
	}
}

// DisplayAmount renders the donation amount for confirmation screens.
// An amount the member never typed shows as "Not specified", not "0".
func DisplayAmount(profile *types.Profile) string {
	if profile.DonationAmountRaw == "" {
		return "Not specified"
	}
	return strconv.FormatInt(profile.DonationAmount, 10)
}

// FallbackDonor is shown when the store holds no record at all.
func FallbackDonor() *types.Profile {
	now := time.Now()
	return &types.Profile{
		ID:                "demo",
		FullName:          "Demo Donor",
		Email:             "demo@donor.com",
		Role:              types.RoleDonor,
		DonationAmount:    5000,
		DonationAmountRaw: "5000",
		DonationFrequency: "one-time",
		ModeOfDonation:    "bankTransfer",
		RegistrationDate:  now.UTC().Format(time.RFC3339),
		JoinDate:          now.Format("02/01/2006"),
	}
}
