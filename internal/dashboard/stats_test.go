package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbosis/pkg/types"
)

func TestDonorStats(t *testing.T) {
	t.Run("derives impact figures from the amount", func(t *testing.T) {
		stats := DonorStats(&types.Profile{
			ID:               "1719830000000",
			DonationAmount:   125000,
			RegistrationDate: "2026-03-14T09:30:00Z",
		})

		assert.Equal(t, int64(125000), stats.TotalDonated)
		assert.Equal(t, 1, stats.DonationsCount)
		assert.Equal(t, int64(125), stats.BeneficiariesHelped)
		assert.Equal(t, int64(1250), stats.ImpactScore)

		require.Len(t, stats.RecentDonations, 1)
		donation := stats.RecentDonations[0]
		assert.Equal(t, "1719830000000", donation.ID)
		assert.Equal(t, int64(125000), donation.Amount)
		assert.Equal(t, "Women Empowerment", donation.Cause)
		assert.Equal(t, "Completed", donation.Status)
		assert.Equal(t, "2026-03-14T09:30:00Z", donation.Date)
	})

	t.Run("zero amount means no donations yet", func(t *testing.T) {
		stats := DonorStats(&types.Profile{})

		assert.Zero(t, stats.TotalDonated)
		assert.Zero(t, stats.DonationsCount)
		assert.Zero(t, stats.BeneficiariesHelped)
		assert.Zero(t, stats.ImpactScore)
		assert.Empty(t, stats.RecentDonations)
		assert.NotNil(t, stats.RecentDonations, "serializes as [] not null")
	})

	t.Run("sub-thousand amount helps nobody yet", func(t *testing.T) {
		stats := DonorStats(&types.Profile{DonationAmount: 999})
		assert.Zero(t, stats.BeneficiariesHelped)
		assert.Equal(t, int64(9), stats.ImpactScore)
	})
}

func TestVolunteerStats(t *testing.T) {
	stats := VolunteerStats(&types.Profile{
		TasksCompleted:   4,
		EventsAttended:   2,
		HoursVolunteered: 16,
	})

	assert.Equal(t, 4, stats.TasksCompleted)
	assert.Equal(t, 2, stats.EventsAttended)
	assert.Equal(t, 16, stats.HoursVolunteered)
	assert.NotEmpty(t, stats.LastUpdated)
}

func TestDisplayAmount(t *testing.T) {
	assert.Equal(t, "Not specified", DisplayAmount(&types.Profile{}))
	assert.Equal(t, "2500", DisplayAmount(&types.Profile{DonationAmount: 2500, DonationAmountRaw: "2500"}))
	assert.Equal(t, "125000", DisplayAmount(&types.Profile{DonationAmount: 125000, DonationAmountRaw: "₹1,25,000"}))
}

func TestFallbackDonor(t *testing.T) {
	demo := FallbackDonor()

	assert.Equal(t, "demo", demo.ID)
	assert.Equal(t, "demo@donor.com", demo.Email)
	assert.Equal(t, types.RoleDonor, demo.Role)
	assert.Equal(t, int64(5000), demo.DonationAmount)
	assert.Equal(t, "5000", demo.DonationAmountRaw)
}
