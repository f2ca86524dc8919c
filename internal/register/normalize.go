package register

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"orbosis/pkg/types"
)

// lastID makes locally generated ids monotonic even when two submissions
// land in the same millisecond.
var lastID atomic.Int64

func newLocalID(now time.Time) string {
	candidate := now.UnixMilli()
	for {
		last := lastID.Load()
		if candidate <= last {
			candidate = last + 1
		}
		if lastID.CompareAndSwap(last, candidate) {
			return strconv.FormatInt(candidate, 10)
		}
	}
}

// NewLocalID mints a timestamp-derived id for records created outside a
// form submission, such as seeded demo data.
func NewLocalID() string {
	return newLocalID(time.Now())
}

const joinDateLayout = "02/01/2006"

// parseAmount normalizes a numeric-looking form value. Empty input is a
// valid zero; the raw string is kept on the profile so confirmation
// screens can still say "Not specified".
func parseAmount(raw string) (int64, bool) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "₹", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return 0, true
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || value < 0 {
		return 0, false
	}

	return int64(value), true
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		// The browser form posted skills as one comma-separated value.
		for _, part := range strings.Split(skill, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func normalizeDonor(form *types.DonorRegistrationForm, now time.Time) *types.Profile {
	// validateDonor has already established the amount parses.
	amount, _ := parseAmount(form.DonationAmount)

	return &types.Profile{
		ID:                newLocalID(now),
		FullName:          strings.TrimSpace(form.FullName),
		Email:             strings.ToLower(strings.TrimSpace(form.Email)),
		Phone:             strings.TrimSpace(form.ContactNumber),
		Address:           strings.TrimSpace(form.Address),
		Role:              types.RoleDonor,
		RegistrationDate:  now.UTC().Format(time.RFC3339),
		JoinDate:          now.Format(joinDateLayout),
		OrganisationName:  strings.TrimSpace(form.OrganisationName),
		PANNumber:         strings.ToUpper(strings.TrimSpace(form.PANNumber)),
		GSTNumber:         strings.ToUpper(strings.TrimSpace(form.GSTNumber)),
		DonationAmount:    amount,
		DonationAmountRaw: strings.TrimSpace(form.DonationAmount),
		DonationFrequency: form.DonationFrequency,
		ModeOfDonation:    form.ModeOfDonation,
		ConsentForUpdate:  form.ConsentForUpdate,
	}
}

func normalizeVolunteer(form *types.VolunteerRegistrationForm, now time.Time) *types.Profile {
	return &types.Profile{
		ID:                     newLocalID(now),
		FullName:               strings.TrimSpace(form.FullName),
		Email:                  strings.ToLower(strings.TrimSpace(form.Email)),
		Phone:                  strings.TrimSpace(form.ContactNumber),
		Address:                strings.TrimSpace(form.Address),
		Role:                   types.RoleVolunteer,
		RegistrationDate:       now.UTC().Format(time.RFC3339),
		JoinDate:               now.Format(joinDateLayout),
		Gender:                 form.Gender,
		DOB:                    strings.TrimSpace(form.DOB),
		Skills:                 normalizeSkills(form.Skills),
		Profession:             strings.TrimSpace(form.Profession),
		AreaOfVolunteering:     form.AreaOfVolunteering,
		Availability:           form.Availability,
		EmergencyContactNumber: strings.TrimSpace(form.EmergencyContactNumber),
		TasksCompleted:         0,
		EventsAttended:         0,
		HoursVolunteered:       0,
	}
}

func normalizeBeneficiary(form *types.BeneficiaryRegistrationForm, now time.Time) *types.Profile {
	return &types.Profile{
		ID:                 newLocalID(now),
		FullName:           strings.TrimSpace(form.FullName),
		Phone:              strings.TrimSpace(form.ContactNumber),
		Address:            strings.TrimSpace(form.Address),
		Role:               types.RoleBeneficiary,
		RegistrationDate:   now.UTC().Format(time.RFC3339),
		JoinDate:           now.Format(joinDateLayout),
		Gender:             form.Gender,
		DOB:                strings.TrimSpace(form.DOB),
		FamilyDetails:      strings.TrimSpace(form.FamilyDetails),
		TypesOfSupport:     form.TypesOfSupport,
		GovernmentID:       strings.TrimSpace(form.GovernmentID),
		SpecialRequirement: strings.TrimSpace(form.SpecialRequirement),
		Consent:            form.Consent,
	}
}

// displayNameFromEmail is the login fallback identity: the part before
// the @ sign.
func displayNameFromEmail(email string) string {
	email = strings.TrimSpace(email)
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
