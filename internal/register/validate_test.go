package register

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbosis/pkg/types"
)

func validDonorForm() *types.DonorRegistrationForm {
	return &types.DonorRegistrationForm{
		FullName:          "Asha Rao",
		Email:             "asha@example.com",
		ContactNumber:     "9876543210",
		DonationAmount:    "2500",
		DonationFrequency: "monthly",
		ModeOfDonation:    "upi",
		ConsentForUpdate:  "email",
		TermsAccepted:     true,
	}
}

func validVolunteerForm() *types.VolunteerRegistrationForm {
	return &types.VolunteerRegistrationForm{
		FullName:           "Ravi Kumar",
		Gender:             "male",
		DOB:                "1994-03-12",
		ContactNumber:      "9123456780",
		Email:              "ravi@example.com",
		AreaOfVolunteering: "fieldWork",
		Availability:       "weekend",
		TermsAccepted:      true,
	}
}

func validBeneficiaryForm() *types.BeneficiaryRegistrationForm {
	return &types.BeneficiaryRegistrationForm{
		FullName:       "Meena Devi",
		Gender:         "female",
		DOB:            "1988-07-01",
		ContactNumber:  "9012345678",
		TypesOfSupport: []string{"education", "health"},
		Consent:        true,
	}
}

func TestValidateDonor(t *testing.T) {
	t.Run("valid form passes", func(t *testing.T) {
		require.Nil(t, validateDonor(validDonorForm()))
	})

	t.Run("first failing field is reported", func(t *testing.T) {
		form := validDonorForm()
		form.FullName = "  "
		form.Email = ""

		err := validateDonor(form)
		require.NotNil(t, err)
		assert.Equal(t, "fullName", err.Field)
	})

	t.Run("malformed email", func(t *testing.T) {
		form := validDonorForm()
		form.Email = "not-an-email"

		err := validateDonor(form)
		require.NotNil(t, err)
		assert.Equal(t, "email", err.Field)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		form := validDonorForm()
		form.DonationAmount = "-500"

		err := validateDonor(form)
		require.NotNil(t, err)
		assert.Equal(t, "donationAmount", err.Field)
	})

	t.Run("non-numeric amount rejected", func(t *testing.T) {
		form := validDonorForm()
		form.DonationAmount = "lots"

		err := validateDonor(form)
		require.NotNil(t, err)
		assert.Equal(t, "donationAmount", err.Field)
	})

	t.Run("empty amount is fine", func(t *testing.T) {
		form := validDonorForm()
		form.DonationAmount = ""
		require.Nil(t, validateDonor(form))
	})

	t.Run("frequency must be selected", func(t *testing.T) {
		form := validDonorForm()
		form.DonationFrequency = ""

		err := validateDonor(form)
		require.NotNil(t, err)
		assert.Equal(t, "donationFrequency", err.Field)
	})

	t.Run("unknown frequency", func(t *testing.T) {
		form := validDonorForm()
		form.DonationFrequency = "hourly"

		err := validateDonor(form)
		require.NotNil(t, err)
		assert.Equal(t, "donationFrequency", err.Field)
	})

	t.Run("mode of donation is optional", func(t *testing.T) {
		form := validDonorForm()
		form.ModeOfDonation = ""
		require.Nil(t, validateDonor(form))
	})

	t.Run("terms must be accepted", func(t *testing.T) {
		form := validDonorForm()
		form.TermsAccepted = false

		err := validateDonor(form)
		require.NotNil(t, err)
		assert.Equal(t, "termsAccepted", err.Field)
	})
}

func TestValidateVolunteer(t *testing.T) {
	t.Run("valid form passes", func(t *testing.T) {
		require.Nil(t, validateVolunteer(validVolunteerForm()))
	})

	t.Run("missing availability", func(t *testing.T) {
		form := validVolunteerForm()
		form.Availability = ""

		err := validateVolunteer(form)
		require.NotNil(t, err)
		assert.Equal(t, "availability", err.Field)
	})

	t.Run("unknown area of volunteering", func(t *testing.T) {
		form := validVolunteerForm()
		form.AreaOfVolunteering = "astronomy"

		err := validateVolunteer(form)
		require.NotNil(t, err)
		assert.Equal(t, "areaOfVolunteering", err.Field)
	})
}

func TestValidateBeneficiary(t *testing.T) {
	t.Run("valid form passes", func(t *testing.T) {
		require.Nil(t, validateBeneficiary(validBeneficiaryForm()))
	})

	t.Run("at least one support type", func(t *testing.T) {
		form := validBeneficiaryForm()
		form.TypesOfSupport = nil

		err := validateBeneficiary(form)
		require.NotNil(t, err)
		assert.Equal(t, "typesOfSupport", err.Field)
	})

	t.Run("unknown support type", func(t *testing.T) {
		form := validBeneficiaryForm()
		form.TypesOfSupport = []string{"education", "time-travel"}

		err := validateBeneficiary(form)
		require.NotNil(t, err)
		assert.Equal(t, "typesOfSupport", err.Field)
	})

	t.Run("consent is mandatory", func(t *testing.T) {
		form := validBeneficiaryForm()
		form.Consent = false

		err := validateBeneficiary(form)
		require.NotNil(t, err)
		assert.Equal(t, "consent", err.Field)
	})
}

func TestValidateLogin(t *testing.T) {
	t.Run("unknown role", func(t *testing.T) {
		err := validateLogin(&types.LoginForm{Role: "sponsor", Email: "a@b.com", Password: "pw"})
		require.NotNil(t, err)
		assert.Equal(t, "role", err.Field)
	})

	t.Run("missing password", func(t *testing.T) {
		err := validateLogin(&types.LoginForm{Role: "donor", Email: "a@b.com"})
		require.NotNil(t, err)
		assert.Equal(t, "password", err.Field)
	})

	t.Run("valid", func(t *testing.T) {
		require.Nil(t, validateLogin(&types.LoginForm{Role: "volunteer", Email: "v@example.com", Password: "pw"}))
	})
}

func TestValidateAttachment(t *testing.T) {
	t.Run("nil attachment is fine", func(t *testing.T) {
		require.Nil(t, validateAttachment("uploadIdProof", nil))
	})

	t.Run("accepted type within limit", func(t *testing.T) {
		att := &types.Attachment{Filename: "proof.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")}
		require.Nil(t, validateAttachment("uploadPaymentProof", att))
	})

	t.Run("oversized file rejected", func(t *testing.T) {
		att := &types.Attachment{
			Filename:    "proof.png",
			ContentType: "image/png",
			Data:        bytes.Repeat([]byte{0xff}, maxAttachmentBytes+1),
		}

		err := validateAttachment("uploadPaymentProof", att)
		require.NotNil(t, err)
		assert.Equal(t, "uploadPaymentProof", err.Field)
		assert.Contains(t, err.Message, "5MB")
	})

	t.Run("disallowed content type rejected", func(t *testing.T) {
		att := &types.Attachment{Filename: "proof.gif", ContentType: "image/gif", Data: []byte{0x47}}

		err := validateAttachment("uploadIdProof", att)
		require.NotNil(t, err)
		assert.Equal(t, "uploadIdProof", err.Field)
	})
}
