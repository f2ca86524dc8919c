package register

import (
	"net/mail"
	"slices"
	"strings"

	"orbosis/pkg/types"
)

// Attachment constraints. The browser UI only advertised these; the edge
// enforces them.
const maxAttachmentBytes = 5 << 20

var allowedAttachmentTypes = []string{"application/pdf", "image/jpeg", "image/jpg", "image/png"}

func invalid(field, message string) *types.ValidationError {
	return &types.ValidationError{Field: field, Message: message}
}

func required(v string) bool {
	return strings.TrimSpace(v) != ""
}

func validEmail(v string) bool {
	_, err := mail.ParseAddress(strings.TrimSpace(v))
	return err == nil
}

func oneOf(v string, allowed []string) bool {
	return slices.Contains(allowed, v)
}

// Validation order is user-facing: the first missing or invalid field is
// the one named in the error, checked identity fields first, then the
// role-specific selectors, then the consent checkbox.

func validateDonor(form *types.DonorRegistrationForm) *types.ValidationError {
	if !required(form.FullName) {
		return invalid("fullName", "full name is required")
	}
	if !required(form.Email) {
		return invalid("email", "email is required")
	}
	if !validEmail(form.Email) {
		return invalid("email", "enter a valid email address")
	}
	if !required(form.ContactNumber) {
		return invalid("contactNumber", "contact number is required")
	}
	if _, ok := parseAmount(form.DonationAmount); !ok {
		return invalid("donationAmount", "enter a valid non-negative amount")
	}
	if !required(form.DonationFrequency) {
		return invalid("donationFrequency", "please select donation frequency")
	}
	if !oneOf(form.DonationFrequency, types.DonationFrequencies) {
		return invalid("donationFrequency", "unknown donation frequency")
	}
	if form.ModeOfDonation != "" && !oneOf(form.ModeOfDonation, types.DonationModes) {
		return invalid("modeofDonation", "unknown mode of donation")
	}
	if form.ConsentForUpdate != "" && !oneOf(form.ConsentForUpdate, types.ConsentOptions) {
		return invalid("consentForUpdate", "unknown consent preference")
	}
	if !form.TermsAccepted {
		return invalid("termsAccepted", "please accept the terms and conditions")
	}
	if err := validateAttachment("uploadPaymentProof", form.PaymentProof); err != nil {
		return err
	}

	return nil
}

func validateVolunteer(form *types.VolunteerRegistrationForm) *types.ValidationError {
	if !required(form.FullName) {
		return invalid("fullName", "full name is required")
	}
	if !required(form.Email) {
		return invalid("email", "email is required")
	}
	if !validEmail(form.Email) {
		return invalid("email", "enter a valid email address")
	}
	if !required(form.ContactNumber) {
		return invalid("contactNumber", "contact number is required")
	}
	if !required(form.DOB) {
		return invalid("dob", "date of birth is required")
	}
	if !required(form.Gender) {
		return invalid("gender", "please select your gender")
	}
	if !required(form.AreaOfVolunteering) {
		return invalid("areaOfVolunteering", "please select your preferred area of volunteering")
	}
	if !oneOf(form.AreaOfVolunteering, types.VolunteeringAreas) {
		return invalid("areaOfVolunteering", "unknown area of volunteering")
	}
	if !required(form.Availability) {
		return invalid("availability", "please select your availability")
	}
	if !oneOf(form.Availability, types.Availabilities) {
		return invalid("availability", "unknown availability")
	}
	if !form.TermsAccepted {
		return invalid("termsAccepted", "please accept the terms and conditions")
	}
	if err := validateAttachment("uploadIdProof", form.IDProof); err != nil {
		return err
	}

	return nil
}

func validateBeneficiary(form *types.BeneficiaryRegistrationForm) *types.ValidationError {
	if !required(form.FullName) {
		return invalid("fullName", "full name is required")
	}
	if !required(form.Gender) {
		return invalid("gender", "please select your gender")
	}
	if !required(form.DOB) {
		return invalid("dob", "date of birth is required")
	}
	if !required(form.ContactNumber) {
		return invalid("contactNumber", "contact number is required")
	}
	if len(form.TypesOfSupport) == 0 {
		return invalid("typesOfSupport", "please select at least one type of support")
	}
	for _, support := range form.TypesOfSupport {
		if !oneOf(support, types.SupportTypes) {
			return invalid("typesOfSupport", "unknown type of support")
		}
	}
	if !form.Consent {
		return invalid("consent", "consent is required")
	}

	return nil
}

func validateLogin(form *types.LoginForm) *types.ValidationError {
	if !required(form.Role) {
		return invalid("role", "please select a role")
	}
	if !types.Role(form.Role).Valid() {
		return invalid("role", "unknown role")
	}
	if !required(form.Email) {
		return invalid("email", "email is required")
	}
	if !validEmail(form.Email) {
		return invalid("email", "enter a valid email address")
	}
	if !required(form.Password) {
		return invalid("password", "password is required")
	}

	return nil
}

func validateAttachment(field string, attachment *types.Attachment) *types.ValidationError {
	if attachment == nil {
		return nil
	}

	if attachment.Size() > maxAttachmentBytes {
		return invalid(field, "file exceeds the 5MB limit")
	}

	contentType := strings.ToLower(strings.TrimSpace(attachment.ContentType))
	if !oneOf(contentType, allowedAttachmentTypes) {
		return invalid(field, "only PDF, JPG, JPEG and PNG files are accepted")
	}

	return nil
}
