package types

import (
	"errors"
	"fmt"
)

type Role string

const (
	RoleDonor       Role = "donor"
	RoleVolunteer   Role = "volunteer"
	RoleBeneficiary Role = "beneficiary"
	RoleAdmin       Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleVolunteer, RoleBeneficiary, RoleAdmin:
		return true
	}
	return false
}

// Profile is the denormalized member record written to the local store.
// It is a union over the roles; role-specific fields are zero for the
// roles that do not use them. Field names mirror the upstream API.
type Profile struct {
	ID               string `json:"id"`
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address,omitempty"`
	Role             Role   `json:"role"`
	RegistrationDate string `json:"registrationDate,omitempty"`
	JoinDate         string `json:"joinDate,omitempty"`

	// Donor
	OrganisationName string `json:"organisationName,omitempty"`
	PANNumber        string `json:"panNumber,omitempty"`
	GSTNumber        string `json:"gstNumber,omitempty"`
	DonationAmount   int64  `json:"donationAmount,omitempty"`
	// Raw form input for the amount. An empty raw value renders as
	// "Not specified" even though the normalized amount is 0.
	DonationAmountRaw string `json:"donationAmountRaw,omitempty"`
	DonationFrequency string `json:"donationFrequency,omitempty"`
	ModeOfDonation    string `json:"modeofDonation,omitempty"`
	ConsentForUpdate  string `json:"consentForUpdate,omitempty"`
	PaymentProofKey   string `json:"paymentProofKey,omitempty"`

	// Volunteer
	Gender                 string   `json:"gender,omitempty"`
	DOB                    string   `json:"dob,omitempty"`
	Skills                 []string `json:"skills,omitempty"`
	Profession             string   `json:"profession,omitempty"`
	AreaOfVolunteering     string   `json:"areaOfVolunteering,omitempty"`
	Availability           string   `json:"availability,omitempty"`
	EmergencyContactNumber string   `json:"emergencyContactNumber,omitempty"`
	IDProofKey             string   `json:"idProofKey,omitempty"`
	TasksCompleted         int      `json:"tasksCompleted,omitempty"`
	EventsAttended         int      `json:"eventsAttended,omitempty"`
	HoursVolunteered       int      `json:"hoursVolunteered,omitempty"`

	// Beneficiary
	FamilyDetails      string   `json:"familyDetails,omitempty"`
	TypesOfSupport     []string `json:"typesOfSupport,omitempty"`
	GovernmentID       string   `json:"governmentId,omitempty"`
	SpecialRequirement string   `json:"specialRequirement,omitempty"`
	Consent            bool     `json:"consent,omitempty"`
}

var (
	DonationFrequencies = []string{"one-time", "weekly", "monthly", "quarterly", "yearly"}
	DonationModes       = []string{"bankTransfer", "upi", "cheque", "cash", "qr", "netBanking", "creditCard", "debitCard"}
	ConsentOptions      = []string{"email", "whatsapp", "sms", "phone", "none"}
	VolunteeringAreas   = []string{"fieldWork", "online", "fundraising", "training"}
	Availabilities      = []string{"morning", "afternoon", "evening", "weekend"}
	SupportTypes        = []string{"training", "education", "health", "livelihood"}
)

// ValidationError names the first missing or invalid form field. It is
// the only error kind a submission surfaces to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrRoleImmutable   = errors.New("role cannot be changed once set")
)
