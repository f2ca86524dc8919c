package types

// Attachment is an uploaded file forwarded to the upstream backend as a
// multipart part. The bytes are never stored locally.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (a *Attachment) Size() int64 {
	if a == nil {
		return 0
	}
	return int64(len(a.Data))
}

// Form field names mirror the browser form inputs, hence the form tags.

type DonorRegistrationForm struct {
	FullName          string `form:"fullName"`
	OrganisationName  string `form:"organisationName"`
	ContactNumber     string `form:"contactNumber"`
	Email             string `form:"email"`
	Address           string `form:"address"`
	PANNumber         string `form:"panNumber"`
	GSTNumber         string `form:"gstNumber"`
	ModeOfDonation    string `form:"modeofDonation"`
	DonationAmount    string `form:"donationAmount"`
	DonationFrequency string `form:"donationFrequency"`
	ConsentForUpdate  string `form:"consentForUpdate"`
	TermsAccepted     bool   `form:"termsAccepted"`

	PaymentProof *Attachment `form:"-"`
}

type VolunteerRegistrationForm struct {
	FullName               string   `form:"fullName"`
	Gender                 string   `form:"gender"`
	DOB                    string   `form:"dob"`
	ContactNumber          string   `form:"contactNumber"`
	Email                  string   `form:"email"`
	Address                string   `form:"address"`
	Skills                 []string `form:"skills"`
	Profession             string   `form:"profession"`
	AreaOfVolunteering     string   `form:"areaOfVolunteering"`
	Availability           string   `form:"availability"`
	EmergencyContactNumber string   `form:"emergencyContactNumber"`
	TermsAccepted          bool     `form:"termsAccepted"`

	IDProof *Attachment `form:"-"`
}

type BeneficiaryRegistrationForm struct {
	FullName           string   `form:"fullName"`
	Gender             string   `form:"gender"`
	DOB                string   `form:"dob"`
	ContactNumber      string   `form:"contactNumber"`
	Address            string   `form:"address"`
	FamilyDetails      string   `form:"familyDetails"`
	TypesOfSupport     []string `form:"typesOfSupport"`
	GovernmentID       string   `form:"governmentId"`
	SpecialRequirement string   `form:"specialRequirement"`
	Consent            bool     `form:"consent"`
}

type LoginForm struct {
	Role     string `form:"role"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

type ContactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

type NewsletterSignupForm struct {
	Email string `form:"email"`
}
