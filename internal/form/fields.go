// Package form holds the registration form model: field names, steps,
// file selections and the accessor every front end reads and writes.
package form

// Field names. They double as the keys of the submitted payload.
const (
	FirstName        = "firstName"
	LastName         = "lastName"
	Email            = "email"
	Phone            = "phone"
	Country          = "country"
	DOB              = "dob"
	Username         = "username"
	Password         = "password"
	ConfirmPassword  = "confirmPassword"
	SecurityQuestion = "securityQuestion"
	SecurityAnswer   = "securityAnswer"
	Terms            = "terms"
	ProfilePicture   = "profilePicture"
	Resume           = "resume"
	Bio              = "bio"
)

// Checked is the value a set checkbox carries, as in an HTML form.
const Checked = "on"

// FileFields are the inputs that hold a file selection instead of text.
var FileFields = []string{ProfilePicture, Resume}

// IsFileField reports whether name is a file input.
func IsFileField(name string) bool {
	for _, f := range FileFields {
		if f == name {
			return true
		}
	}
	return false
}

// Step groups the fields shown on one screen of the wizard.
type Step struct {
	Index  int
	Key    string
	Title  string
	Fields []string
}

// Steps are the wizard screens in order.
var Steps = []Step{
	{
		Index:  0,
		Key:    "personal",
		Title:  "Personal",
		Fields: []string{FirstName, LastName, Email, Phone, Country, DOB},
	},
	{
		Index:  1,
		Key:    "account",
		Title:  "Account",
		Fields: []string{Username, Password, ConfirmPassword, SecurityQuestion, SecurityAnswer, Terms},
	},
	{
		Index:  2,
		Key:    "documents",
		Title:  "Documents",
		Fields: []string{ProfilePicture, Resume, Bio},
	},
}

// StepCount is the number of wizard screens.
var StepCount = len(Steps)

// AllFields returns every field name in step order.
func AllFields() []string {
	var out []string
	for _, s := range Steps {
		out = append(out, s.Fields...)
	}
	return out
}

// Labels are the human-facing names of each field.
var Labels = map[string]string{
	FirstName:        "First name",
	LastName:         "Last name",
	Email:            "Email",
	Phone:            "Phone",
	Country:          "Country",
	DOB:              "Date of birth (YYYY-MM-DD)",
	Username:         "Username",
	Password:         "Password",
	ConfirmPassword:  "Confirm password",
	SecurityQuestion: "Security question",
	SecurityAnswer:   "Security answer",
	Terms:            "I accept the terms and conditions",
	ProfilePicture:   "Profile picture (JPG, PNG or WEBP, max 2 MB)",
	Resume:           "Resume (PDF, max 3 MB)",
	Bio:              "Short bio (min 30 characters)",
}
