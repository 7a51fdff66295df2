package validate

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/initializ/enroll/internal/form"
)

// personalInfo is the first step as the struct validator sees it.
type personalInfo struct {
	FirstName string `field:"firstName" validate:"required"`
	LastName  string `field:"lastName" validate:"required"`
	Email     string `field:"email" validate:"required,loose_email"`
	Phone     string `field:"phone" validate:"required,min_digits=10"`
	Country   string `field:"country" validate:"required"`
	DOB       string `field:"dob" validate:"required,adult"`
}

// accountInfo is the second step. Passwords are not trimmed.
type accountInfo struct {
	Username         string `field:"username" validate:"required,username"`
	Password         string `field:"password" validate:"required,min=8,letters_digits"`
	ConfirmPassword  string `field:"confirmPassword" validate:"required,eqfield=Password"`
	SecurityQuestion string `field:"securityQuestion" validate:"required"`
	SecurityAnswer   string `field:"securityAnswer" validate:"required"`
	Terms            bool   `field:"terms" validate:"required"`
}

// documentsInfo carries the text part of the third step; files are
// checked separately.
type documentsInfo struct {
	Bio string `field:"bio" validate:"required,min=30"`
}

// messages maps field -> failing tag -> message. The "*" entry covers
// every tag other than "required".
var messages = map[string]map[string]string{
	form.FirstName:        {"required": "First name is required."},
	form.LastName:         {"required": "Last name is required."},
	form.Email:            {"required": "Email is required.", "*": "Enter a valid email."},
	form.Phone:            {"required": "Phone number is required.", "*": "Enter at least 10 digits."},
	form.Country:          {"required": "Please select your country."},
	form.DOB:              {"required": "Date of birth is required.", "*": "You must be at least 18 years old."},
	form.Username:         {"required": "Username is required.", "*": "3–16 chars, letters/numbers/underscore."},
	form.Password:         {"required": "Password is required.", "*": "Min 8 chars, must have letters and numbers."},
	form.ConfirmPassword:  {"required": "Please confirm password.", "*": "Passwords do not match."},
	form.SecurityQuestion: {"required": "Select a security question."},
	form.SecurityAnswer:   {"required": "Security answer is required."},
	form.Terms:            {"required": "You must accept the terms."},
	form.Bio:              {"required": "Please provide a short bio.", "*": "Bio must be at least 30 characters."},
}

// File messages, checked in order: presence, type, size.
const (
	msgProfileRequired = "Profile picture is required."
	msgProfileType     = "Only JPG, PNG, or WEBP allowed."
	msgProfileSize     = "Max size is 2 MB."
	msgResumeRequired  = "Resume is required."
	msgResumeType      = "Only PDF files allowed."
	msgResumeSize      = "Max size is 3 MB."
)

// Validator runs the per-step rules against a form accessor.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock replaces the clock used for the age check.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// New builds a Validator with the registration rules registered.
func New(opts ...Option) *Validator {
	val := &Validator{
		v:   validator.New(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(val)
	}

	val.v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("field"); name != "" {
			return name
		}
		return fld.Name
	})

	// Registration only fails on an empty tag name or nil func, neither
	// of which can happen here.
	_ = val.v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = val.v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return IsValidUsername(fl.Field().String())
	})
	_ = val.v.RegisterValidation("letters_digits", func(fl validator.FieldLevel) bool {
		return hasLetterAndDigit(fl.Field().String())
	})
	_ = val.v.RegisterValidation("min_digits", func(fl validator.FieldLevel) bool {
		min, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return CountDigits(fl.Field().String()) >= min
	})
	_ = val.v.RegisterValidation("adult", func(fl validator.FieldLevel) bool {
		return IsAdult(fl.Field().String(), val.now())
	})

	return val
}

// ValidateStep clears the errors of step's fields, runs every rule of
// that step and records a message on each failing field. It reports
// whether the step is valid. Unknown step indexes are invalid and leave
// the form untouched.
func (val *Validator) ValidateStep(acc form.Accessor, step int) bool {
	if step < 0 || step >= form.StepCount {
		return false
	}
	acc.ClearErrors(form.Steps[step].Fields...)

	ok := true
	switch step {
	case 0:
		ok = val.check(acc, personalInfo{
			FirstName: trimmed(acc, form.FirstName),
			LastName:  trimmed(acc, form.LastName),
			Email:     trimmed(acc, form.Email),
			Phone:     trimmed(acc, form.Phone),
			Country:   acc.Value(form.Country),
			DOB:       acc.Value(form.DOB),
		})
	case 1:
		ok = val.check(acc, accountInfo{
			Username:         trimmed(acc, form.Username),
			Password:         acc.Value(form.Password),
			ConfirmPassword:  acc.Value(form.ConfirmPassword),
			SecurityQuestion: acc.Value(form.SecurityQuestion),
			SecurityAnswer:   trimmed(acc, form.SecurityAnswer),
			Terms:            acc.Value(form.Terms) != "",
		})
	case 2:
		filesOK := checkFile(acc, form.ProfilePicture, ProfilePictureTypes, ProfilePictureMaxMB,
			msgProfileRequired, msgProfileType, msgProfileSize)
		resumeOK := checkFile(acc, form.Resume, ResumeTypes, ResumeMaxMB,
			msgResumeRequired, msgResumeType, msgResumeSize)
		bioOK := val.check(acc, documentsInfo{Bio: trimmed(acc, form.Bio)})
		ok = filesOK && resumeOK && bioOK
	}
	return ok
}

func (val *Validator) check(acc form.Accessor, s any) bool {
	err := val.v.Struct(s)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable with a non-struct argument.
		return false
	}
	for _, fe := range verrs {
		acc.SetError(fe.Field(), messageFor(fe.Field(), fe.Tag()))
	}
	return false
}

func messageFor(field, tag string) string {
	m := messages[field]
	if msg, ok := m[tag]; ok {
		return msg
	}
	if msg, ok := m["*"]; ok {
		return msg
	}
	return "Invalid value."
}

func checkFile(acc form.Accessor, field string, allowed []string, maxMB float64, required, badType, tooBig string) bool {
	f := acc.File(field)
	switch {
	case f == nil:
		acc.SetError(field, required)
	case !isAllowedType(f.MediaType, allowed):
		acc.SetError(field, badType)
	case !IsValidFileSize(f, maxMB):
		acc.SetError(field, tooBig)
	default:
		return true
	}
	return false
}

func trimmed(acc form.Accessor, name string) string {
	return strings.TrimSpace(acc.Value(name))
}
