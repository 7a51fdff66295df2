// Package formtest provides registration form fixtures for tests.
package formtest

import (
	"time"

	"github.com/initializ/enroll/internal/form"
)

// Today is the fixed date fixtures are valid against.
var Today = time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)

// Clock returns Today; pass it to validate.WithClock.
func Clock() time.Time { return Today }

// ValidBio is exactly 30 characters.
const ValidBio = "I build terminal tools for fun"

// Valid returns a form that passes every step.
func Valid() *form.Values {
	v := form.NewValues()
	v.SetValue(form.FirstName, "Ada")
	v.SetValue(form.LastName, "Lovelace")
	v.SetValue(form.Email, "ada@example.com")
	v.SetValue(form.Phone, "(555) 010-0199")
	v.SetValue(form.Country, "gb")
	v.SetValue(form.DOB, "1990-12-10")
	v.SetValue(form.Username, "ada_l")
	v.SetValue(form.Password, "engine1843")
	v.SetValue(form.ConfirmPassword, "engine1843")
	v.SetValue(form.SecurityQuestion, "pet")
	v.SetValue(form.SecurityAnswer, "Puff")
	v.SetValue(form.Terms, form.Checked)
	v.SetFile(form.ProfilePicture, &form.FileSelection{
		Path:      "/tmp/ada.png",
		Name:      "ada.png",
		Size:      512 * 1024,
		MediaType: "image/png",
	})
	v.SetFile(form.Resume, &form.FileSelection{
		Path:      "/tmp/ada.pdf",
		Name:      "ada.pdf",
		Size:      1024 * 1024,
		MediaType: "application/pdf",
	})
	v.SetValue(form.Bio, ValidBio)
	return v
}
