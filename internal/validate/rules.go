// Package validate checks the registration form one step at a time.
package validate

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/initializ/enroll/internal/form"
)

const dateLayout = "2006-01-02"

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,16}$`)
	letterPattern   = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
)

// Accepted media types and limits for the document step.
var (
	ProfilePictureTypes = []string{"image/jpeg", "image/png", "image/webp"}
	ResumeTypes         = []string{"application/pdf"}
)

const (
	ProfilePictureMaxMB = 2
	ResumeMaxMB         = 3
	MinPhoneDigits      = 10
	MinBioLength        = 30
	AdultAge            = 18
)

// IsAdult reports whether someone born on dob (YYYY-MM-DD) is at least
// 18 on today. Month and day only matter when the year difference is
// exactly 18.
func IsAdult(dob string, today time.Time) bool {
	if dob == "" {
		return false
	}
	born, err := time.Parse(dateLayout, dob)
	if err != nil {
		return false
	}

	years := today.Year() - born.Year()
	if years < AdultAge {
		return false
	}
	if years > AdultAge {
		return true
	}
	m := int(today.Month()) - int(born.Month())
	if m < 0 {
		return false
	}
	if m > 0 {
		return true
	}
	return today.Day() >= born.Day()
}

// IsValidEmail accepts local@domain.tld with no whitespace.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidUsername accepts 3-16 letters, digits or underscores.
func IsValidUsername(u string) bool {
	return usernamePattern.MatchString(u)
}

// IsValidPassword requires 8+ characters with a letter and a digit.
func IsValidPassword(pwd string) bool {
	if pwd == "" || utf8.RuneCountInString(pwd) < 8 {
		return false
	}
	return hasLetterAndDigit(pwd)
}

func hasLetterAndDigit(s string) bool {
	return letterPattern.MatchString(s) && digitPattern.MatchString(s)
}

// IsValidFileSize reports whether f is present and no larger than maxMB MiB.
func IsValidFileSize(f *form.FileSelection, maxMB float64) bool {
	if f == nil {
		return false
	}
	maxBytes := maxMB * 1024 * 1024
	return float64(f.Size) <= maxBytes
}

// CountDigits returns how many decimal digits s holds.
func CountDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func isAllowedType(mediaType string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(a, mediaType) {
			return true
		}
	}
	return false
}
