package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/initializ/enroll/internal/form"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestIsAdult(t *testing.T) {
	tests := []struct {
		name  string
		dob   string
		today time.Time
		want  bool
	}{
		{"18th birthday", "2000-01-01", date(2018, time.January, 1), true},
		{"day before 18th birthday", "2000-01-01", date(2017, time.December, 31), false},
		{"18 later in the year", "2000-06-15", date(2018, time.June, 14), false},
		{"18 month passed", "2000-06-15", date(2018, time.July, 1), true},
		{"19 years by calendar", "2000-12-31", date(2019, time.January, 1), true},
		{"17 years by calendar", "2001-01-01", date(2018, time.December, 31), false},
		{"empty", "", date(2018, time.January, 1), false},
		{"unparsable", "01/01/2000", date(2030, time.January, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAdult(tt.dob, tt.today))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@b.c"))
	assert.True(t, IsValidEmail("ada.lovelace@example.co.uk"))
	assert.False(t, IsValidEmail("a@b"))
	assert.False(t, IsValidEmail("a.com"))
	assert.False(t, IsValidEmail("a b@c.d"))
	assert.False(t, IsValidEmail("a@@b.c"))
}

func TestIsValidUsername(t *testing.T) {
	assert.False(t, IsValidUsername("ab"))
	assert.True(t, IsValidUsername("abc"))
	assert.True(t, IsValidUsername("abcdefghijklmnop"))
	assert.False(t, IsValidUsername("abcdefghijklmnopq"))
	assert.True(t, IsValidUsername("ada_99"))
	assert.False(t, IsValidUsername("ada-99"))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("abc12345"))
	assert.False(t, IsValidPassword("abcdefgh"))
	assert.False(t, IsValidPassword("1234567"))
	assert.False(t, IsValidPassword("12345678"))
	assert.False(t, IsValidPassword(""))
}

func TestIsValidFileSize(t *testing.T) {
	assert.False(t, IsValidFileSize(nil, 2))
	assert.True(t, IsValidFileSize(&form.FileSelection{Size: 2 * 1024 * 1024}, 2))
	assert.False(t, IsValidFileSize(&form.FileSelection{Size: 2*1024*1024 + 1}, 2))
}

func TestCountDigits(t *testing.T) {
	assert.Equal(t, 10, CountDigits("(555) 010-0199"))
	assert.Equal(t, 11, CountDigits("+1 (555) 010-0199"))
	assert.Equal(t, 0, CountDigits("call me"))
}
