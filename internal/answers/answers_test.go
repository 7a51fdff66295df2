package answers

import (
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/initializ/enroll/internal/form"
)

const sample = `firstName: Ada
lastName: Lovelace
email: ada@example.com
phone: 5550100199
country: gb
dob: 1990-12-10
username: ada_l
password: engine1843
confirmPassword: engine1843
securityQuestion: pet
securityAnswer: Puff
terms: true
profilePicture: ada.png
resume: docs/ada.pdf
bio: I build terminal tools for fun
`

func TestParse_NormalizesScalars(t *testing.T) {
	a, err := Parse([]byte(sample), "/data")
	require.NoError(t, err)

	assert.Equal(t, "5550100199", a.Values[form.Phone])
	assert.Equal(t, "1990-12-10", a.Values[form.DOB])
	require.NotNil(t, a.Terms)
	assert.True(t, *a.Terms)
	assert.Equal(t, filepath.Join("/data", "ada.png"), a.Files[form.ProfilePicture])
	assert.Equal(t, filepath.Join("/data", "docs", "ada.pdf"), a.Files[form.Resume])
	assert.NotContains(t, a.Values, form.Terms)
	assert.NotContains(t, a.Values, form.Resume)
}

func TestParse_NumbersKeepTheirText(t *testing.T) {
	tests := []struct {
		yaml  string
		field string
		want  string
	}{
		{"phone: +15551234567\n", form.Phone, "+15551234567"},
		{"phone: 07700900123\n", form.Phone, "07700900123"},
		{"phone: 0755\n", form.Phone, "0755"},
		{"phone: 1_000\n", form.Phone, "1_000"},
		{"username: 1e5\n", form.Username, "1e5"},
		{"securityAnswer: 0x1F\n", form.SecurityAnswer, "0x1F"},
		{"securityAnswer: 3.50\n", form.SecurityAnswer, "3.50"},
		{"lastName: ~\n", form.LastName, ""},
		{"dob: 1990-02-03\n", form.DOB, "1990-02-03"},
	}
	for _, tt := range tests {
		t.Run(tt.yaml, func(t *testing.T) {
			a, err := Parse([]byte(tt.yaml), ".")
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Values[tt.field])
		})
	}
}

func TestParse_EmptyAndNonMapping(t *testing.T) {
	a, err := Parse([]byte("# nothing yet\n"), ".")
	require.NoError(t, err)
	assert.Empty(t, a.Values)
	assert.Nil(t, a.Terms)

	_, err = Parse([]byte("- firstName\n- lastName\n"), ".")
	require.Error(t, err)
	var se *SchemaError
	assert.False(t, errors.As(err, &se))
}

func TestParse_AbsoluteFilePathKept(t *testing.T) {
	a, err := Parse([]byte("resume: /srv/cv.pdf\n"), "/data")
	require.NoError(t, err)
	assert.Equal(t, "/srv/cv.pdf", a.Files[form.Resume])
	assert.Nil(t, a.Terms)
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "nickname: ada\n"},
		{"terms as string", "terms: \"yes\"\n"},
		{"bio as list", "bio: [a, b]\n"},
		{"malformed date", "dob: 10/12/1990\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), ".")
			var se *SchemaError
			require.True(t, errors.As(err, &se), "got %v", err)
			assert.NotEmpty(t, se.Errors)
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("firstName: [\n"), ".")
	require.Error(t, err)
	var se *SchemaError
	assert.False(t, errors.As(err, &se))
}

func TestLoad_SchemaErrorCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: blue\n"), 0o644))

	_, err := Load(path)
	var se *SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, path, se.Path)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "ada.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 2, 2))))
	require.NoError(t, f.Close())
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "ada.pdf"), []byte("%PDF-1.4\n%%EOF\n"), 0o644))

	path := filepath.Join(dir, "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	a, err := Load(path)
	require.NoError(t, err)

	acc := form.NewValues()
	require.NoError(t, a.Apply(context.Background(), acc))

	assert.Equal(t, "Ada", acc.Value(form.FirstName))
	assert.Equal(t, form.Checked, acc.Value(form.Terms))
	require.NotNil(t, acc.File(form.ProfilePicture))
	assert.Equal(t, "image/png", acc.File(form.ProfilePicture).MediaType)
	require.NotNil(t, acc.File(form.Resume))
	assert.Equal(t, "application/pdf", acc.File(form.Resume).MediaType)
}

func TestApply_MissingFile(t *testing.T) {
	a, err := Parse([]byte("resume: missing.pdf\n"), t.TempDir())
	require.NoError(t, err)

	acc := form.NewValues()
	acc.SetValue(form.FirstName, "kept")
	err = a.Apply(context.Background(), acc)
	require.Error(t, err)
	assert.Equal(t, "kept", acc.Value(form.FirstName))
}

func TestApply_TermsFalseUnchecks(t *testing.T) {
	a, err := Parse([]byte("terms: false\n"), ".")
	require.NoError(t, err)

	acc := form.NewValues()
	acc.SetValue(form.Terms, form.Checked)
	require.NoError(t, a.Apply(context.Background(), acc))
	assert.Empty(t, acc.Value(form.Terms))
}
