package steps

import (
	"github.com/initializ/enroll/internal/form"
	"github.com/initializ/enroll/internal/tui"
	"github.com/initializ/enroll/internal/tui/components"
)

// NewPersonalStep builds the personal information screen.
func NewPersonalStep(styles *tui.StyleSet, countries []form.Option) *FormStep {
	p := styles.Palette()
	return newFormStep(styles, "Personal Info", "👤", false,
		[]string{form.FirstName, form.LastName, form.Email},
		components.NewTextInput(form.FirstName, form.Labels[form.FirstName], "Ada", p),
		components.NewTextInput(form.LastName, form.Labels[form.LastName], "Lovelace", p),
		components.NewTextInput(form.Email, form.Labels[form.Email], "you@example.com", p),
		components.NewTextInput(form.Phone, form.Labels[form.Phone], "(555) 010-0199", p),
		components.NewSingleSelect(form.Country, form.Labels[form.Country], "Select your country", countries, p),
		components.NewTextInput(form.DOB, form.Labels[form.DOB], "YYYY-MM-DD", p),
	)
}
