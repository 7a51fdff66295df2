package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/initializ/enroll/internal/form"
)

// prompter asks for one value at a time.
type prompter interface {
	Text(label, defaultVal string) (string, error)
	Password(label string) (string, error)
	Select(label string, items []form.Option, current string) (string, error)
	Confirm(label string, current bool) (bool, error)
}

// promptuiPrompter prompts on the terminal with promptui.
type promptuiPrompter struct{}

func runPrompt(p promptui.Prompt) (string, error) {
	v, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", p.Label, err)
	}
	return v, nil
}

// Text offers defaultVal for editing.
func (promptuiPrompter) Text(label, defaultVal string) (string, error) {
	return runPrompt(promptui.Prompt{Label: label, Default: defaultVal, AllowEdit: true})
}

// Password never shows the current value; the form keeps it unless replaced.
func (promptuiPrompter) Password(label string) (string, error) {
	return runPrompt(promptui.Prompt{Label: label, Mask: '*'})
}

// Select presents the options and returns the chosen value.
func (promptuiPrompter) Select(label string, items []form.Option, current string) (string, error) {
	labels := make([]string, len(items))
	cursor := 0
	for i, it := range items {
		labels[i] = it.Label
		if it.Value == current {
			cursor = i
		}
	}
	idx, _, err := (&promptui.Select{Label: label, Items: labels, CursorPos: cursor, Size: len(labels)}).Run()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", label, err)
	}
	return items[idx].Value, nil
}

// Confirm asks a yes/no question. A "no" answer is not an error.
func (promptuiPrompter) Confirm(label string, current bool) (bool, error) {
	def := "n"
	if current {
		def = "y"
	}
	_, err := (&promptui.Prompt{Label: label, IsConfirm: true, Default: def}).Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
		return false, fmt.Errorf("reading %s: %w", label, err)
	default:
		// promptui answers "no" with ErrAbort.
		return false, nil
	}
}
