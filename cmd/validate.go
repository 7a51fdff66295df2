package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/initializ/enroll/internal/answers"
	"github.com/initializ/enroll/internal/form"
	"github.com/initializ/enroll/internal/validate"
)

var (
	strict       bool
	validateStep int
)

var validateCmd = &cobra.Command{
	Use:   "validate <answers.yaml>",
	Short: "Check an answers file against the registration rules",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
	validateCmd.Flags().IntVar(&validateStep, "step", 0, "only check this step (1-3)")
}

// validationResult holds errors and warnings, like a step summary.
type validationResult struct {
	Errors   []string
	Warnings []string
}

func (r *validationResult) IsValid() bool { return len(r.Errors) == 0 }

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	if validateStep < 0 || validateStep > form.StepCount {
		return fmt.Errorf("--step must be between 1 and %d", form.StepCount)
	}

	result := &validationResult{}
	acc := form.NewValues()

	a, err := answers.Load(path)
	var se *answers.SchemaError
	switch {
	case errors.As(err, &se):
		for _, e := range se.Errors {
			result.Errors = append(result.Errors, fmt.Sprintf("schema: %s", e))
		}
	case err != nil:
		return err
	default:
		result.Warnings = append(result.Warnings, missingFields(path)...)
		if err := a.Apply(context.Background(), acc); err != nil {
			result.Errors = append(result.Errors, err.Error())
		}
	}

	if result.IsValid() {
		v := validate.New()
		for i, step := range form.Steps {
			if validateStep != 0 && validateStep != i+1 {
				continue
			}
			if v.ValidateStep(acc, i) {
				continue
			}
			for _, name := range step.Fields {
				if msg := acc.Error(name); msg != "" {
					result.Errors = append(result.Errors, fmt.Sprintf("step %d (%s): %s: %s", i+1, step.Title, name, msg))
				}
			}
		}
	}

	for _, w := range result.Warnings {
		_, _ = fmt.Fprintf(stderr, "WARNING: %s\n", w)
	}
	for _, e := range result.Errors {
		_, _ = fmt.Fprintf(stderr, "ERROR: %s\n", e)
	}

	if strict && len(result.Warnings) > 0 {
		return fmt.Errorf("validation failed: %d warning(s) treated as errors in strict mode", len(result.Warnings))
	}
	if !result.IsValid() {
		return fmt.Errorf("validation failed: %d error(s)", len(result.Errors))
	}

	_, _ = fmt.Fprintln(stdout, "Validation passed.")
	return nil
}

// missingFields lists the form fields an answers file does not mention.
func missingFields(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	present := map[string]any{}
	if err := yaml.Unmarshal(data, &present); err != nil {
		return nil
	}

	var out []string
	for _, name := range form.AllFields() {
		if _, ok := present[name]; !ok {
			out = append(out, fmt.Sprintf("%s is not set in %s", name, path))
		}
	}
	return out
}
