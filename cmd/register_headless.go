package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/initializ/enroll/internal/answers"
	"github.com/initializ/enroll/internal/form"
	"github.com/initializ/enroll/internal/logging"
	"github.com/initializ/enroll/internal/wizard"
)

// bannerPrinter writes each new status banner to stderr.
type bannerPrinter struct {
	last wizard.Banner
}

func (b *bannerPrinter) Render(st wizard.State) {
	if !st.Banner.Visible() || st.Banner == b.last {
		b.last = st.Banner
		return
	}
	b.last = st.Banner
	_, _ = fmt.Fprintf(stderr, "[%s] %s\n", st.Banner.Type, st.Banner.Message)
}

// runHeadless submits the answers file without prompting. Every step is
// advanced in order so failures are reported against the step they
// belong to.
func runHeadless(ctx context.Context, acc form.Accessor, sub wizard.Submitter, logger logging.Logger) error {
	a, err := answers.Load(answersFile)
	if err != nil {
		var se *answers.SchemaError
		if errors.As(err, &se) {
			for _, e := range se.Errors {
				_, _ = fmt.Fprintf(stderr, "ERROR: %s\n", e)
			}
			return fmt.Errorf("answers file invalid: %d error(s)", len(se.Errors))
		}
		return err
	}
	if err := a.Apply(ctx, acc); err != nil {
		return err
	}

	ctrl := wizard.New(acc,
		wizard.WithSubmitter(sub),
		wizard.WithLogger(logger),
		wizard.WithView(&bannerPrinter{}),
	)

	last := len(ctrl.Steps()) - 1
	for ctrl.Current() < last {
		if !ctrl.Advance() {
			printStepErrors(acc, ctrl.Steps()[ctrl.Current()])
			return fmt.Errorf("%w: step %d (%s)", wizard.ErrValidation, ctrl.Current()+1, ctrl.Steps()[ctrl.Current()].Title)
		}
	}

	if err := ctrl.Submit(ctx); err != nil {
		if errors.Is(err, wizard.ErrValidation) {
			printStepErrors(acc, ctrl.Steps()[ctrl.Current()])
			return fmt.Errorf("%w: step %d (%s)", err, ctrl.Current()+1, ctrl.Steps()[ctrl.Current()].Title)
		}
		return fmt.Errorf("registration failed: %w", err)
	}

	_, _ = fmt.Fprintln(stdout, wizard.MsgSuccess)
	return nil
}

func printStepErrors(acc form.Accessor, step form.Step) {
	for _, name := range step.Fields {
		if msg := acc.Error(name); msg != "" {
			_, _ = fmt.Fprintf(stderr, "ERROR: %s: %s\n", name, msg)
		}
	}
}
