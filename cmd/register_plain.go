package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/initializ/enroll/internal/config"
	"github.com/initializ/enroll/internal/form"
	"github.com/initializ/enroll/internal/logging"
	"github.com/initializ/enroll/internal/preview"
	"github.com/initializ/enroll/internal/wizard"
)

// maxPlainRounds bounds how often a step is re-asked before giving up.
const maxPlainRounds = 5

// runPlain asks for each step's fields with line prompts, re-asking a
// step until it validates.
func runPlain(ctx context.Context, cfg *config.Config, acc form.Accessor, sub wizard.Submitter, logger logging.Logger, ask prompter) error {
	ctrl := wizard.New(acc,
		wizard.WithSubmitter(sub),
		wizard.WithLogger(logger),
		wizard.WithView(&bannerPrinter{}),
	)
	last := len(ctrl.Steps()) - 1

	rounds := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if rounds >= maxPlainRounds*len(ctrl.Steps()) {
			return fmt.Errorf("%w: giving up after %d attempts", wizard.ErrValidation, rounds)
		}
		rounds++

		st := ctrl.State()
		step := ctrl.Steps()[ctrl.Current()]
		_, _ = fmt.Fprintf(stdout, "\n%s: %s\n", st.Counter, step.Title)

		if err := askStep(ctrl, step, cfg, ask); err != nil {
			return err
		}

		if ctrl.Current() < last {
			if !ctrl.Advance() {
				printStepErrors(acc, step)
			}
			continue
		}

		err := ctrl.Submit(ctx)
		switch {
		case err == nil:
			_, _ = fmt.Fprintln(stdout, wizard.MsgSuccess)
			return nil
		case errors.Is(err, wizard.ErrValidation):
			printStepErrors(acc, ctrl.Steps()[ctrl.Current()])
		default:
			return fmt.Errorf("registration failed: %w", err)
		}
	}
}

// askStep prompts for every field of step, offering current values as
// defaults.
func askStep(ctrl *wizard.Controller, step form.Step, cfg *config.Config, ask prompter) error {
	acc := ctrl.Form()
	for _, name := range step.Fields {
		label := form.Labels[name]
		if msg := acc.Error(name); msg != "" {
			label += " (" + msg + ")"
		}

		switch name {
		case form.Password, form.ConfirmPassword:
			v, err := ask.Password(label)
			if err != nil {
				return err
			}
			acc.SetValue(name, v)

		case form.Country, form.SecurityQuestion:
			opts := cfg.Countries
			if name == form.SecurityQuestion {
				opts = cfg.SecurityQuestions
			}
			v, err := ask.Select(label, opts, acc.Value(name))
			if err != nil {
				return err
			}
			acc.SetValue(name, v)

		case form.Terms:
			ok, err := ask.Confirm(label, acc.Value(name) != "")
			if err != nil {
				return err
			}
			if ok {
				acc.SetValue(name, form.Checked)
			} else {
				acc.SetValue(name, "")
			}

		case form.ProfilePicture, form.Resume:
			def := ""
			if sel := acc.File(name); sel != nil {
				def = sel.Path
			}
			path, err := ask.Text(label, def)
			if err != nil {
				return err
			}
			choosePlainFile(ctrl, name, strings.TrimSpace(path))

		default:
			v, err := ask.Text(label, acc.Value(name))
			if err != nil {
				return err
			}
			acc.SetValue(name, v)
		}
	}
	return nil
}

// choosePlainFile selects path for field and decodes any preview inline.
func choosePlainFile(ctrl *wizard.Controller, field, path string) {
	if path == "" {
		ctrl.SelectFile(field, nil)
		return
	}
	sel, err := preview.Inspect(path)
	if err != nil {
		ctrl.RejectFile(field, err)
		_, _ = fmt.Fprintf(stderr, "WARNING: %v\n", err)
		return
	}

	job := ctrl.SelectFile(field, sel)
	fv := ctrl.State().Files[field]
	if job != nil {
		p, err := job.Run()
		ctrl.CompletePreview(job, p, err)
		fv = ctrl.State().Files[field]
	}

	line := "  " + fv.Info
	if fv.Preview != nil {
		line += fmt.Sprintf(" · %s %dx%d", fv.Preview.Text, fv.Preview.Width, fv.Preview.Height)
	}
	_, _ = fmt.Fprintln(stdout, line)
}
