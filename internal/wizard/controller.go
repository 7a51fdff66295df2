// Package wizard drives the three-step registration flow independently of
// any particular front end. A Controller owns the current step, the
// submission state and the file previews; front ends feed it input and
// redraw from State.
package wizard

import (
	"context"
	"errors"
	"net/url"

	"github.com/initializ/enroll/internal/form"
	"github.com/initializ/enroll/internal/logging"
	"github.com/initializ/enroll/internal/preview"
	"github.com/initializ/enroll/internal/submit"
	"github.com/initializ/enroll/internal/validate"
)

var (
	// ErrValidation is returned when a submission is refused because a
	// step has field errors.
	ErrValidation = errors.New("form has validation errors")
	// ErrSubmitInProgress is returned when a submission is requested while
	// another is still in flight.
	ErrSubmitInProgress = errors.New("submission already in progress")
	// ErrNoSubmitter is returned by Pending.Send when the controller was
	// built without a submitter.
	ErrNoSubmitter = errors.New("no submitter configured")
)

// Banner messages.
const (
	MsgFixBeforeProceeding = "Please fix errors before proceeding."
	MsgFixBeforeSubmitting = "Please fix errors before submitting."
	MsgFixHighlightedStep  = "Please fix errors in highlighted step."
	MsgSubmitting          = "Submitting your details…"
	MsgSuccess             = "Registration successful! Data saved."
	MsgRejected            = "Error while submitting. Try again."
	MsgNetworkError        = "Network error while submitting."
	MsgCancelled           = "Submission cancelled."
)

// MsgUnreadableFile is shown on a file field whose path cannot be read.
const MsgUnreadableFile = "Cannot read that file."

// Submitter sends an encoded registration.
type Submitter interface {
	Send(ctx context.Context, vals url.Values) error
}

// StepValidator checks one step of the form.
type StepValidator interface {
	ValidateStep(acc form.Accessor, step int) bool
}

// Controller is the step navigator and submission state machine. All
// methods must be called from a single goroutine; only Pending.Send and
// PreviewJob.Run may run elsewhere.
type Controller struct {
	acc       form.Accessor
	steps     []form.Step
	validator StepValidator
	submitter Submitter
	view      View
	logger    logging.Logger

	current    int
	submitting bool
	pending    *Pending
	banner     Banner

	files    map[string]FileView
	trackers map[string]*preview.Tracker
	// rejected holds file fields whose chosen path could not be read.
	rejected map[string]string
}

// Option configures a Controller.
type Option func(*Controller)

// WithValidator replaces the default step validator.
func WithValidator(v StepValidator) Option {
	return func(c *Controller) { c.validator = v }
}

// WithSubmitter sets where submissions are sent.
func WithSubmitter(s Submitter) Option {
	return func(c *Controller) { c.submitter = s }
}

// WithView sets the view notified on every change.
func WithView(v View) Option {
	return func(c *Controller) { c.view = v }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// New creates a Controller over acc, positioned on the first step.
func New(acc form.Accessor, opts ...Option) *Controller {
	c := &Controller{
		acc:      acc,
		steps:    form.Steps,
		view:     nopView{},
		logger:   logging.Nop(),
		files:    make(map[string]FileView),
		trackers: make(map[string]*preview.Tracker),
		rejected: make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.validator == nil {
		c.validator = validate.New()
	}
	return c
}

// Form returns the accessor the controller works on.
func (c *Controller) Form() form.Accessor { return c.acc }

// Steps returns the step layout.
func (c *Controller) Steps() []form.Step { return c.steps }

// Current returns the index of the visible step.
func (c *Controller) Current() int { return c.current }

// Submitting reports whether a submission is in flight.
func (c *Controller) Submitting() bool { return c.submitting }

// Banner returns the current status banner.
func (c *Controller) Banner() Banner { return c.banner }

// GoToStep shows step i and clears the banner. Indexes outside the step
// range are ignored and false is returned.
func (c *Controller) GoToStep(i int) bool {
	if i < 0 || i >= len(c.steps) {
		return false
	}
	if i != c.current {
		c.logger.Debug("step changed", map[string]any{"from": c.current, "to": i})
	}
	c.current = i
	c.banner = Banner{}
	c.render()
	return true
}

// Advance validates the current step and moves forward when it passes.
func (c *Controller) Advance() bool {
	if !c.validateStep(c.current) {
		c.showBanner(BannerError, MsgFixBeforeProceeding)
		return false
	}
	return c.GoToStep(c.current + 1)
}

// Retreat moves back one step without validating.
func (c *Controller) Retreat() bool {
	return c.GoToStep(c.current - 1)
}

func (c *Controller) validateStep(i int) bool {
	ok := c.validator.ValidateStep(c.acc, i)
	if i < 0 || i >= len(c.steps) {
		return ok
	}
	for _, name := range c.steps[i].Fields {
		if msg, bad := c.rejected[name]; bad {
			c.acc.SetError(name, msg)
			ok = false
		}
	}
	if !ok {
		var failed []string
		for _, name := range c.steps[i].Fields {
			if c.acc.Error(name) != "" {
				failed = append(failed, name)
			}
		}
		c.logger.Debug("step invalid", map[string]any{"step": i, "fields": failed})
	}
	return ok
}

func (c *Controller) showBanner(t BannerType, msg string) {
	c.banner = Banner{Type: t, Message: msg}
	c.render()
}

// Pending is a submission that passed validation and is ready to send.
type Pending struct {
	ctx       context.Context
	cancel    context.CancelFunc
	values    url.Values
	submitter Submitter
}

// Values returns the encoded payload.
func (p *Pending) Values() url.Values { return p.values }

// Send performs the request. It touches no controller state and may run
// on any goroutine.
func (p *Pending) Send() error {
	if p.submitter == nil {
		return ErrNoSubmitter
	}
	return p.submitter.Send(p.ctx, p.values)
}

// BeginSubmit validates the whole form and, when it passes, switches to
// the submitting state and returns the request to send. Every step is
// re-checked in order; the first failing one becomes the current step.
func (c *Controller) BeginSubmit(ctx context.Context) (*Pending, error) {
	if c.submitting {
		return nil, ErrSubmitInProgress
	}
	if !c.validateStep(c.current) {
		c.showBanner(BannerError, MsgFixBeforeSubmitting)
		return nil, ErrValidation
	}
	for i := range c.steps {
		if !c.validateStep(i) {
			c.GoToStep(i)
			c.showBanner(BannerError, MsgFixHighlightedStep)
			return nil, ErrValidation
		}
	}

	var fields []string
	for _, s := range c.steps {
		fields = append(fields, s.Fields...)
	}

	sctx, cancel := context.WithCancel(ctx)
	p := &Pending{
		ctx:       sctx,
		cancel:    cancel,
		values:    submit.Encode(c.acc, fields),
		submitter: c.submitter,
	}
	c.pending = p
	c.submitting = true
	c.logger.Info("submitting registration", map[string]any{"fields": len(p.values)})
	c.showBanner(BannerInfo, MsgSubmitting)
	return p, nil
}

// CompleteSubmit returns to idle and reports the outcome of p. Results
// for anything but the in-flight submission are ignored.
func (c *Controller) CompleteSubmit(p *Pending, err error) {
	if p == nil || p != c.pending {
		return
	}
	p.cancel()
	c.pending = nil
	c.submitting = false

	var rejected *submit.RejectedError
	switch {
	case err == nil:
		c.logger.Info("registration accepted", nil)
		c.showBanner(BannerSuccess, MsgSuccess)
	case errors.Is(err, submit.ErrCancelled), errors.Is(err, context.Canceled):
		c.logger.Warn("registration cancelled", nil)
		c.showBanner(BannerError, MsgCancelled)
	case errors.As(err, &rejected):
		c.logger.Warn("registration rejected", map[string]any{"status": rejected.StatusCode})
		c.showBanner(BannerError, MsgRejected)
	default:
		c.logger.Error("registration failed", map[string]any{"error": err.Error()})
		c.showBanner(BannerError, MsgNetworkError)
	}
}

// Submit runs a whole submission synchronously.
func (c *Controller) Submit(ctx context.Context) error {
	p, err := c.BeginSubmit(ctx)
	if err != nil {
		return err
	}
	err = p.Send()
	c.CompleteSubmit(p, err)
	return err
}

// Cancel aborts the in-flight submission and any preview decodes.
func (c *Controller) Cancel() {
	if c.pending != nil {
		c.pending.cancel()
	}
	for field, tr := range c.trackers {
		tr.Stop()
		if fv, ok := c.files[field]; ok && fv.Decoding {
			fv.Decoding = false
			c.files[field] = fv
		}
	}
}
