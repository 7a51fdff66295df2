package wizard

import (
	"context"

	"github.com/initializ/enroll/internal/form"
	"github.com/initializ/enroll/internal/preview"
)

// PreviewJob is one pending image decode. Only the newest job per field
// is ever applied.
type PreviewJob struct {
	Field string
	ctx   context.Context
	gen   uint64
	sel   *form.FileSelection
}

// Run decodes the selection. It may run on any goroutine.
func (j *PreviewJob) Run() (*preview.Preview, error) {
	return preview.Decode(j.ctx, j.sel)
}

// SelectFile records sel as the value of a file field and updates its
// info line. A nil sel clears the field and hides its preview. For the
// profile picture a decode job is returned; any earlier decode of that
// field is cancelled.
func (c *Controller) SelectFile(field string, sel *form.FileSelection) *PreviewJob {
	if !form.IsFileField(field) {
		return nil
	}
	delete(c.rejected, field)
	c.acc.SetFile(field, sel)

	tr := c.tracker(field)
	if sel == nil {
		tr.Stop()
		c.files[field] = FileView{Info: preview.NoFileText}
		c.render()
		return nil
	}

	fv := FileView{Info: preview.Info(sel)}
	if field != form.ProfilePicture {
		c.files[field] = fv
		c.render()
		return nil
	}

	ctx, gen := tr.Begin(context.Background())
	fv.Decoding = true
	c.files[field] = fv
	c.logger.Debug("preview decode started", map[string]any{"field": field, "generation": gen})
	c.render()
	return &PreviewJob{Field: field, ctx: ctx, gen: gen, sel: sel}
}

// RejectFile clears field after its chosen path could not be read. The
// field keeps MsgUnreadableFile through later validation until another
// file is selected.
func (c *Controller) RejectFile(field string, err error) {
	if !form.IsFileField(field) {
		return
	}
	c.SelectFile(field, nil)
	c.rejected[field] = MsgUnreadableFile
	c.acc.SetError(field, MsgUnreadableFile)
	if err != nil {
		c.logger.Warn("file unreadable", map[string]any{"field": field, "error": err.Error()})
	}
	c.render()
}

// CompletePreview applies the result of job if it is still the newest
// job for its field and reports whether it was applied.
func (c *Controller) CompletePreview(job *PreviewJob, p *preview.Preview, err error) bool {
	if job == nil {
		return false
	}
	if !c.tracker(job.Field).Finish(job.gen) {
		c.logger.Debug("stale preview dropped", map[string]any{"field": job.Field, "generation": job.gen})
		return false
	}

	fv := c.files[job.Field]
	fv.Decoding = false
	if err != nil {
		fv.Preview = nil
		c.logger.Warn("preview decode failed", map[string]any{"field": job.Field, "error": err.Error()})
	} else {
		fv.Preview = p
		c.logger.Debug("preview decode finished", map[string]any{"field": job.Field, "generation": job.gen})
	}
	c.files[job.Field] = fv
	c.render()
	return true
}

func (c *Controller) tracker(field string) *preview.Tracker {
	tr, ok := c.trackers[field]
	if !ok {
		tr = &preview.Tracker{}
		c.trackers[field] = tr
	}
	return tr
}
