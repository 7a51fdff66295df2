// Package preview inspects selected files and builds inline previews of
// profile pictures.
package preview

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"mime"
	"os"
	"path/filepath"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp" // register decoder
	"golang.org/x/sync/errgroup"

	"github.com/initializ/enroll/internal/form"
)

// NoFileText is shown when a file input has no selection.
const NoFileText = "No file chosen."

// ReadyText is shown once an image preview has been decoded.
const ReadyText = "Preview of selected image."

// Preview is the decoded, displayable form of a selected image.
type Preview struct {
	DataURL string
	Width   int
	Height  int
	Text    string
}

// Inspect stats path and detects its media type from content.
func Inspect(path string) (*form.FileSelection, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("inspecting %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("inspecting %s: is a directory", path)
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("detecting media type of %s: %w", path, err)
	}

	return &form.FileSelection{
		Path:      path,
		Name:      filepath.Base(path),
		Size:      info.Size(),
		MediaType: baseType(mt.String()),
	}, nil
}

// InspectAll inspects every path concurrently, keyed like paths. Empty
// paths are skipped.
func InspectAll(ctx context.Context, paths map[string]string) (map[string]*form.FileSelection, error) {
	g, gCtx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	out := make(map[string]*form.FileSelection, len(paths))
	for field, path := range paths {
		if path == "" {
			continue
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			sel, err := Inspect(path)
			if err != nil {
				return fmt.Errorf("%s: %w", field, err)
			}
			mu.Lock()
			out[field] = sel
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Info formats the file line shown under a file input.
func Info(sel *form.FileSelection) string {
	if sel == nil {
		return NoFileText
	}
	return fmt.Sprintf("%s (%.1f KB)", sel.Name, float64(sel.Size)/1024)
}

// Decode reads the selected file into a data URL, stopping early when
// ctx is cancelled. Image dimensions are filled in when the format is
// recognised.
func Decode(ctx context.Context, sel *form.FileSelection) (*Preview, error) {
	if sel == nil {
		return nil, fmt.Errorf("decoding preview: no file selected")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(sel.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", sel.Path, err)
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, &ctxReader{ctx: ctx, r: f}); err != nil {
		return nil, fmt.Errorf("reading %s: %w", sel.Path, err)
	}

	p := &Preview{
		DataURL: "data:" + sel.MediaType + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Text:    ReadyText,
	}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(buf.Bytes())); err == nil {
		p.Width, p.Height = cfg.Width, cfg.Height
	}
	return p, nil
}

// ctxReader fails reads once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func baseType(s string) string {
	mt, _, err := mime.ParseMediaType(s)
	if err != nil {
		return s
	}
	return mt
}
