// Package submit posts the registration form to the signup endpoint.
package submit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/initializ/enroll/internal/form"
	"github.com/initializ/enroll/internal/logging"
)

// ContentType is the encoding of every submission body.
const ContentType = "application/x-www-form-urlencoded"

var (
	// ErrTransport wraps failures that never produced an HTTP response.
	ErrTransport = errors.New("network error")
	// ErrCancelled is returned when the caller cancels an in-flight submission.
	ErrCancelled = errors.New("submission cancelled")
)

// RejectedError reports a response outside the 2xx range.
type RejectedError struct {
	StatusCode int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("server rejected registration (status %d)", e.StatusCode)
}

// Encode collects every non-file field into form values. Empty fields
// are kept; file fields are never included.
func Encode(acc form.Accessor, fields []string) url.Values {
	vals := url.Values{}
	for _, name := range fields {
		if form.IsFileField(name) {
			continue
		}
		vals.Set(name, acc.Value(name))
	}
	return vals
}

// Client sends registrations to one endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	logger   logging.Logger
}

// NewClient creates a Client posting to endpoint with the given timeout.
func NewClient(endpoint string, timeout time.Duration, logger logging.Logger) *Client {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Send issues a single POST of vals. It returns nil for a 2xx response,
// a *RejectedError for any other status, and an error wrapping
// ErrTransport or ErrCancelled when no response arrived. The response
// body is discarded.
func (c *Client) Send(ctx context.Context, vals url.Values) error {
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(vals.Encode()))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", ContentType)
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, context.Canceled) {
			c.logger.Warn("submission cancelled", map[string]any{"request_id": requestID})
			return fmt.Errorf("%w: %v", ErrCancelled, err)
		}
		c.logger.Error("submission failed", map[string]any{"request_id": requestID, "error": err.Error()})
		return fmt.Errorf("%w: posting to %s: %v", ErrTransport, c.endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	fields := map[string]any{
		"request_id": requestID,
		"status":     resp.StatusCode,
		"elapsed_ms": time.Since(start).Milliseconds(),
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("submission rejected", fields)
		return &RejectedError{StatusCode: resp.StatusCode}
	}
	c.logger.Info("submission accepted", fields)
	return nil
}
