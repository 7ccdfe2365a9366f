package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/loregate/loregate/internal/version"
)

// StatusError reports a non-success upstream status. The relay maps it onto
// the not-found response contract; everything else is a relay failure.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.Code, e.URL)
}

// Client performs the single outbound GET of a relay. No retries, no
// caching; cancellation comes from the inbound request's context.
type Client struct {
	http    *http.Client
	maxBody int64
}

// NewClient creates an upstream fetch client. timeout bounds one fetch end
// to end; maxBody caps the bytes read from a response body.
func NewClient(timeout time.Duration, maxBody int64) *Client {
	return &Client{
		maxBody: maxBody,
		http: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
					return fmt.Errorf("redirect to disallowed scheme: %s", req.URL.Scheme)
				}
				return nil
			},
		},
	}
}

// Fetch GETs url and returns the raw body. A non-2xx response yields a
// *StatusError; an over-sized body is an error, not a truncated read.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, URL: url}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if int64(len(data)) > c.maxBody {
		return nil, fmt.Errorf("upstream body exceeds maximum size (%d bytes)", c.maxBody)
	}
	return data, nil
}
