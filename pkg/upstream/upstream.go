// Package upstream holds the HTTP plumbing shared by the third-party API
// clients: sending a request, mapping non-2xx responses onto semantic errors
// and decoding JSON bodies.
package upstream

import (
	"bus2ride/pkg/serrors"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// maxBodyBytes bounds how much of a response is read.
	maxBodyBytes = 4 << 20
	// maxErrorBody bounds how much of an error body ends up in messages.
	maxErrorBody = 256
)

// StatusError is a non-2xx upstream response.
type StatusError struct {
	// Op names the failed operation, e.g. "geocode".
	Op         string
	StatusCode int
	Body       string
	// RetryAfter is parsed from the Retry-After header, zero when absent.
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Op, e.Body)
}

// StatusCode returns the status of the first StatusError in err's chain, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}

	return 0
}

// ParseRetryAfter reads a Retry-After header given either in seconds or as an
// HTTP date. It returns 0 when the header is missing or malformed.
func ParseRetryAfter(h http.Header, now time.Time) time.Duration {
	v := strings.TrimSpace(h.Get("Retry-After"))
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}

		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}

	return 0
}

// Do sends req and returns the response body. Transport failures are
// UPSTREAM (TIMEOUT when the context deadline passed); 429 responses are
// RATE_LIMITED, 404 responses NOT_FOUND and any other non-2xx response
// UPSTREAM. Every status failure wraps a *StatusError.
func Do(httpClient *http.Client, req *http.Request, op string) ([]byte, error) {
	resp, err := httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "%s timed out", op)
		}

		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not send %s request", op)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not read %s response body", op)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body := strings.TrimSpace(string(b))
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		se := &StatusError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       body,
			RetryAfter: ParseRetryAfter(resp.Header, time.Now()),
		}

		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return nil, serrors.Wrap(serrors.ErrRateLimited, se, "rate limited")
		case http.StatusNotFound:
			return nil, serrors.Wrap(serrors.ErrNotFound, se, "%s not found", op)
		default:
			return nil, serrors.Wrap(serrors.ErrUpstream, se, "upstream error")
		}
	}

	return b, nil
}

// GetJSON issues a GET to rawURL with the given headers and decodes the
// response into out. Accept defaults to application/json; a caller header
// replaces any default of the same name.
func GetJSON(ctx context.Context, httpClient *http.Client, rawURL string, header http.Header, op string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	b, err := Do(httpClient, req, op)
	if err != nil {
		return err
	}

	return Decode(b, op, out)
}

// Decode unmarshals a JSON body, reporting failures as UPSTREAM.
func Decode(b []byte, op string, out any) error {
	if err := json.Unmarshal(b, out); err != nil {
		return serrors.Wrap(serrors.ErrUpstream, err, "could not decode %s response", op)
	}

	return nil
}
