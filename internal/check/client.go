package check

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Client performs the single HTTP exchange of a check run and validates the
// response status. All fields are set once from CLI input.
type Client struct {
	Method        string
	Body          []byte
	Username      string
	Password      string
	Headers       http.Header
	Timeout       time.Duration
	Insecure      bool
	WholeResponse bool
}

// ParseRawHeaders splits a raw "Key: Value,Key: Value" header string into an
// http.Header. Values are trimmed of leading whitespace; a pair without a
// colon is a configuration error.
func ParseRawHeaders(raw string) (http.Header, error) {
	headers := http.Header{}
	if raw == "" {
		return headers, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		name, value, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("invalid header %q: expected \"Name: Value\"", pair)
		}
		headers.Add(strings.TrimSpace(name), strings.TrimLeft(value, " \t"))
	}
	return headers, nil
}

// Exchange issues the request against the resolved target and returns the
// response body. A non-nil failure carries the final verdict for transport
// and status-code errors; the caller must not continue past it.
func (c *Client) Exchange(ctx context.Context, target *Target) (body []byte, failure *Result) {
	var reqBody io.Reader
	if len(c.Body) > 0 {
		reqBody = bytes.NewReader(c.Body)
	}

	req, err := http.NewRequestWithContext(ctx, c.Method, target.URL(), reqBody)
	if err != nil {
		res := Unknown("invalid request: %v", err)
		return nil, &res
	}

	for name, values := range c.Headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	if c.Username != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}

	client := &http.Client{
		Timeout: c.Timeout,
		Transport: &http.Transport{
			TLSClientConfig:   &tls.Config{InsecureSkipVerify: c.Insecure}, // #nosec G402 -- opt-in via --insecure for self-signed endpoints.
			DisableKeepAlives: true,
		},
	}

	resp, err := client.Do(req)
	if err != nil {
		if isTimeout(err) {
			res := Critical("Connection timed out")
			return nil, &res
		}
		res := Critical("Connection error: %v", err)
		return nil, &res
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			res := Critical("Connection timed out")
			return nil, &res
		}
		res := Critical("Connection error: %v", err)
		return nil, &res
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if c.WholeResponse {
			res := Critical("unexpected status code %d: %s", resp.StatusCode, string(body))
			return nil, &res
		}
		res := Critical("unexpected status code %d", resp.StatusCode)
		return nil, &res
	}

	return body, nil
}

// isTimeout reports whether err stems from the wall-clock timeout bounding
// the exchange, as opposed to any other transport failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
