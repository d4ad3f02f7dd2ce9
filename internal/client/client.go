// Package client is the typed API client behind the dashboard: session
// handling, lookup loading, incident reporting, image upload and auth.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"golang.org/x/net/publicsuffix"

	"tikkeul/internal/domain"
)

var (
	// ErrNotFound is returned for 404 responses. Callers showing an
	// incident treat it as "go back to the list".
	ErrNotFound = domain.ErrNotFound
	// ErrUnauthorized is returned for 401 responses. Tokens are never
	// refreshed.
	ErrUnauthorized = domain.ErrUnauthorized
)

// APIError is a non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	}
	return nil
}

// DecodeError is a 2xx response whose body does not match the endpoint's
// schema.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode %s: %v", e.Endpoint, e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }

type Client struct {
	base     *url.URL
	http     *http.Client
	session  Session
	clock    clockwork.Clock
	validate *validator.Validate
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http = hc } }

func WithClock(clock clockwork.Clock) Option { return func(c *Client) { c.clock = clock } }

func New(baseURL string, session Session, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	if session == nil {
		session = NewMemorySession()
	}
	c := &Client{
		base:     base,
		http:     &http.Client{Jar: jar, Timeout: 30 * time.Second},
		session:  session,
		clock:    clockwork.NewRealClock(),
		validate: validator.New(),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *Client) Session() Session { return c.session }

// url resolves path, which may carry a query string, against the base URL.
func (c *Client) url(path string) (string, error) {
	ref, err := url.Parse(strings.TrimLeft(path, "/"))
	if err != nil {
		return "", err
	}
	return c.base.ResolveReference(ref).String(), nil
}

// send performs one request. No retries.
func (c *Client) send(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	target, err := c.url(path)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if tok := c.session.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, apiError(resp)
	}
	return resp, nil
}

func apiError(resp *http.Response) error {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &body) == nil && len(body.Detail) > 0 {
		var s string
		if json.Unmarshal(body.Detail, &s) == nil {
			msg = s
		} else {
			msg = string(body.Detail)
		}
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}

// getJSON fetches path and decodes it into out, validating struct tags.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var (
		body        io.Reader
		contentType string
	)
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body, contentType = bytes.NewReader(b), "application/json"
	}
	resp, err := c.send(ctx, method, path, contentType, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.decode(path, resp.Body, out)
}

func (c *Client) decode(endpoint string, r io.Reader, out any) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, r)
		return nil
	}
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return &DecodeError{Endpoint: endpoint, Err: err}
	}
	if err := c.validate.Struct(out); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return nil
		}
		return &DecodeError{Endpoint: endpoint, Err: err}
	}
	return nil
}
