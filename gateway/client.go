package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnauthenticated is an exported constant or variable used by the console core.
var ErrUnauthenticated = errors.New("authentication rejected")

// ErrBaseURLRequired is an exported constant or variable used by the console core.
var ErrBaseURLRequired = errors.New("gateway base URL required")

const (
	// DefaultTimeout bounds every request; expiry surfaces as a transport
	// error, never as an authentication rejection.
	DefaultTimeout = 20 * time.Second

	maxResponseBody = 256 * 1024
	maxDownloadBody = 32 * 1024 * 1024
)

// StatusError is a non-2xx, non-401 backend response passed through to the
// caller for local handling.
//
// StatusError instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type StatusError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

// Error describes the error operation and its observable behavior.
func (e *StatusError) Error() string {
	msg := strings.TrimSpace(e.Body)
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s: backend error (%d): %s", e.Endpoint, e.StatusCode, msg)
}

// TokenSource supplies the bearer credential at request-issue time. The
// session store satisfies it.
type TokenSource interface {
	Token() (string, bool)
}

// Hooks are the client's observation points. All fields are optional.
//
// Hooks instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Hooks struct {
	// OnUnauthenticated fires synchronously on every 401 before the call
	// returns. The owner clears the session here.
	OnUnauthenticated func()
	// OnRequest fires for every issued request.
	OnRequest func()
	// OnFailure fires for transport errors and non-2xx responses.
	OnFailure func()
	// ObserveLatency receives the wall time of every completed request.
	ObserveLatency func(time.Duration)
}

// Config carries the transport settings of a [Client].
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client is the sole channel through which the console talks to the backend.
// Safe for concurrent use once constructed.
//
//	Docs: docs/gateway.md
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	tokens     TokenSource
	hooks      Hooks
}

// NewClient creates a gateway client. tokens may be nil for a client that
// only ever issues anonymous requests (the login form's token call goes
// through the same client and simply finds no session).
func NewClient(cfg Config, tokens TokenSource, hooks Hooks) (*Client, error) {
	base := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, ErrBaseURLRequired
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid gateway base URL %q: %w", cfg.BaseURL, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:   base,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		hooks:  hooks,
	}, nil
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetJSON issues a GET with optional query parameters and decodes the JSON
// response into out when out is non-nil.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := path
	if len(query) > 0 {
		endpoint = path + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, endpoint, nil, "", out)
}

// PostJSON issues a POST with a JSON body.
func (c *Client) PostJSON(ctx context.Context, path string, body any, out any) error {
	reader, err := encodeJSONBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, reader, "application/json", out)
}

// PutJSON issues a PUT with a JSON body.
func (c *Client) PutJSON(ctx context.Context, path string, body any, out any) error {
	reader, err := encodeJSONBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, reader, "application/json", out)
}

// GetBytes issues a GET and returns the raw response body. Intended for
// binary downloads; bodies are capped at 32 MiB.
func (c *Client) GetBytes(ctx context.Context, path string) ([]byte, error) {
	return c.exchange(ctx, http.MethodGet, path, nil, "", maxDownloadBody)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}

// PostForm issues an application/x-www-form-urlencoded POST. The token
// endpoint of the backend takes credentials in this shape.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	return c.do(ctx, http.MethodPost, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", out)
}

// UploadMultipart issues a multipart/form-data POST carrying the given
// fields plus one binary attachment.
func (c *Client) UploadMultipart(ctx context.Context, path string, fields map[string]string, fileField, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("encode multipart field %s: %w", name, err)
		}
	}
	part, err := writer.CreateFormFile(fileField, filename)
	if err != nil {
		return fmt.Errorf("create multipart file part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy upload payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, &buf, writer.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, contentType string, out any) error {
	respBody, err := c.exchange(ctx, method, endpoint, body, contentType, maxResponseBody)
	if err != nil {
		return err
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%s %s: parse response: %w", method, endpoint, err)
	}
	return nil
}

func (c *Client) exchange(ctx context.Context, method, endpoint string, body io.Reader, contentType string, bodyLimit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.tokens != nil {
		// Read at issue time: a request racing a logout carries the old
		// token or none; the backend's rejection is handled like any other.
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.fireRequest()
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.observe(time.Since(start))
	if err != nil {
		c.fireFailure()
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, bodyLimit))

	if resp.StatusCode == http.StatusUnauthorized {
		c.fireFailure()
		if c.hooks.OnUnauthenticated != nil {
			c.hooks.OnUnauthenticated()
		}
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, ErrUnauthenticated)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.fireFailure()
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Endpoint:   method + " " + endpoint,
			Body:       truncateBody(respBody),
		}
	}

	return respBody, nil
}

func truncateBody(body []byte) string {
	if len(body) > maxResponseBody {
		body = body[:maxResponseBody]
	}
	return string(body)
}

func (c *Client) fireRequest() {
	if c.hooks.OnRequest != nil {
		c.hooks.OnRequest()
	}
}

func (c *Client) fireFailure() {
	if c.hooks.OnFailure != nil {
		c.hooks.OnFailure()
	}
}

func (c *Client) observe(elapsed time.Duration) {
	if c.hooks.ObserveLatency != nil {
		c.hooks.ObserveLatency(elapsed)
	}
}

func encodeJSONBody(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return bytes.NewReader(data), nil
}
