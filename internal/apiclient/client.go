// Package apiclient is the HTTP layer of the admin console. It attaches the bearer
// token of the current session, centralizes 401 handling and decodes JSON responses.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:5000"

// TokenSource yields the bearer token of the current session, or "" when signed out.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

// Token implements TokenSource.
func (f TokenFunc) Token() string { return f() }

// ResponseValidator checks a successful JSON response before it is decoded.
type ResponseValidator interface {
	ValidateResponse(method, endpoint string, body []byte) error
}

// Client issues requests against the admin API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
	validator      ResponseValidator
	logger         *zap.Logger
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout sets the request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithUnauthorizedHandler sets the callback run on every 401 response, before the
// failing call returns.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithResponseValidator enables validation of JSON responses.
func WithResponseValidator(v ResponseValidator) Option {
	return func(c *Client) { c.validator = v }
}

// WithLogger sets the request logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New constructs a Client pointing at the provided API base URL.
func New(base string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	c := &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RequestOptions configures a single request. Requests are authenticated unless
// SkipAuth is set.
type RequestOptions struct {
	Method   string
	Body     any
	Query    url.Values
	SkipAuth bool
}

// Response is a successful (2xx) response.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IsJSON reports whether the response declared a JSON content type.
func (r *Response) IsJSON() bool {
	return strings.Contains(strings.ToLower(r.ContentType), "application/json")
}

// Text returns the raw body.
func (r *Response) Text() string {
	return string(r.Body)
}

// Decode unmarshals a JSON body into v. An empty body (such as a 204) leaves v
// untouched.
func (r *Response) Decode(v any) error {
	if v == nil || r.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if !r.IsJSON() {
		return fmt.Errorf("decode response: unexpected content type %q", r.ContentType)
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) resolve(endpoint string, query url.Values) string {
	target := endpoint
	if !strings.HasPrefix(endpoint, "http") {
		target = c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	}
	if len(query) == 0 {
		return target
	}
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return target + sep + query.Encode()
}

// Request performs a request and returns the response body of a 2xx answer.
// A 401 invokes the unauthorized handler and fails with ErrUnauthorized; other
// non-2xx answers fail with *APIError.
func (c *Client) Request(ctx context.Context, endpoint string, opts RequestOptions) (*Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	target := c.resolve(endpoint, opts.Query)

	var reader io.Reader
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &TransportError{Method: method, URL: target, Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !opts.SkipAuth && c.tokens != nil {
		if token := strings.TrimSpace(c.tokens.Token()); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("method", method), zap.String("url", target), zap.Error(err))
		return nil, &TransportError{Method: method, URL: target, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: target, Cause: err}
	}

	c.logger.Debug("request",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: extractMessage(body)}
	}

	out := &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}
	if c.validator != nil && out.IsJSON() {
		if err := c.validator.ValidateResponse(method, endpoint, body); err != nil {
			return nil, fmt.Errorf("unexpected response shape from %s %s: %w", method, endpoint, err)
		}
	}
	return out, nil
}

func extractMessage(body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if msg := strings.TrimSpace(payload.Message); msg != "" {
		return msg
	}
	return strings.TrimSpace(payload.Error)
}

func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, v any) error {
	resp, err := c.Request(ctx, endpoint, RequestOptions{Method: method, Body: body, Query: query})
	if err != nil {
		return err
	}
	return resp.Decode(v)
}

// Get issues an authenticated GET and decodes the JSON response into v.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values, v any) error {
	return c.do(ctx, http.MethodGet, endpoint, query, nil, v)
}

// Post issues an authenticated POST.
func (c *Client) Post(ctx context.Context, endpoint string, body, v any) error {
	return c.do(ctx, http.MethodPost, endpoint, nil, body, v)
}

// Put issues an authenticated PUT.
func (c *Client) Put(ctx context.Context, endpoint string, body, v any) error {
	return c.do(ctx, http.MethodPut, endpoint, nil, body, v)
}

// Patch issues an authenticated PATCH.
func (c *Client) Patch(ctx context.Context, endpoint string, body, v any) error {
	return c.do(ctx, http.MethodPatch, endpoint, nil, body, v)
}

// Delete issues an authenticated DELETE. A successful answer that is not JSON,
// such as a plain text confirmation, is accepted without decoding.
func (c *Client) Delete(ctx context.Context, endpoint string, v any) error {
	resp, err := c.Request(ctx, endpoint, RequestOptions{Method: http.MethodDelete})
	if err != nil {
		return err
	}
	if !resp.IsJSON() {
		return nil
	}
	return resp.Decode(v)
}
