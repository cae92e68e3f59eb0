// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

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

	"github.com/google/uuid"
	"github.com/pterm/pterm"

	"eventhub/cli/internal/logging"
)

const (
	// DefaultTimeout bounds every request made by an Executor.
	DefaultTimeout = 6 * time.Second
	// DefaultErrorMessage is used when a failure carries no server message.
	DefaultErrorMessage = "Something went wrong"
	// ContentTypeJSON is the default request and accepted content type.
	ContentTypeJSON = "application/json"

	// RequestIDHeader carries a per-request correlation id.
	RequestIDHeader = "X-Request-ID"

	maxBodyBytes = 10 << 20
)

// TokenSource yields the current session token. An empty token means no
// Authorization header is sent.
type TokenSource interface {
	Token() (string, error)
}

// RequestInterceptor runs on every outbound request before it is sent.
// Returning an error aborts the request.
type RequestInterceptor func(req *http.Request) error

// Executor is the shared, configured HTTP client.
type Executor struct {
	client       *http.Client
	log          *pterm.Logger
	interceptors []RequestInterceptor
}

// Option configures an Executor.
type Option func(*Executor)

// WithHTTPClient replaces the underlying client. Its Timeout is kept as given.
func WithHTTPClient(c *http.Client) Option {
	return func(x *Executor) {
		if c != nil {
			x.client = c
		}
	}
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(x *Executor) { x.client.Timeout = d }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *pterm.Logger) Option {
	return func(x *Executor) {
		if l != nil {
			x.log = l
		}
	}
}

// WithInterceptor appends a request interceptor after the built-in ones.
func WithInterceptor(i RequestInterceptor) Option {
	return func(x *Executor) { x.interceptors = append(x.interceptors, i) }
}

// NewExecutor creates an Executor that reads the session token from tokens.
// tokens may be nil for anonymous clients.
func NewExecutor(tokens TokenSource, opts ...Option) *Executor {
	x := &Executor{
		client: &http.Client{Timeout: DefaultTimeout},
		log:    logging.Discard(),
	}
	x.interceptors = []RequestInterceptor{AuthInterceptor(tokens), requestIDInterceptor}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// AuthInterceptor sets the Authorization header to the stored token verbatim.
// No scheme is prepended.
func AuthInterceptor(tokens TokenSource) RequestInterceptor {
	return func(req *http.Request) error {
		if tokens == nil {
			return nil
		}
		tok, err := tokens.Token()
		if err != nil {
			return fmt.Errorf("read session token: %w", err)
		}
		if tok != "" {
			req.Header.Set("Authorization", tok)
		}
		return nil
	}
}

func requestIDInterceptor(req *http.Request) error {
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}
	return nil
}

// Call is one fully resolved outbound request.
type Call struct {
	Method      string
	URL         string
	Body        any
	Params      url.Values
	ContentType string
}

// Meta is the pagination block some list endpoints include in their body.
type Meta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Envelope is the normalized form of a 2xx response.
type Envelope struct {
	Status int
	Data   json.RawMessage
	Meta   *Meta
}

// ErrorEnvelope is the normalized form of every non-2xx or failed request.
type ErrorEnvelope struct {
	StatusCode    int
	Message       string
	ErrorMessages any
	// Body is the raw server payload, nil when no response arrived.
	Body  json.RawMessage
	Cause error
}

func (e *ErrorEnvelope) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.StatusCode, e.Message)
}

func (e *ErrorEnvelope) Unwrap() error { return e.Cause }

// Do sends call and normalizes the outcome. A non-nil error is always an
// *ErrorEnvelope.
func (x *Executor) Do(ctx context.Context, call Call) (*Envelope, error) {
	method := strings.ToUpper(call.Method)
	if method == "" {
		method = http.MethodGet
	}

	target, err := withParams(call.URL, call.Params)
	if err != nil {
		return nil, transportFailure(err)
	}
	body, err := encodeBody(call.Body)
	if err != nil {
		return nil, transportFailure(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, transportFailure(err)
	}
	ct := call.ContentType
	if ct == "" {
		ct = ContentTypeJSON
	}
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Accept", ContentTypeJSON)

	for _, intercept := range x.interceptors {
		if err := intercept(req); err != nil {
			return nil, transportFailure(err)
		}
	}

	start := time.Now()
	logArgs := []any{
		"method", method,
		"url", logging.Mask(target),
		"request_id", req.Header.Get(RequestIDHeader),
		"authorization", logging.MaskHeader(req.Header.Get("Authorization")),
	}
	x.log.Debug("http request", x.log.Args(logArgs...))

	resp, err := x.client.Do(req)
	if err != nil {
		x.log.Debug("http transport error", x.log.Args(append(logArgs,
			"duration", time.Since(start).String(),
			"error", logging.Mask(err.Error()),
		)...))
		return nil, transportFailure(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, transportFailure(err)
	}
	x.log.Debug("http response", x.log.Args(append(logArgs,
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
		"bytes", len(raw),
	)...))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, responseFailure(resp.StatusCode, raw)
	}
	return &Envelope{Status: resp.StatusCode, Data: raw, Meta: extractMeta(raw)}, nil
}

func withParams(raw string, params url.Values) (string, error) {
	if len(params) == 0 {
		return raw, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func encodeBody(v any) (io.Reader, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case io.Reader:
		return b, nil
	case []byte:
		return bytes.NewReader(b), nil
	case string:
		return strings.NewReader(b), nil
	case url.Values:
		return strings.NewReader(b.Encode()), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		return bytes.NewReader(data), nil
	}
}

// extractMeta returns the body's top-level "meta" object when present.
func extractMeta(raw []byte) *Meta {
	var probe struct {
		Meta *Meta `json:"meta"`
	}
	if len(raw) == 0 || json.Unmarshal(raw, &probe) != nil {
		return nil
	}
	return probe.Meta
}

// transportFailure normalizes a failure where no response was received.
func transportFailure(err error) *ErrorEnvelope {
	return &ErrorEnvelope{
		StatusCode:    http.StatusInternalServerError,
		Message:       DefaultErrorMessage,
		ErrorMessages: DefaultErrorMessage,
		Cause:         err,
	}
}

// responseFailure normalizes a non-2xx response. The status comes from the
// body's statusCode when the server sends one, else from the response.
func responseFailure(status int, raw []byte) *ErrorEnvelope {
	e := &ErrorEnvelope{StatusCode: status, Message: DefaultErrorMessage}
	if len(bytes.TrimSpace(raw)) > 0 {
		e.Body = raw
	}

	var body struct {
		StatusCode    int             `json:"statusCode"`
		Message       string          `json:"message"`
		ErrorMessages json.RawMessage `json:"errorMessages"`
	}
	if json.Unmarshal(raw, &body) == nil {
		if body.StatusCode > 0 {
			e.StatusCode = body.StatusCode
		}
		if body.Message != "" {
			e.Message = body.Message
		}
		if len(body.ErrorMessages) > 0 && string(body.ErrorMessages) != "null" {
			var msgs any
			if json.Unmarshal(body.ErrorMessages, &msgs) == nil {
				e.ErrorMessages = msgs
			}
		}
	} else if text := strings.TrimSpace(string(raw)); text != "" && len(text) <= 512 {
		e.Message = text
	}

	if e.StatusCode == 0 {
		e.StatusCode = http.StatusInternalServerError
	}
	if e.ErrorMessages == nil {
		e.ErrorMessages = e.Message
	}
	return e
}
