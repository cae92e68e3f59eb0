// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// Descriptor declares one request relative to the base URL.
type Descriptor struct {
	URL         string
	Method      string
	Data        any
	Params      url.Values
	ContentType string
}

// Client binds an Executor to a base URL source. All resource calls go
// through Request with a Client; nothing else calls the Executor.
type Client struct {
	exec    *Executor
	baseURL func() string
}

// NewClient creates a facade client. baseURL is consulted on every call.
func NewClient(exec *Executor, baseURL func() string) *Client {
	return &Client{exec: exec, baseURL: baseURL}
}

// Request performs d and decodes a 2xx body into T. Every outcome, including
// transport failures and cancellation, is returned as a Result value.
func Request[T any](ctx context.Context, c *Client, d Descriptor) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail[T](&Failure{
				Status: http.StatusInternalServerError,
				Data:   DefaultErrorMessage,
				Cause:  fmt.Errorf("request panicked: %v", r),
			})
		}
	}()

	env, err := c.exec.Do(ctx, Call{
		Method:      d.Method,
		URL:         c.baseURL() + d.URL,
		Body:        d.Data,
		Params:      d.Params,
		ContentType: d.ContentType,
	})
	if err != nil {
		return Fail[T](failureFrom(err))
	}

	// A 2xx is never a failure. When the body does not fit T (plain-text
	// acknowledgements, for example) Data stays zero and Raw keeps the body.
	var data T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			c.exec.log.Debug("response body did not match the expected shape", c.exec.log.Args(
				"status", env.Status,
				"error", err.Error(),
			))
			var zero T
			data = zero
		}
	}
	res = OK(data, env.Meta)
	res.Raw = env.Data
	return res
}

// failureFrom derives the Failure for a rejected call.
func failureFrom(err error) *Failure {
	var env *ErrorEnvelope
	if !errors.As(err, &env) {
		return &Failure{Status: http.StatusInternalServerError, Data: err.Error(), Cause: err}
	}

	f := &Failure{Status: env.StatusCode, Data: env.Message, Cause: env.Cause}
	if len(env.Body) > 0 {
		var body any
		if json.Unmarshal(env.Body, &body) == nil && body != nil {
			f.Data = body
		}
	}
	if f.Cause == nil {
		f.Cause = env
	}
	return f
}
