// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Kind discriminates a Result.
type Kind int

const (
	// KindOK marks a 2xx outcome; Data is set.
	KindOK Kind = iota + 1
	// KindErr marks every other outcome; Err is set.
	KindErr
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindErr:
		return "err"
	default:
		return "unknown"
	}
}

// Failure describes a request that did not succeed.
type Failure struct {
	// Status is the server's status, or 500 when no response arrived.
	Status int
	// Data is the decoded server error payload, or a message string.
	Data any
	// Cause is the underlying transport or decode error, when there is one.
	Cause error
}

// Message extracts a human-readable message from Data.
func (f *Failure) Message() string {
	switch d := f.Data.(type) {
	case string:
		if d != "" {
			return d
		}
	case map[string]any:
		if m, ok := d["message"].(string); ok && m != "" {
			return m
		}
	}
	return DefaultErrorMessage
}

func (f *Failure) Error() string {
	return fmt.Sprintf("request failed (%d): %s", f.Status, f.Message())
}

func (f *Failure) Unwrap() error { return f.Cause }

// Unauthorized reports whether the server rejected the session.
func (f *Failure) Unauthorized() bool {
	return f.Status == http.StatusUnauthorized || f.Status == http.StatusForbidden
}

// Result is the outcome of a facade call: exactly one of Data or Err is meaningful.
type Result[T any] struct {
	Kind Kind
	Data T
	Meta *Meta
	Err  *Failure

	// Raw is the undecoded 2xx body. Data is zero when Raw does not fit T.
	Raw json.RawMessage
}

// OK builds a successful Result.
func OK[T any](data T, meta *Meta) Result[T] {
	return Result[T]{Kind: KindOK, Data: data, Meta: meta}
}

// Fail builds a failed Result.
func Fail[T any](f *Failure) Result[T] {
	return Result[T]{Kind: KindErr, Err: f}
}

// IsOK reports whether r succeeded.
func (r Result[T]) IsOK() bool { return r.Kind == KindOK }
