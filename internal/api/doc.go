// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package api is the single path by which eventhub talks to the remote event
// service.
//
// Executor is the configured HTTP client: fixed timeout, JSON headers, a
// request interceptor chain that attaches the stored session token verbatim as
// the Authorization header, and response normalization that turns every
// outcome into either an Envelope (2xx) or an *ErrorEnvelope (anything else,
// including transport failures).
//
// Request is the facade on top of it. It resolves the absolute URL from a
// base URL function, runs the call, and returns a Result[T] value. It never
// panics and never returns an error: callers switch on Result.Kind.
//
//	res := api.Request[backend.Response[[]backend.Event]](ctx, client, api.Descriptor{
//		URL:    "/events",
//		Method: http.MethodGet,
//		Params: url.Values{"searchTerm": {"tech"}},
//	})
//	switch res.Kind {
//	case api.KindOK:
//		render(res.Data)
//	case api.KindErr:
//		report(res.Err.Status, res.Err.Message())
//	}
package api
