// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the resource operations the eventhub CLI performs
// against the remote event service. Each operation is a fixed path and method
// handed to the api facade; there is no logic beyond building the request.
package backend

import (
	"context"

	"eventhub/cli/internal/api"
)

// API defines backend operations the CLI depends on.
// Implementations call the real REST endpoints or provide fakes for tests.
type API interface {
	Signup(ctx context.Context, in SignupRequest) api.Result[Response[User]]
	Login(ctx context.Context, in LoginRequest) api.Result[Response[LoginData]]
	// GetLoggedUser requires a stored session.
	GetLoggedUser(ctx context.Context) api.Result[Response[User]]

	ListEvents(ctx context.Context, q EventQuery) api.Result[Response[[]Event]]
	GetEvent(ctx context.Context, id string) api.Result[Response[Event]]
	CreateEvent(ctx context.Context, in EventInput) api.Result[Response[Event]]
	UpdateEvent(ctx context.Context, id string, patch EventPatch) api.Result[Response[Event]]
	DeleteEvent(ctx context.Context, id string) api.Result[Response[Event]]
	// MyEvents requires a stored session.
	MyEvents(ctx context.Context, q EventQuery) api.Result[Response[[]Event]]
	JoinEvent(ctx context.Context, id string) api.Result[Response[Event]]
}
