// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"

	"eventhub/cli/internal/api"
)

// HTTP implements API over the REST endpoints via the api facade.
type HTTP struct {
	client *api.Client
}

func (h *HTTP) Signup(ctx context.Context, in SignupRequest) api.Result[Response[User]] {
	return api.Request[Response[User]](ctx, h.client, api.Descriptor{
		URL:    PathSignup,
		Method: http.MethodPost,
		Data:   in,
	})
}

func (h *HTTP) Login(ctx context.Context, in LoginRequest) api.Result[Response[LoginData]] {
	return api.Request[Response[LoginData]](ctx, h.client, api.Descriptor{
		URL:    PathLogin,
		Method: http.MethodPost,
		Data:   in,
	})
}

func (h *HTTP) GetLoggedUser(ctx context.Context) api.Result[Response[User]] {
	return api.Request[Response[User]](ctx, h.client, api.Descriptor{
		URL:    PathMyProfile,
		Method: http.MethodGet,
	})
}

func (h *HTTP) ListEvents(ctx context.Context, q EventQuery) api.Result[Response[[]Event]] {
	return api.Request[Response[[]Event]](ctx, h.client, api.Descriptor{
		URL:    PathEvents,
		Method: http.MethodGet,
		Params: q.Values(),
	})
}

func (h *HTTP) GetEvent(ctx context.Context, id string) api.Result[Response[Event]] {
	return api.Request[Response[Event]](ctx, h.client, api.Descriptor{
		URL:    EventPath(id),
		Method: http.MethodGet,
	})
}

func (h *HTTP) CreateEvent(ctx context.Context, in EventInput) api.Result[Response[Event]] {
	return api.Request[Response[Event]](ctx, h.client, api.Descriptor{
		URL:    PathEvents,
		Method: http.MethodPost,
		Data:   in,
	})
}

// UpdateEvent sends only the fields set in patch.
func (h *HTTP) UpdateEvent(ctx context.Context, id string, patch EventPatch) api.Result[Response[Event]] {
	return api.Request[Response[Event]](ctx, h.client, api.Descriptor{
		URL:    EventPath(id),
		Method: http.MethodPatch,
		Data:   patch,
	})
}

func (h *HTTP) DeleteEvent(ctx context.Context, id string) api.Result[Response[Event]] {
	return api.Request[Response[Event]](ctx, h.client, api.Descriptor{
		URL:    EventPath(id),
		Method: http.MethodDelete,
	})
}

func (h *HTTP) MyEvents(ctx context.Context, q EventQuery) api.Result[Response[[]Event]] {
	return api.Request[Response[[]Event]](ctx, h.client, api.Descriptor{
		URL:    PathMyEvents,
		Method: http.MethodGet,
		Params: q.Values(),
	})
}

func (h *HTTP) JoinEvent(ctx context.Context, id string) api.Result[Response[Event]] {
	return api.Request[Response[Event]](ctx, h.client, api.Descriptor{
		URL:    JoinEventPath(id),
		Method: http.MethodPost,
		Data:   struct{}{},
	})
}
