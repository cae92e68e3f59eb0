package backend

import (
	"net/url"
)

// REST paths relative to the environment base URL.
const (
	PathSignup    = "/auth/signup"
	PathLogin     = "/auth/login"
	PathMyProfile = "/users/my-profile"
	PathEvents    = "/events"
	PathMyEvents  = "/events/my-event"
)

// EventPath returns /events/{id}.
func EventPath(id string) string {
	return PathEvents + "/" + url.PathEscape(id)
}

// JoinEventPath returns the join endpoint for an event. The service contract
// for joining is POST /events/{id}/join with an empty JSON object.
func JoinEventPath(id string) string {
	return EventPath(id) + "/join"
}
