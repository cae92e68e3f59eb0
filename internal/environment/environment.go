// Package environment maps the runtime environment flag to the API base URL.
package environment

import "strings"

// Recognized environment names.
const (
	Development = "development"
	Production  = "production"
)

// Base URLs of the remote event service.
const (
	LocalBaseURL    = "http://localhost:8700/api/v1"
	DeployedBaseURL = "https://event-hub-backend-omega.vercel.app/api/v1"
)

// BaseURL returns the API base URL for the given environment flag.
// Only the exact value "development" selects the local server; anything else,
// including other spellings, selects the deployed one.
func BaseURL(env string) string {
	if env == Development {
		return LocalBaseURL
	}
	return DeployedBaseURL
}

// Resolver yields the base URL for a fixed environment flag.
type Resolver struct {
	Env string
	// Override replaces the environment's URL when set (self-hosted services).
	Override string
}

// BaseURL resolves r. It is recomputed on every call.
func (r Resolver) BaseURL() string {
	if o := strings.TrimRight(strings.TrimSpace(r.Override), "/"); o != "" {
		return o
	}
	return BaseURL(r.Env)
}
