package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseURL(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{name: "development", env: "development", want: LocalBaseURL},
		{name: "capitalized is not development", env: "Development", want: DeployedBaseURL},
		{name: "padded is not development", env: " development ", want: DeployedBaseURL},
		{name: "production", env: "production", want: DeployedBaseURL},
		{name: "empty", env: "", want: DeployedBaseURL},
		{name: "unknown", env: "staging", want: DeployedBaseURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseURL(tt.env))
			assert.Equal(t, tt.want, Resolver{Env: tt.env}.BaseURL())
		})
	}
}

func TestResolver_Override(t *testing.T) {
	r := Resolver{Env: Development, Override: "http://127.0.0.1:9999/api/v1/"}
	assert.Equal(t, "http://127.0.0.1:9999/api/v1", r.BaseURL())

	r.Override = "  "
	assert.Equal(t, LocalBaseURL, r.BaseURL())
}
