package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_MissingReturnsDefaults(t *testing.T) {
	c, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), c)
}

func TestSaveFile_RoundTripOmitsPassword(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	in := Config{LogLevel: "debug", Environment: "development", SessionBackend: "file", KeyringPassword: "secret"}
	require.NoError(t, SaveFile(p, in))

	raw, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")

	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	out, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "debug", out.LogLevel)
	assert.Equal(t, "development", out.Environment)
	assert.Equal(t, "file", out.SessionBackend)
	assert.Empty(t, out.KeyringPassword)
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte("{"), 0o600))
	_, err := LoadFile(p)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantEnv string
		wantLvl string
	}{
		{
			name:    "eventhub env wins",
			env:     map[string]string{"EVENTHUB_ENV": "development", "NODE_ENV": "production"},
			wantEnv: "development",
			wantLvl: "info",
		},
		{
			name:    "node env fallback",
			env:     map[string]string{"NODE_ENV": "development"},
			wantEnv: "development",
			wantLvl: "info",
		},
		{
			name:    "log level override",
			env:     map[string]string{"EVENTHUB_LOG_LEVEL": "debug"},
			wantEnv: "",
			wantLvl: "debug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"EVENTHUB_ENV", "NODE_ENV", "EVENTHUB_LOG_LEVEL"} {
				t.Setenv(k, "")
				os.Unsetenv(k)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			c := Defaults()
			require.NoError(t, ApplyEnv(&c))
			assert.Equal(t, tt.wantEnv, c.Environment)
			assert.Equal(t, tt.wantLvl, c.LogLevel)
		})
	}
}

func TestLoad_UsesXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("EVENTHUB_ENV", "production")

	p, err := Path()
	require.NoError(t, err)
	require.NoError(t, SaveFile(p, Config{LogLevel: "warn", Environment: "development"}))

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "production", c.Environment)
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{name: "log level", key: "log_level", value: "debug"},
		{name: "bad log level", key: "log_level", value: "loud", wantErr: true},
		{name: "environment", key: "environment", value: "development"},
		{name: "session backend", key: "session_backend", value: "file"},
		{name: "bad session backend", key: "session_backend", value: "cloud", wantErr: true},
		{name: "api url", key: "api_url", value: "http://127.0.0.1:8700/api/v1"},
		{name: "clear api url", key: "api_url", value: ""},
		{name: "relative api url", key: "api_url", value: "/api/v1", wantErr: true},
		{name: "unknown key", key: "color", value: "on", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults()
			err := c.Set(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			got, err := c.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestSave_WritesUnderConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := Defaults()
	require.NoError(t, c.Set("environment", "development"))
	require.NoError(t, Save(c))

	p, err := Path()
	require.NoError(t, err)
	got, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "development", got.Environment)
}
