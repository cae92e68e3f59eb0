// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package keychain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SetGetRemove(t *testing.T) {
	m := NewMemory()

	got, err := m.Get("accessToken")
	require.NoError(t, err)
	assert.Empty(t, got, "missing key should read as empty")

	require.NoError(t, m.Set("accessToken", "Bearer first"))
	got, err = m.Get("accessToken")
	require.NoError(t, err)
	assert.Equal(t, "Bearer first", got)

	require.NoError(t, m.Set("accessToken", "Bearer second"))
	got, err = m.Get("accessToken")
	require.NoError(t, err)
	assert.Equal(t, "Bearer second", got, "set must overwrite")

	require.NoError(t, m.Remove("accessToken"))
	got, err = m.Get("accessToken")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestManager_RemoveMissingKey(t *testing.T) {
	m := NewMemory()
	assert.NoError(t, m.Remove("never-set"))
}

func TestManager_ValuesAreOpaque(t *testing.T) {
	m := NewMemory()
	for _, v := range []string{"", "not a token", "a.b.c", "  spaced  "} {
		require.NoError(t, m.Set("k", v))
		got, err := m.Get("k")
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestOpen_MemoryBackend(t *testing.T) {
	m, err := Open(Options{Backend: BackendMemory})
	require.NoError(t, err)
	require.NoError(t, m.Set("k", "v"))
	got, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestOpen_FileBackend(t *testing.T) {
	dir := t.TempDir()

	m, err := Open(Options{Backend: BackendFile, FileDir: dir, FilePassword: "pw"})
	require.NoError(t, err)
	require.NoError(t, m.Set("accessToken", "Bearer persisted"))

	reopened, err := Open(Options{Backend: BackendFile, FileDir: dir, FilePassword: "pw"})
	require.NoError(t, err)
	got, err := reopened.Get("accessToken")
	require.NoError(t, err)
	assert.Equal(t, "Bearer persisted", got)
}

func TestOpen_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "unknown backend", opts: Options{Backend: "floppy"}},
		{name: "file backend without dir", opts: Options{Backend: BackendFile}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.opts)
			assert.Error(t, err)
		})
	}
}
