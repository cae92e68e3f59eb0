// Package xdg resolves XDG Base Directory paths for eventhub.
//
// Configuration lives under the config dir; the encrypted file keyring used
// when no OS credential store is available lives under the state dir.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under each XDG base.
const AppName = "eventhub"

// ConfigDir returns the XDG config directory for eventhub, creating it with
// 0700 permissions. Falls back to ~/.config/eventhub when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return ensure("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the XDG state directory for eventhub, creating it with
// 0700 permissions. Falls back to ~/.local/state/eventhub when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	return ensure("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func ensure(envVar, homeRel string) (string, error) {
	base := os.Getenv(envVar)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, homeRel)
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
