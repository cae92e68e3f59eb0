// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain is the durable session store for eventhub.
//
// Values are opaque strings kept in the OS credential store (macOS Keychain,
// Windows Credential Manager, Secret Service, pass) or, when none of those is
// available, in an encrypted file keyring under the XDG state directory.
// The store never inspects what it holds.
package keychain

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"strings"
	"sync"

	"github.com/99designs/keyring"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "eventhub"

// Backend names accepted by Options.Backend.
const (
	BackendAuto     = "auto"
	BackendKeychain = "keychain"
	BackendFile     = "file"
	BackendMemory   = "memory"
)

// Options selects and configures the underlying keyring.
type Options struct {
	// Backend is one of the Backend* constants. Empty means BackendAuto.
	Backend string
	// FileDir is where the encrypted file keyring lives.
	FileDir string
	// FilePassword unlocks the file keyring. When empty the user is prompted.
	FilePassword string
}

// Manager provides thread-safe string storage on top of a keyring.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// Open creates a Manager backed by the keyring selected in opts.
func Open(opts Options) (*Manager, error) {
	backend := strings.ToLower(strings.TrimSpace(opts.Backend))
	if backend == BackendMemory {
		return NewMemory(), nil
	}

	cfg := keyring.Config{
		ServiceName:              ServiceName,
		KeychainTrustApplication: true,
		PassPrefix:               ServiceName,
		WinCredPrefix:            ServiceName,
		FileDir:                  opts.FileDir,
		FilePasswordFunc:         keyring.TerminalPrompt,
	}
	if opts.FilePassword != "" {
		cfg.FilePasswordFunc = keyring.FixedStringPrompt(opts.FilePassword)
	}

	switch backend {
	case "", BackendAuto:
		cfg.AllowedBackends = append(nativeBackends(), keyring.FileBackend)
	case BackendKeychain:
		cfg.AllowedBackends = nativeBackends()
	case BackendFile:
		cfg.AllowedBackends = []keyring.BackendType{keyring.FileBackend}
	default:
		return nil, fmt.Errorf("unknown session backend %q", opts.Backend)
	}

	if opts.FileDir == "" {
		cfg.AllowedBackends = withoutBackend(cfg.AllowedBackends, keyring.FileBackend)
	}
	if len(cfg.AllowedBackends) == 0 {
		return nil, errors.New("no credential store available: set a file keyring directory")
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}
	return &Manager{ring: ring}, nil
}

// NewMemory returns a Manager that keeps values in process memory only.
func NewMemory() *Manager {
	return &Manager{ring: keyring.NewArrayKeyring(nil)}
}

// nativeBackends lists the OS credential stores we prefer on this platform.
func nativeBackends() []keyring.BackendType {
	switch runtime.GOOS {
	case "darwin":
		return []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		return []keyring.BackendType{keyring.WinCredBackend}
	default:
		return []keyring.BackendType{keyring.SecretServiceBackend, keyring.KWalletBackend, keyring.PassBackend}
	}
}

func withoutBackend(in []keyring.BackendType, drop keyring.BackendType) []keyring.BackendType {
	out := make([]keyring.BackendType, 0, len(in))
	for _, b := range in {
		if b != drop {
			out = append(out, b)
		}
	}
	return out
}

// Set stores value under key, replacing whatever was there.
// This method is thread-safe.
func (m *Manager) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Set(keyring.Item{Key: key, Data: []byte(value)}); err != nil {
		return fmt.Errorf("store %q: %w", key, err)
	}
	return nil
}

// Get returns the value stored under key. A missing key yields "" and no error.
// This method is thread-safe.
func (m *Manager) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load %q: %w", key, err)
	}
	return string(it.Data), nil
}

// Remove deletes key. Removing a missing key is not an error.
// This method is thread-safe.
func (m *Manager) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.ring.Remove(key)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}
