// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth manages the client-side session lifecycle for the eventhub CLI.
//
// A session is a single bearer token kept in a Store under one fixed key.
// Manager is the only sanctioned writer of that key: commands store the token
// returned by login, read the decoded identity for display, and clear it on
// logout. The HTTP executor only reads it through Manager.Token.
//
// Login state is presence-only. An expired but present token still counts as
// logged in; the server rejects it on the next request, which is where
// authorization is actually decided.
package auth

import (
	"eventhub/cli/internal/token"
)

// SessionKey is the storage key holding the bearer token.
const SessionKey = "accessToken"

// Store is the durable string storage a Manager writes through.
type Store interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Remove(key string) error
}

// Manager exposes session operations over a Store.
type Manager struct {
	store Store
	key   string
}

// NewManager constructs a Manager over store.
func NewManager(store Store) *Manager {
	return &Manager{store: store, key: SessionKey}
}

// Key returns the storage key used for the session token.
func (m *Manager) Key() string { return m.key }

// StoreSession persists accessToken verbatim, replacing any previous session.
// The value is expected in the form the server wants in the Authorization
// header (for example "Bearer <jwt>").
func (m *Manager) StoreSession(accessToken string) error {
	return m.store.Set(m.key, accessToken)
}

// CurrentIdentity decodes the stored token. It returns nil when there is no
// session, the store cannot be read, or the token is malformed; callers treat
// all three as "not logged in".
func (m *Manager) CurrentIdentity() token.Claims {
	raw, err := m.store.Get(m.key)
	if err != nil || raw == "" {
		return nil
	}
	return token.Decode(raw)
}

// ClearSession removes the stored token.
func (m *Manager) ClearSession() error {
	return m.store.Remove(m.key)
}

// IsLoggedIn reports whether a non-empty token is stored. Expiry and signature
// are not checked.
func (m *Manager) IsLoggedIn() bool {
	raw, err := m.store.Get(m.key)
	return err == nil && raw != ""
}

// Token returns the raw stored token for use as an Authorization header.
func (m *Manager) Token() (string, error) {
	return m.store.Get(m.key)
}
