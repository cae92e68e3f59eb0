// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"errors"
	"fmt"

	apperrors "eventhub/cli/internal/errors"
)

// ErrNotLoggedIn is returned by Require when no session is stored.
var ErrNotLoggedIn = errors.New("not logged in")

// LoginRequiredError reports a protected action attempted without a session.
// Callback names what the user should retry after logging in.
type LoginRequiredError struct {
	Callback string
}

func (e *LoginRequiredError) Error() string {
	if e.Callback == "" {
		return ErrNotLoggedIn.Error()
	}
	return fmt.Sprintf("%s (retry %q after logging in)", ErrNotLoggedIn, e.Callback)
}

func (e *LoginRequiredError) Unwrap() error { return ErrNotLoggedIn }

// Require guards a protected action. It returns nil when a session is stored,
// otherwise a NotAuthenticated error carrying the callback.
func (m *Manager) Require(callback string) error {
	if m.IsLoggedIn() {
		return nil
	}
	return apperrors.Wrap(apperrors.NotAuthenticated, "login required", &LoginRequiredError{Callback: callback})
}

// CallbackOf extracts the callback from a guard error, or "".
func CallbackOf(err error) string {
	var lre *LoginRequiredError
	if errors.As(err, &lre) {
		return lre.Callback
	}
	return ""
}
