// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package token reads the claims embedded in a bearer token.
//
// Decoding is unverified: the signature is never checked, so claims are only
// fit for display (account name, expiry hints). Authorization is always
// decided by the server on each request.
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a token.
type Claims map[string]any

var parser = jwt.NewParser(jwt.WithPaddingAllowed())

// Decode returns the claims of a header.payload.signature token, or nil when
// the token is malformed. A leading "Bearer " scheme is ignored. Decode never
// panics and never returns an error; any failure means "no claims".
func Decode(raw string) Claims {
	tok := StripScheme(raw)
	if tok == "" || strings.Count(tok, ".") != 2 {
		return nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tok, claims); err != nil {
		// An unknown or missing alg still leaves a fully decoded payload.
		if !errors.Is(err, jwt.ErrTokenUnverifiable) {
			return nil
		}
	}
	if len(claims) == 0 {
		return nil
	}
	return Claims(claims)
}

// StripScheme removes a case-insensitive "Bearer" prefix and surrounding space.
func StripScheme(value string) string {
	v := strings.TrimSpace(value)
	if len(v) >= 7 && strings.EqualFold(v[:6], "bearer") && (v[6] == ' ' || v[6] == '\t') {
		return strings.TrimSpace(v[7:])
	}
	return v
}

// Subject returns the user identifier, trying the common claim names.
func (c Claims) Subject() string {
	for _, k := range []string{"sub", "id", "_id", "userId", "user_id"} {
		if s := c.str(k); s != "" {
			return s
		}
	}
	return ""
}

// Email returns the email claim when present.
func (c Claims) Email() string { return c.str("email") }

// Name returns the display name claim when present.
func (c Claims) Name() string {
	if s := c.str("name"); s != "" {
		return s
	}
	return c.str("username")
}

// Role returns the role claim when present.
func (c Claims) Role() string { return c.str("role") }

// ExpiresAt returns the exp claim. ok is false when absent or not numeric.
func (c Claims) ExpiresAt() (time.Time, bool) {
	exp, err := jwt.MapClaims(c).GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired reports whether exp is present and not after now.
func (c Claims) Expired(now time.Time) bool {
	exp, ok := c.ExpiresAt()
	return ok && !exp.After(now)
}

func (c Claims) str(key string) string {
	switch v := c[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}
