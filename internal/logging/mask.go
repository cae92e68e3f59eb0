// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides the CLI's structured logger and secret masking.
//
// Every value that may carry a credential (Authorization headers, login
// payloads, URLs with token query parameters) goes through Mask before it is
// written to a log line or shown to the user.
package logging

import (
	"regexp"
	"strings"
)

var (
	rePassword = regexp.MustCompile(`(?i)(password=)([^\s;&]+)`)
	reToken    = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._~+/=-]+)`)
	reJSONKey  = regexp.MustCompile(`(?i)("(?:password|accessToken|access_token|refreshToken|refresh_token|token|authorization)"\s*:\s*")([^"]*)(")`)
	reAPIKey   = regexp.MustCompile(`(?i)(apikey=|api_key=)([^\s;&]+)`)
)

// Mask replaces sensitive values in the input string with "***".
func Mask(s string) string {
	out := s
	out = reJSONKey.ReplaceAllString(out, "$1***$3")
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reAPIKey.ReplaceAllString(out, "$1***")
	for _, k := range []string{"EVENTHUB_KEYRING_PASSWORD"} {
		out = strings.ReplaceAll(out, k+"=", k+"=***")
	}
	return out
}

// MaskHeader returns a loggable form of an Authorization-like header value:
// the scheme is kept, the credential is not.
func MaskHeader(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if i := strings.IndexByte(v, ' '); i > 0 {
		return v[:i] + " ***"
	}
	return "***"
}
