// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors presents normalized request failures to the user.
package httperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"

	"eventhub/cli/internal/api"
	apperrors "eventhub/cli/internal/errors"
	"eventhub/cli/internal/logging"
)

// Category groups failures by what the user can do about them.
type Category int

const (
	Generic Category = iota
	Timeout
	DNS
	ConnectionRefused
	TLS
	Canceled
	Unauthorized
	NotFound
	ClientError
	ServerError
)

// Classify inspects the failure's status and transport cause.
func Classify(f *api.Failure) Category {
	if f == nil {
		return Generic
	}
	cause := f.Cause
	switch {
	case errors.Is(cause, context.Canceled):
		return Canceled
	case isTimeoutError(cause):
		return Timeout
	case isDNSError(cause):
		return DNS
	case isConnectionRefusedError(cause):
		return ConnectionRefused
	case isSSLError(cause):
		return TLS
	}

	var env *api.ErrorEnvelope
	transportOnly := cause != nil && !errors.As(cause, &env)
	switch {
	case f.Unauthorized():
		return Unauthorized
	case f.Status == http.StatusNotFound:
		return NotFound
	case f.Status >= 400 && f.Status < 500:
		return ClientError
	case f.Status >= 500 && !transportOnly:
		return ServerError
	}
	return Generic
}

// PresentFailure prints a friendly explanation of f and returns an error
// suitable for the command's RunE.
func PresentFailure(f *api.Failure, action, host string) error {
	if f == nil {
		return nil
	}
	msg := logging.Mask(f.Message())

	switch Classify(f) {
	case Canceled:
		pterm.Warning.Printf("Request canceled while %s\n", action)
	case Timeout:
		showTimeoutError(action)
	case DNS:
		showDNSError(action, host)
	case ConnectionRefused:
		showConnectionRefusedError(action)
	case TLS:
		showSSLError(action)
	case Unauthorized:
		pterm.Error.Printf("Not authorized while %s: %s\n", action, msg)
		pterm.Info.Println("Your session may have expired. Run 'eventhub login' and try again.")
	case NotFound:
		pterm.Error.Printf("Not found while %s: %s\n", action, msg)
	case ClientError:
		pterm.Error.Printf("Request rejected while %s: %s\n", action, msg)
		printDetails(f)
	case ServerError:
		showServerError(action, msg)
	default:
		showGenericError(action, host, f)
	}

	return apperrors.Wrap(apperrors.RequestFailed, action, f)
}

// printDetails lists field-level messages when the server sent errorMessages.
func printDetails(f *api.Failure) {
	body, ok := f.Data.(map[string]any)
	if !ok {
		return
	}
	list, ok := body["errorMessages"].([]any)
	if !ok {
		return
	}
	items := make([]pterm.BulletListItem, 0, len(list))
	for _, it := range list {
		switch v := it.(type) {
		case map[string]any:
			path, _ := v["path"].(string)
			m, _ := v["message"].(string)
			items = append(items, pterm.BulletListItem{Level: 0, Text: strings.TrimSpace(path + " " + m)})
		case string:
			items = append(items, pterm.BulletListItem{Level: 0, Text: v})
		}
	}
	if len(items) > 0 {
		_ = pterm.DefaultBulletList.WithItems(items).Render()
	}
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded")
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	if err == nil {
		return false
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

// isSSLError checks if the error is an SSL/TLS error.
func isSSLError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate")
}

func showTimeoutError(action string) {
	pterm.Printf("⏱️  Connection timeout while %s\n", action)
	pterm.Println()
	pterm.Println("The event service took too long to respond. This could mean:")
	pterm.Println("  • Slow internet connection")
	pterm.Println("  • The service is waking up or under heavy load")
	pterm.Println()
	pterm.Println("Please try again in a few moments.")
}

func showDNSError(action, host string) {
	pterm.Printf("🌐 Cannot resolve %s while %s\n", host, action)
	pterm.Println()
	pterm.Println("Please check:")
	pterm.Println("  • Your internet connection is working")
	pterm.Println("  • DNS settings are correct")
	pterm.Println("  • The selected environment (--env) points where you expect")
}

func showConnectionRefusedError(action string) {
	pterm.Printf("🚫 Connection refused while %s\n", action)
	pterm.Println()
	pterm.Println("The event service is not accepting connections. If you are using")
	pterm.Println("--env development, make sure the local server is running.")
}

func showSSLError(action string) {
	pterm.Printf("🔒 Secure connection failed while %s\n", action)
	pterm.Println()
	pterm.Println("Try:")
	pterm.Println("  • Check your system date and time")
	pterm.Println("  • Verify network proxy settings")
}

func showServerError(action, msg string) {
	pterm.Printf("⚠️  Server error while %s\n", action)
	pterm.Println()
	pterm.Println("The event service reported an internal error. This is not a problem with your input.")
	if msg != "" && msg != api.DefaultErrorMessage {
		pterm.Println("  • " + msg)
	}
	pterm.Println("Please try again in a few minutes.")
}

func showGenericError(action, host string, f *api.Failure) {
	pterm.Printf("❌ Cannot reach the event service (%s) while %s\n", host, action)
	pterm.Println()
	pterm.Println("Please check your internet connection and firewall settings.")
	if f.Cause != nil {
		pterm.Debug.Printf("Technical details: %s\n", truncate(logging.Mask(f.Cause.Error()), 100))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}

// Describe is a one-line summary of f for logs.
func Describe(f *api.Failure) string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("status=%d message=%q", f.Status, logging.Mask(f.Message()))
}
