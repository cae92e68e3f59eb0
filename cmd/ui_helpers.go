// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"eventhub/cli/internal/api"
	"eventhub/cli/internal/httperrors"
	"eventhub/cli/internal/terminal"
	"eventhub/cli/internal/validate"
)

// withSpinner runs fn while an inline spinner shows text. The spinner is only
// drawn on an interactive terminal.
func withSpinner[T any](text string, fn func() T) T {
	if !terminal.IsInteractive() {
		return fn()
	}
	sp, err := pterm.DefaultSpinner.
		WithSequence("|", "/", "-", "\\").
		WithRemoveWhenDone(true).
		Start(text)
	if err != nil {
		return fn()
	}
	defer func() { _ = sp.Stop() }()
	return fn()
}

// presentFailure explains a failed call and returns the error for RunE.
func (a *app) presentFailure(f *api.Failure, action string) error {
	a.log.Debug("request failed", a.log.Args("action", action, "detail", httperrors.Describe(f)))
	return httperrors.PresentFailure(f, action, httperrors.ExtractHostFromURL(a.resolver.BaseURL()))
}

// printValidation lists failing fields and returns the validation error.
func printValidation(errs validate.Errors) error {
	if errs.OK() {
		return nil
	}
	items := make([]pterm.BulletListItem, 0, len(errs))
	for _, f := range errs.Fields() {
		items = append(items, pterm.BulletListItem{Level: 0, Text: errs[f]})
	}
	pterm.Warning.Println("Please fix the following:")
	_ = pterm.DefaultBulletList.WithItems(items).Render()
	return errs.Err()
}

// promptText asks for a value when it was not given as a flag.
func promptText(current, label string) (string, error) {
	if strings.TrimSpace(current) != "" || !terminal.IsInteractive() {
		return current, nil
	}
	return pterm.DefaultInteractiveTextInput.Show(label)
}

// promptSecret reads a secret without echo and removes the prompt line afterwards.
func promptSecret(current, label string) (string, error) {
	if current != "" || !terminal.IsInteractive() {
		return current, nil
	}
	prompt := label + ": "
	fmt.Print(prompt)
	v, err := terminal.ReadSecret()
	if err != nil {
		return "", err
	}
	fmt.Println()
	terminal.ClearPreviousLines(len(prompt))
	return v, nil
}

// confirm asks a yes/no question; non-interactive sessions answer no.
func confirm(question string) bool {
	if !terminal.IsInteractive() {
		return false
	}
	ok, err := pterm.DefaultInteractiveConfirm.WithDefaultValue(false).Show(question)
	return err == nil && ok
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
