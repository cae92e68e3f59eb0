// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the EventHub CLI.
// It implements subcommands for authentication and event management using the
// Cobra CLI framework. Every command shares one composition root (see app.go)
// which wires configuration, the session store, and the API client.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"eventhub/cli/internal/auth"
	apperrors "eventhub/cli/internal/errors"
	"eventhub/cli/internal/logging"
)

const (
	// annotationProtected marks commands that need a stored session.
	annotationProtected = "eventhub/protected"
	// annotationStandalone marks commands that run without config or session store.
	annotationStandalone = "eventhub/standalone"
)

var (
	envFlag     string
	verboseFlag bool
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "eventhub",
	Short:         "EventHub CLI for browsing, creating and joining events",
	Long:          `EventHub is a command-line client for the EventHub service. Sign up, log in, and manage events from your terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Annotations:   map[string]string{annotationStandalone: "true"},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[annotationStandalone] == "true" {
			return nil
		}
		a, err := setupApp(cmd)
		if err != nil {
			return err
		}
		cmd.SetContext(withApp(cmd.Context(), a))
		if isProtected(cmd) {
			return a.session.Require(cmd.CommandPath())
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			printVersion(cmd)
			return nil
		}
		return cmd.Help()
	},
}

// protect marks cmd as requiring login.
func protect(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationProtected] = "true"
	return cmd
}

func isProtected(cmd *cobra.Command) bool {
	return cmd.Annotations[annotationProtected] == "true"
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// reportError prints err unless the command already presented it.
func reportError(err error) {
	switch apperrors.KindOf(err) {
	case apperrors.RequestFailed:
		// httperrors.PresentFailure already explained it.
	case apperrors.NotAuthenticated:
		pterm.Println("🔒 You're not logged in yet!")
		if cb := auth.CallbackOf(err); cb != "" {
			pterm.Printf("   Run 'eventhub login', then retry '%s'.\n", cb)
		} else {
			pterm.Println("   Run 'eventhub login' to get started.")
		}
	case apperrors.ValidationFailed:
		var e *apperrors.E
		if errors.As(err, &e) {
			pterm.Error.Println(e.Message)
		}
	default:
		fmt.Fprintln(os.Stderr, logging.PresentError("eventhub", err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "", "Runtime environment: development (local server) or production")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging of requests")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}
