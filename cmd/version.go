// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"runtime"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"eventhub/cli/internal/environment"
)

var (
	// Version holds the CLI version information.
	// This value is typically set at build time using -ldflags.
	Version = "0.0.0-dev"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Show CLI version and API endpoints",
	Annotations: map[string]string{annotationStandalone: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd)
	},
}

func printVersion(cmd *cobra.Command) {
	w := cmd.OutOrStdout()
	pterm.Fprintln(w, "eventhub "+Version+" ("+runtime.GOOS+"/"+runtime.GOARCH+")")
	pterm.Fprintln(w, "  development: "+environment.LocalBaseURL)
	pterm.Fprintln(w, "  production:  "+environment.DeployedBaseURL)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
