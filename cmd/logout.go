// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	apperrors "eventhub/cli/internal/errors"
)

// logoutCmd removes the stored session. The service keeps no server-side
// session, so there is nothing to revoke remotely.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session from this device",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		if !a.session.IsLoggedIn() {
			pterm.Println("You're not logged in.")
			return nil
		}
		if err := a.session.ClearSession(); err != nil {
			return apperrors.Wrap(apperrors.SessionStore, "clear session", err)
		}
		pterm.Println("✅ Logged out. Your session has been removed from this device.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
