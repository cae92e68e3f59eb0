// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// whoamiCmd shows the identity decoded from the stored token, without any
// network call. The decoded claims are for display only.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the identity stored on this device",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		claims := a.session.CurrentIdentity()
		if claims == nil {
			if a.session.IsLoggedIn() {
				pterm.Warning.Println("A session is stored but its token could not be decoded.")
				pterm.Println("   Run 'eventhub me' to check it with the server, or log in again.")
				return nil
			}
			pterm.Println("🔒 You're not logged in yet!")
			pterm.Println("   Run 'eventhub login' to get started.")
			return nil
		}

		rows := [][]string{
			{"Name", orDash(claims.Name())},
			{"Email", orDash(claims.Email())},
			{"Role", orDash(claims.Role())},
			{"ID", orDash(claims.Subject())},
		}
		if exp, ok := claims.ExpiresAt(); ok {
			state := exp.Local().Format(time.RFC1123)
			if claims.Expired(time.Now()) {
				state += " (expired, log in again)"
			}
			rows = append(rows, []string{"Expires", state})
		}
		return pterm.DefaultTable.WithData(rows).Render()
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
