// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"eventhub/cli/internal/api"
	"eventhub/cli/internal/backend"
)

// meCmd fetches the profile of the logged-in user from the server, which also
// confirms that the stored session is still accepted.
var meCmd = protect(&cobra.Command{
	Use:   "me",
	Short: "Show your profile as the server sees it",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		res := withSpinner("Loading profile", func() api.Result[backend.Response[backend.User]] {
			return a.api.GetLoggedUser(cmd.Context())
		})
		if !res.IsOK() {
			return a.presentFailure(res.Err, "loading your profile")
		}
		u := res.Data.Data
		return pterm.DefaultTable.WithData([][]string{
			{"Name", orDash(u.Name)},
			{"Email", orDash(u.Email)},
			{"Role", orDash(u.Role)},
			{"Photo", orDash(u.PhotoURL)},
			{"ID", orDash(u.ID)},
		}).Render()
	},
})

func init() {
	rootCmd.AddCommand(meCmd)
}
