// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"eventhub/cli/internal/api"
	"eventhub/cli/internal/backend"
	"eventhub/cli/internal/validate"
)

var signupOpts struct {
	name     string
	email    string
	password string
	photoURL string
}

// signupCmd creates a new account. Input is validated locally first.
var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new EventHub account",
	Long: `The signup command registers a new account. Missing values are prompted for
when running in a terminal. All fields are checked locally before anything is sent.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)

		form := validate.SignupForm{
			Name:     signupOpts.name,
			Email:    signupOpts.email,
			Password: signupOpts.password,
			PhotoURL: signupOpts.photoURL,
		}
		var err error
		if form.Name, err = promptText(form.Name, "Full name"); err != nil {
			return err
		}
		if form.Email, err = promptText(form.Email, "Email"); err != nil {
			return err
		}
		if form.Password, err = promptSecret(form.Password, "Password"); err != nil {
			return err
		}
		if form.PhotoURL, err = promptText(form.PhotoURL, "Photo URL"); err != nil {
			return err
		}
		if err := printValidation(validate.Signup(form)); err != nil {
			return err
		}

		res := withSpinner("Creating account", func() api.Result[backend.Response[backend.User]] {
			return a.api.Signup(cmd.Context(), backend.SignupRequest{
				Name:     strings.TrimSpace(form.Name),
				Email:    strings.TrimSpace(form.Email),
				Password: form.Password,
				PhotoURL: strings.TrimSpace(form.PhotoURL),
			})
		})
		if !res.IsOK() {
			return a.presentFailure(res.Err, "creating your account")
		}

		pterm.Success.Printf("Account created for %s\n", orDash(res.Data.Data.Email))
		pterm.Println("   Run 'eventhub login' to sign in.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(signupCmd)
	f := signupCmd.Flags()
	f.StringVar(&signupOpts.name, "name", "", "Full name (letters and spaces)")
	f.StringVar(&signupOpts.email, "email", "", "Email address")
	f.StringVar(&signupOpts.password, "password", "", "Password (prompted when omitted)")
	f.StringVar(&signupOpts.photoURL, "photo-url", "", "Profile photo URL")
}
