// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"eventhub/cli/internal/api"
	"eventhub/cli/internal/backend"
	apperrors "eventhub/cli/internal/errors"
	"eventhub/cli/internal/token"
	"eventhub/cli/internal/validate"
)

var loginOpts struct {
	email    string
	password string
}

// loginCmd exchanges credentials for an access token and stores it.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"signin"},
	Short:   "Log in and store the session on this device",
	Long: `The login command sends your email and password to the service and stores the
returned access token in the OS credential store. Later commands send it as the
Authorization header. Logging in again replaces the stored session.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)

		email, err := promptText(loginOpts.email, "Email")
		if err != nil {
			return err
		}
		password, err := promptSecret(loginOpts.password, "Password")
		if err != nil {
			return err
		}
		if err := printValidation(validate.Login(email, password)); err != nil {
			return err
		}

		res := withSpinner("Logging in", func() api.Result[backend.Response[backend.LoginData]] {
			return a.api.Login(cmd.Context(), backend.LoginRequest{
				Email:    strings.TrimSpace(email),
				Password: password,
			})
		})
		if !res.IsOK() {
			return a.presentFailure(res.Err, "logging in")
		}

		tok := res.Data.Data.SessionToken()
		if tok == "" {
			return apperrors.New(apperrors.RequestFailed, "login response did not include an access token")
		}
		if err := a.session.StoreSession(tok); err != nil {
			return apperrors.Wrap(apperrors.SessionStore, "save session", err)
		}
		a.log.Debug("session stored", a.log.Args("key", a.session.Key()))

		pterm.Println(loginGreeting(a.session.CurrentIdentity(), email))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginOpts.email, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginOpts.password, "password", "", "Account password (prompted when omitted)")
}

// loginGreeting picks a friendly greeting for the logged-in identity.
func loginGreeting(c token.Claims, fallback string) string {
	who := strings.TrimSpace(fallback)
	if n := c.Name(); n != "" {
		who = n
	} else if e := c.Email(); e != "" {
		who = e
	}
	if who == "" {
		return "✅ Login successful!"
	}
	greetings := []string{
		"🎉 Welcome back, %s!",
		"✨ Great to see you, %s!",
		"🚀 You're all set, %s!",
		"👋 Hello %s! Ready for some events?",
		"🔓 Access granted! Welcome %s!",
	}
	return fmt.Sprintf(greetings[rand.Intn(len(greetings))], who)
}
