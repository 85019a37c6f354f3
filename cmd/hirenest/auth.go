package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hirenest/admin-console/internal/apiclient"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as an administrator",
		Long: `Sign in with the admin email and password. Missing values are prompted for; the
password is read without echo when stdin is a terminal. The session is saved to the
session file until the token expires or the backend rejects it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if email == "" {
				if email, err = a.prompt("Email: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = a.promptPassword(cmd); err != nil {
					return err
				}
			}

			s, err := a.sessions.Login(cmd.Context(), a.api.Auth, email, password)
			if err != nil {
				a.sessions.ClearError()
				if apiclient.IsUnauthorized(err) {
					return errors.New("invalid email or password")
				}
				return err
			}
			a.printer.PrintNotice(fmt.Sprintf("Signed in as %s (session valid until %s)",
				s.User.Email, s.ExpiresAt.Local().Format(time.DateTime)))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and delete the saved session",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.sessions.Logout(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			a.printer.PrintNotice("Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in administrator",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			user, err := a.requireAuth()
			if err != nil {
				return err
			}
			st := a.sessions.State()
			name := user.FirstName
			if name == "" {
				name = user.Email
			}
			a.printer.PrintNotice(fmt.Sprintf("%s <%s>, session valid until %s",
				name, user.Email, st.ExpiresAt.Local().Format(time.DateTime)))
			return nil
		},
	}
}
