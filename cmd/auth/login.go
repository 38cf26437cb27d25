package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BerryBytes/hrctl/internal/app"
	generalutils "github.com/BerryBytes/hrctl/utils/general"
	promptutils "github.com/BerryBytes/hrctl/utils/prompt"

	"github.com/spf13/cobra"
)

func LoginCmd(a *app.App) *cobra.Command {
	var email string

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := login(cmd, a, email)
			if errors.Is(err, promptutils.ErrInterrupted) {
				return nil
			}
			return err
		},
	}

	loginCmd.Flags().StringVarP(&email, "email", "e", "", "Account email (default from config)")

	return loginCmd
}

func login(cmd *cobra.Command, a *app.App, email string) error {
	if email == "" {
		var err error
		email, err = a.Prompter.PromptForInput("Email", a.Config.Auth.Email)
		if err != nil {
			return err
		}
	}
	email = strings.TrimSpace(email)
	if !generalutils.IsValidEmail(email) {
		return fmt.Errorf("invalid email address %q", email)
	}

	password, err := a.Prompter.PromptForSecret("Password")
	if err != nil {
		return err
	}

	user, err := a.Auth.Login(cmd.Context(), email, password)
	if err != nil {
		return err
	}

	if user != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.FullName(), user.Email)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", email)
	}
	return nil
}

func LogoutCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}
