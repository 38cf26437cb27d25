package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BerryBytes/hrctl/internal/app"
	"github.com/BerryBytes/hrctl/models"
	generalutils "github.com/BerryBytes/hrctl/utils/general"
	promptutils "github.com/BerryBytes/hrctl/utils/prompt"

	"github.com/spf13/cobra"
)

var errPasswordMismatch = errors.New("passwords do not match")

// ignoreInterrupt turns a Ctrl-C at a prompt into a clean exit.
func ignoreInterrupt(err error) error {
	if errors.Is(err, promptutils.ErrInterrupted) {
		return nil
	}
	return err
}

// newPassword asks for a password twice.
func newPassword(a *app.App, label string) (string, error) {
	password, err := a.Prompter.PromptForSecret(label)
	if err != nil {
		return "", err
	}
	confirm, err := a.Prompter.PromptForSecret("Confirm " + strings.ToLower(label))
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", errPasswordMismatch
	}
	return password, nil
}

func ProfileCmd(a *app.App) *cobra.Command {
	var in models.ProfileUpdate

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update your name, department or phone number",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.Auth.UpdateProfile(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile updated for %s (%s)\n", user.FullName(), user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&in.Department, "department", "", "Department")
	cmd.Flags().StringVar(&in.PhoneNumber, "phone", "", "Phone number")

	return cmd
}

func PasswordCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change your password",
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.Prompter.PromptForSecret("Current password")
			if err != nil {
				return ignoreInterrupt(err)
			}
			next, err := newPassword(a, "New password")
			if err != nil {
				return ignoreInterrupt(err)
			}

			if err := a.Auth.ChangePassword(cmd.Context(), current, next); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password changed.")
			return nil
		},
	}
}

func RegisterCmd(a *app.App) *cobra.Command {
	var (
		in   models.RegisterRequest
		role string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Email = strings.TrimSpace(in.Email)
			if !generalutils.IsValidEmail(in.Email) {
				return fmt.Errorf("invalid email address %q", in.Email)
			}
			switch models.Role(role) {
			case models.RoleAdmin, models.RoleHR, models.RoleEmployee:
				in.Role = models.Role(role)
			default:
				return fmt.Errorf("invalid role %q (want admin, hr or employee)", role)
			}

			password, err := newPassword(a, "Password")
			if err != nil {
				return ignoreInterrupt(err)
			}
			in.Password, in.Password2 = password, password

			user, err := a.Auth.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (%s)\n", user.Email, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Email, "email", "e", "", "Account email")
	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&role, "role", string(models.RoleEmployee), "Role (admin, hr, employee)")
	cmd.Flags().StringVar(&in.Department, "department", "", "Department")
	cmd.Flags().StringVar(&in.PhoneNumber, "phone", "", "Phone number")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
