package auth

import (
	"fmt"
	"time"

	"github.com/BerryBytes/hrctl/internal/app"
	generalutils "github.com/BerryBytes/hrctl/utils/general"

	"github.com/spf13/cobra"
)

func StatusCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a session is stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.Auth.Status(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !st.SignedIn {
				fmt.Fprintln(out, "Not signed in.")
				return nil
			}

			fmt.Fprintln(out, "Signed in.")
			fmt.Fprintf(out, "Refresh token: %s\n", yesNo(st.HasRefresh))
			if !st.AccessExpiry.IsZero() {
				state := "valid"
				if st.Expired {
					state = "expired"
				}
				fmt.Fprintf(out, "Access token %s, expires %s\n", state, st.AccessExpiry.Format(time.RFC3339))
			}
			return nil
		},
	}
}

func RefreshCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the refresh token for a new session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Auth.Refresh(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Session refreshed.")
			return nil
		},
	}
}

func WhoamiCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the profile of the signed in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.Auth.Profile(cmd.Context())
			if err != nil {
				return err
			}

			details := generalutils.SessionDetails{
				Email:      user.Email,
				Name:       user.FullName(),
				Role:       string(user.Role),
				BaseURL:    a.Config.API.BaseURL,
				Store:      a.Config.Store.Driver,
				Expiration: "unknown",
			}
			if st, err := a.Auth.Status(cmd.Context()); err == nil && !st.AccessExpiry.IsZero() {
				details.Expiration = st.AccessExpiry.Format(time.RFC3339)
			}

			a.General.PrintSessionDetails(cmd.OutOrStdout(), details)
			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
