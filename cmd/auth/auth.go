package auth

import (
	"github.com/BerryBytes/hrctl/internal/app"

	"github.com/spf13/cobra"
)

func NewAuthCommands(a *app.App) *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the HR API session",
		Long:  "Log in and out of the HR API and inspect or refresh the stored session.",
	}

	authCmd.AddCommand(LoginCmd(a))
	authCmd.AddCommand(LogoutCmd(a))
	authCmd.AddCommand(StatusCmd(a))
	authCmd.AddCommand(RefreshCmd(a))
	authCmd.AddCommand(WhoamiCmd(a))
	authCmd.AddCommand(ProfileCmd(a))
	authCmd.AddCommand(PasswordCmd(a))
	authCmd.AddCommand(RegisterCmd(a))

	return authCmd
}
