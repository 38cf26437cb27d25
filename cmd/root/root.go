package root

import (
	"fmt"
	"time"

	cmdAPI "github.com/BerryBytes/hrctl/cmd/api"
	cmdAuth "github.com/BerryBytes/hrctl/cmd/auth"
	cmdConfigure "github.com/BerryBytes/hrctl/cmd/configure"
	cmdHR "github.com/BerryBytes/hrctl/cmd/hr"
	"github.com/BerryBytes/hrctl/internal/app"

	"github.com/spf13/cobra"
)

func NewRootCmd(a *app.App) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "hrctl",
		Short: "HR API CLI Tool",
		Long:  `A CLI tool for working with the HR management API: employees, leave, attendance and payroll.`,
		// main prints the returned error once.
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if err := a.LoadConfig(configPath, cmd.Root().PersistentFlags()); err != nil {
				return err
			}

			ctx := a.General.HandleSignals()
			cmd.SetContext(ctx)

			if skipSession(cmd) {
				return nil
			}
			return a.Connect(ctx)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("No subcommand provided. Showing help...")
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default ~/.config/hrctl/config.yaml)")
	flags.String("base-url", "", "HR API base URL")
	flags.Duration("timeout", 30*time.Second, "Request timeout")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.Bool("log-pretty", false, "Human readable logs")
	flags.String("store", "file", "Credential store (memory, file, redis, ssm)")

	rootCmd.AddCommand(cmdConfigure.NewConfigureCmd(a))
	rootCmd.AddCommand(cmdAuth.NewAuthCommands(a))
	rootCmd.AddCommand(cmdAPI.NewAPICmd(a))
	rootCmd.AddCommand(cmdHR.NewEmployeesCmd(a))
	rootCmd.AddCommand(cmdHR.NewDepartmentsCmd(a))
	rootCmd.AddCommand(cmdHR.NewLeaveCmd(a))
	rootCmd.AddCommand(cmdHR.NewAttendanceCmd(a))
	rootCmd.AddCommand(cmdHR.NewPayrollCmd(a))
	rootCmd.AddCommand(cmdHR.NewPerformanceCmd(a))
	rootCmd.AddCommand(cmdHR.NewNotificationsCmd(a))

	rootCmd.AddCommand(&cobra.Command{
		Use:         "version",
		Short:       "Print the hrctl version",
		Annotations: map[string]string{app.SkipSession: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.Name, a.Version)
			return nil
		},
	})

	return rootCmd
}

func skipSession(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[app.SkipSession] == "true" {
			return true
		}
	}
	return !cmd.HasParent()
}
