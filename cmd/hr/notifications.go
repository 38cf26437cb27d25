package hr

import (
	"errors"
	"fmt"

	"github.com/BerryBytes/hrctl/internal/app"
	"github.com/BerryBytes/hrctl/models"

	"github.com/spf13/cobra"
)

func NewNotificationsCmd(a *app.App) *cobra.Command {
	notificationsCmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notif"},
		Short:   "Read notifications and active alerts",
	}

	notificationsCmd.AddCommand(listNotificationsCmd(a))
	notificationsCmd.AddCommand(markReadCmd(a))
	notificationsCmd.AddCommand(alertsCmd(a))

	return notificationsCmd
}

func printNotifications(cmd *cobra.Command, notifications []models.Notification) error {
	tw := newTable(cmd.OutOrStdout(), "ID", "TYPE", "FROM", "SUBJECT", "READ", "CREATED")
	for _, n := range notifications {
		row(tw, n.ID, n.NotificationTypeName, n.SenderName, n.Subject, n.IsRead, n.CreatedAt)
	}
	return tw.Flush()
}

func listNotificationsCmd(a *app.App) *cobra.Command {
	var (
		lf     listFlags
		unread bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := lf.json()
			if err != nil {
				return err
			}

			var notifications []models.Notification
			if unread {
				notifications, err = a.HR.UnreadNotifications(cmd.Context())
			} else {
				opts, oerr := lf.options(nil)
				if oerr != nil {
					return oerr
				}
				notifications, err = a.HR.ListNotifications(cmd.Context(), opts)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), notifications)
			}
			return printNotifications(cmd, notifications)
		},
	}

	lf.register(cmd)
	cmd.Flags().BoolVarP(&unread, "unread", "u", false, "Only unread notifications")

	return cmd
}

func markReadCmd(a *app.App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "read [ID]",
		Short: "Mark a notification, or all of them, as read",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return errors.New("give either a notification ID or --all")
			}

			if all {
				n, err := a.HR.MarkAllNotificationsRead(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Marked %d notifications as read\n", n)
				return nil
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			notification, err := a.HR.MarkNotificationRead(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Notification %d marked as read\n", notification.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Mark every unread notification")

	return cmd
}

func alertsCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show alerts active for you",
		RunE: func(cmd *cobra.Command, args []string) error {
			alerts, err := a.HR.ActiveAlerts(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout(), "ID", "TYPE", "TITLE", "MESSAGE", "UNTIL")
			for _, al := range alerts {
				row(tw, al.ID, al.AlertType, al.Title, al.Message, al.EndDate)
			}
			return tw.Flush()
		},
	}
}
