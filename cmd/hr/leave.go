package hr

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/BerryBytes/hrctl/internal/app"
	"github.com/BerryBytes/hrctl/models"

	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func NewLeaveCmd(a *app.App) *cobra.Command {
	leaveCmd := &cobra.Command{
		Use:   "leave",
		Short: "Request, review and track leave",
	}

	leaveCmd.AddCommand(leaveTypesCmd(a))
	leaveCmd.AddCommand(listLeaveCmd(a))
	leaveCmd.AddCommand(myLeaveCmd(a))
	leaveCmd.AddCommand(requestLeaveCmd(a))
	leaveCmd.AddCommand(decideLeaveCmd(a, models.LeaveApproved))
	leaveCmd.AddCommand(decideLeaveCmd(a, models.LeaveRejected))
	leaveCmd.AddCommand(leaveBalancesCmd(a))

	return leaveCmd
}

func leaveTypesCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List leave types",
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := a.HR.ListLeaveTypes(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout(), "ID", "NAME", "DAYS", "PAID", "APPROVAL")
			for _, lt := range types {
				row(tw, lt.ID, lt.Name, lt.DaysAllowed, lt.IsPaid, lt.RequiresApproval)
			}
			return tw.Flush()
		},
	}
}

func printLeaveRequests(cmd *cobra.Command, requests []models.LeaveRequest) error {
	tw := newTable(cmd.OutOrStdout(), "ID", "EMPLOYEE", "TYPE", "FROM", "TO", "DAYS", "STATUS")
	for _, r := range requests {
		row(tw, r.ID, employeeName(r.EmployeeDetails, r.Employee), r.LeaveTypeName, r.StartDate, r.EndDate, r.TotalDays, r.Status)
	}
	return tw.Flush()
}

func listLeaveCmd(a *app.App) *cobra.Command {
	var (
		lf     listFlags
		status string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leave requests visible to you",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := lf.json()
			if err != nil {
				return err
			}
			opts, err := lf.options(url.Values{"status": {status}})
			if err != nil {
				return err
			}

			requests, err := a.HR.ListLeaveRequests(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), requests)
			}
			return printLeaveRequests(cmd, requests)
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending, approved, rejected, cancelled)")

	return cmd
}

func myLeaveCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List your own leave requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := a.HR.MyLeaveRequests(cmd.Context())
			if err != nil {
				return err
			}
			return printLeaveRequests(cmd, requests)
		},
	}
}

func requestLeaveCmd(a *app.App) *cobra.Command {
	var (
		leaveType int64
		from      string
		to        string
		reason    string
	)

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Submit a leave request",
		RunE: func(cmd *cobra.Command, args []string) error {
			if leaveType <= 0 {
				return errors.New("--type is required")
			}
			start, err := time.Parse(dateLayout, from)
			if err != nil {
				return fmt.Errorf("invalid --from date %q: want YYYY-MM-DD", from)
			}
			if to == "" {
				to = from
			}
			end, err := time.Parse(dateLayout, to)
			if err != nil {
				return fmt.Errorf("invalid --to date %q: want YYYY-MM-DD", to)
			}
			if end.Before(start) {
				return errors.New("--to must not be before --from")
			}

			created, err := a.HR.CreateLeaveRequest(cmd.Context(), models.CreateLeaveRequest{
				LeaveType: leaveType,
				StartDate: from,
				EndDate:   to,
				Reason:    reason,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Leave request %d submitted (%s)\n", created.ID, created.Status)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&leaveType, "type", "t", 0, "Leave type id, see hrctl leave types")
	cmd.Flags().StringVar(&from, "from", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "Last day, YYYY-MM-DD (default --from)")
	cmd.Flags().StringVarP(&reason, "reason", "r", "", "Reason")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func decideLeaveCmd(a *app.App, status models.LeaveStatus) *cobra.Command {
	var reason string

	use, short, done := "approve", "Approve a pending leave request", "approved"
	if status == models.LeaveRejected {
		use, short, done = "reject", "Reject a pending leave request", "rejected"
	}

	cmd := &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			updated, err := a.HR.DecideLeaveRequest(cmd.Context(), id, models.LeaveDecision{
				Status:          status,
				RejectionReason: reason,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Leave request %d %s\n", updated.ID, done)
			return nil
		},
	}

	if status == models.LeaveRejected {
		cmd.Flags().StringVarP(&reason, "reason", "r", "", "Rejection reason")
	}

	return cmd
}

func leaveBalancesCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show your remaining leave",
		RunE: func(cmd *cobra.Command, args []string) error {
			balances, err := a.HR.MyLeaveBalances(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout(), "TYPE", "YEAR", "TOTAL", "USED", "REMAINING")
			for _, b := range balances {
				row(tw, b.LeaveTypeName, b.Year, b.TotalDays, b.UsedDays, b.RemainingDays)
			}
			return tw.Flush()
		},
	}
}
