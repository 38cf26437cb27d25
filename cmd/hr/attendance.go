package hr

import (
	"fmt"
	"net/url"

	"github.com/BerryBytes/hrctl/internal/app"
	"github.com/BerryBytes/hrctl/models"

	"github.com/spf13/cobra"
)

func NewAttendanceCmd(a *app.App) *cobra.Command {
	attendanceCmd := &cobra.Command{
		Use:   "attendance",
		Short: "Check in, check out and review attendance",
	}

	attendanceCmd.AddCommand(listAttendanceCmd(a))
	attendanceCmd.AddCommand(myAttendanceCmd(a))
	attendanceCmd.AddCommand(checkCmd(a, "check-in"))
	attendanceCmd.AddCommand(checkCmd(a, "check-out"))
	attendanceCmd.AddCommand(attendanceReportCmd(a))

	return attendanceCmd
}

func printAttendance(cmd *cobra.Command, records []models.Attendance) error {
	tw := newTable(cmd.OutOrStdout(), "ID", "EMPLOYEE", "DATE", "IN", "OUT", "HOURS", "TYPE")
	for _, r := range records {
		row(tw, r.ID, employeeName(r.EmployeeDetails, r.Employee), r.Date, r.CheckIn, r.CheckOut, r.WorkHours, r.AttendanceType)
	}
	return tw.Flush()
}

func dateRange(from, to string) url.Values {
	return url.Values{"start_date": {from}, "end_date": {to}}
}

func listAttendanceCmd(a *app.App) *cobra.Command {
	var (
		lf       listFlags
		from, to string
		employee string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attendance records",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := lf.json()
			if err != nil {
				return err
			}
			extra := dateRange(from, to)
			extra.Set("employee", employee)
			opts, err := lf.options(extra)
			if err != nil {
				return err
			}

			records, err := a.HR.ListAttendance(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), records)
			}
			return printAttendance(cmd, records)
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVar(&from, "from", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "Last day, YYYY-MM-DD")
	cmd.Flags().StringVar(&employee, "employee", "", "Employee id")

	return cmd
}

func myAttendanceCmd(a *app.App) *cobra.Command {
	var (
		lf       listFlags
		from, to string
	)

	cmd := &cobra.Command{
		Use:   "mine",
		Short: "List your own attendance",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := lf.json()
			if err != nil {
				return err
			}
			opts, err := lf.options(dateRange(from, to))
			if err != nil {
				return err
			}

			records, err := a.HR.MyAttendance(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), records)
			}
			return printAttendance(cmd, records)
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVar(&from, "from", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "Last day, YYYY-MM-DD")

	return cmd
}

func checkCmd(a *app.App, use string) *cobra.Command {
	short, label := "Record your arrival", "Checked in"
	if use == "check-out" {
		short, label = "Record your departure", "Checked out"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				record *models.Attendance
				err    error
			)
			if use == "check-out" {
				record, err = a.HR.CheckOut(cmd.Context())
			} else {
				record, err = a.HR.CheckIn(cmd.Context())
			}
			if err != nil {
				return err
			}

			at := record.CheckIn
			if use == "check-out" {
				at = record.CheckOut
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s at %s on %s\n", label, at, record.Date)
			return nil
		},
	}
}

func attendanceReportCmd(a *app.App) *cobra.Command {
	var (
		from, to   string
		department string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Attendance summary per employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			for k, vs := range dateRange(from, to) {
				if vs[0] != "" {
					query.Set(k, vs[0])
				}
			}
			if department != "" {
				query.Set("department", department)
			}

			report, err := a.HR.AttendanceReport(cmd.Context(), query)
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout(), "EMPLOYEE", "DEPARTMENT", "DAYS", "PRESENT", "ABSENT", "LATE", "HOURS", "RATE")
			for _, r := range report {
				row(tw, r.EmployeeName, r.Department, r.TotalDays, r.PresentDays, r.AbsentDays, r.LateArrivals, r.TotalWorkHours, r.AttendancePercentage.String()+"%")
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "Last day, YYYY-MM-DD")
	cmd.Flags().StringVar(&department, "department", "", "Department id")

	return cmd
}
