package hr

import (
	"fmt"
	"net/url"

	"github.com/BerryBytes/hrctl/internal/app"

	"github.com/spf13/cobra"
)

func NewPayrollCmd(a *app.App) *cobra.Command {
	payrollCmd := &cobra.Command{
		Use:   "payroll",
		Short: "Payroll periods, records and payslips",
	}

	payrollCmd.AddCommand(payrollPeriodsCmd(a))
	payrollCmd.AddCommand(processPayrollCmd(a))
	payrollCmd.AddCommand(payrollRecordsCmd(a))
	payrollCmd.AddCommand(payslipCmd(a))

	return payrollCmd
}

func payrollPeriodsCmd(a *app.App) *cobra.Command {
	var lf listFlags

	cmd := &cobra.Command{
		Use:   "periods",
		Short: "List payroll periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := lf.json()
			if err != nil {
				return err
			}
			opts, err := lf.options(nil)
			if err != nil {
				return err
			}

			periods, err := a.HR.ListPayrollPeriods(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), periods)
			}

			tw := newTable(cmd.OutOrStdout(), "ID", "TYPE", "FROM", "TO", "PAYMENT", "STATUS", "TOTAL")
			for _, p := range periods {
				row(tw, p.ID, p.PeriodType, p.StartDate, p.EndDate, p.PaymentDate, p.Status, p.TotalPayroll)
			}
			return tw.Flush()
		},
	}

	lf.register(cmd)
	return cmd
}

func processPayrollCmd(a *app.App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "process ID",
		Short: "Generate payroll records for a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes && !a.Prompter.PromptForConfirmation(fmt.Sprintf("Process payroll period %d?", id)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			result, err := a.HR.ProcessPayrollPeriod(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Payroll period %d: %s\n", id, result.Status)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func payrollRecordsCmd(a *app.App) *cobra.Command {
	var (
		lf       listFlags
		period   string
		employee string
	)

	cmd := &cobra.Command{
		Use:   "records",
		Short: "List payroll records",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := lf.json()
			if err != nil {
				return err
			}
			opts, err := lf.options(url.Values{"period": {period}, "employee": {employee}})
			if err != nil {
				return err
			}

			records, err := a.HR.ListPayrollRecords(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), records)
			}

			tw := newTable(cmd.OutOrStdout(), "ID", "EMPLOYEE", "PERIOD", "GROSS", "TAX", "NET", "STATUS")
			for _, r := range records {
				row(tw, r.ID, employeeName(r.EmployeeDetails, r.Employee), r.Period, r.GrossSalary, r.TaxAmount, r.NetSalary, r.Status)
			}
			return tw.Flush()
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVar(&period, "period", "", "Payroll period id")
	cmd.Flags().StringVar(&employee, "employee", "", "Employee id")

	return cmd
}

func payslipCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "payslip RECORD_ID",
		Short: "Show the payslip of a payroll record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			slip, err := a.HR.GeneratePayslip(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, `
Payslip
---------------------------------
Employee         : %s
Period           : %s
Basic salary     : %s
Allowances       : %s
Deductions       : %s
Net salary       : %s
---------------------------------
`, slip.Employee, slip.Period, slip.BasicSalary, slip.TotalAllowances, slip.TotalDeductions, slip.NetSalary)
			return nil
		},
	}
}
