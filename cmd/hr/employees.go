package hr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/BerryBytes/hrctl/internal/app"
	"github.com/BerryBytes/hrctl/models"

	"github.com/spf13/cobra"
)

func NewEmployeesCmd(a *app.App) *cobra.Command {
	employeesCmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee", "emp"},
		Short:   "Manage employees",
	}

	employeesCmd.AddCommand(listEmployeesCmd(a))
	employeesCmd.AddCommand(getEmployeeCmd(a))
	employeesCmd.AddCommand(createEmployeeCmd(a))
	employeesCmd.AddCommand(updateEmployeeCmd(a))
	employeesCmd.AddCommand(deleteEmployeeCmd(a))

	return employeesCmd
}

func listEmployeesCmd(a *app.App) *cobra.Command {
	var (
		lf         listFlags
		department string
		status     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := lf.json()
			if err != nil {
				return err
			}
			opts, err := lf.options(url.Values{
				"department":        {department},
				"employment_status": {status},
			})
			if err != nil {
				return err
			}

			employees, err := a.HR.ListEmployees(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), employees)
			}

			tw := newTable(cmd.OutOrStdout(), "ID", "EMPLOYEE ID", "NAME", "EMAIL", "DEPARTMENT", "POSITION", "STATUS")
			for _, e := range employees {
				row(tw, e.ID, e.EmployeeID, e.DisplayName(), e.Email, e.DepartmentName, e.Position, e.EmploymentStatus)
			}
			return tw.Flush()
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVar(&department, "department", "", "Filter by department id")
	cmd.Flags().StringVar(&status, "status", "", "Filter by employment status")

	return cmd
}

func getEmployeeCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			employee, err := a.HR.GetEmployee(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), employee)
		},
	}
}

func employeeInput(data string) (models.EmployeeInput, error) {
	var in models.EmployeeInput
	if data == "" {
		return in, errors.New("--data is required")
	}
	if err := json.Unmarshal([]byte(data), &in); err != nil {
		return in, fmt.Errorf("invalid --data: %w", err)
	}
	return in, nil
}

func createEmployeeCmd(a *app.App) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an employee from a JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := employeeInput(data)
			if err != nil {
				return err
			}
			created, err := a.HR.CreateEmployee(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created employee %d (%s)\n", created.ID, created.DisplayName())
			return nil
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", `Employee fields as JSON, e.g. {"first_name":"Ada"}`)

	return cmd
}

func updateEmployeeCmd(a *app.App) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update fields of an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			in, err := employeeInput(data)
			if err != nil {
				return err
			}
			updated, err := a.HR.UpdateEmployee(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated employee %d (%s)\n", updated.ID, updated.DisplayName())
			return nil
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "Fields to change as JSON")

	return cmd
}

func deleteEmployeeCmd(a *app.App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes && !a.Prompter.PromptForConfirmation(fmt.Sprintf("Delete employee %d?", id)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			if err := a.HR.DeleteEmployee(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted employee %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func NewDepartmentsCmd(a *app.App) *cobra.Command {
	departmentsCmd := &cobra.Command{
		Use:     "departments",
		Aliases: []string{"department", "dept"},
		Short:   "Browse departments",
	}

	var lf listFlags
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := lf.json()
			if err != nil {
				return err
			}
			opts, err := lf.options(nil)
			if err != nil {
				return err
			}

			departments, err := a.HR.ListDepartments(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), departments)
			}

			tw := newTable(cmd.OutOrStdout(), "ID", "CODE", "NAME", "MANAGER", "EMPLOYEES")
			for _, d := range departments {
				row(tw, d.ID, d.Code, d.Name, d.ManagerName, d.EmployeeCount)
			}
			return tw.Flush()
		},
	}
	lf.register(listCmd)

	departmentsCmd.AddCommand(listCmd)
	return departmentsCmd
}
