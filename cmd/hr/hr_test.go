package hr

import (
	"bytes"
	"errors"
	"net/url"
	"testing"

	"github.com/BerryBytes/hrctl/internal/apiclient"
	"github.com/BerryBytes/hrctl/internal/app"
	hrsvc "github.com/BerryBytes/hrctl/internal/hr"
	"github.com/BerryBytes/hrctl/models"
	mock_hrctl "github.com/BerryBytes/hrctl/tests/mock"

	"github.com/golang/mock/gomock"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cmdCase struct {
	name           string
	args           []string
	mockSetup      func(api *mock_hrctl.MockAPI, prompter *mock_hrctl.MockPrompter)
	expectedOutput []string
	expectedError  string
}

func runCases(t *testing.T, build func(a *app.App) *cobra.Command, tests []cmdCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAPI := mock_hrctl.NewMockAPI(ctrl)
			mockPrompter := mock_hrctl.NewMockPrompter(ctrl)
			tt.mockSetup(mockAPI, mockPrompter)

			a := app.New("test")
			a.HR = mockAPI
			a.Prompter = mockPrompter

			cmd := build(a)
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				require.NoError(t, err)
			}
			for _, s := range tt.expectedOutput {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}

func TestEmployeesCmd(t *testing.T) {
	ada := models.Employee{
		ID: 1, EmployeeID: "EMP001", FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", DepartmentName: "Engineering", Position: "Engineer",
		EmploymentStatus: models.EmploymentActive,
	}

	runCases(t, NewEmployeesCmd, []cmdCase{
		{
			name: "list as table with filters",
			args: []string{"list", "--search", "ada", "--status", "active", "--all"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().ListEmployees(gomock.Any(), hrsvc.ListOptions{
					Query: url.Values{"search": {"ada"}, "employment_status": {"active"}},
					All:   true,
				}).Return([]models.Employee{ada}, nil)
			},
			expectedOutput: []string{"EMPLOYEE ID", "EMP001", "Ada Lovelace", "Engineering", "active"},
		},
		{
			name: "list as json",
			args: []string{"list", "-o", "json"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().ListEmployees(gomock.Any(), hrsvc.ListOptions{}).Return([]models.Employee{ada}, nil)
			},
			expectedOutput: []string{`"employee_id": "EMP001"`},
		},
		{
			name:          "list with bad output format",
			args:          []string{"list", "-o", "xml"},
			mockSetup:     func(*mock_hrctl.MockAPI, *mock_hrctl.MockPrompter) {},
			expectedError: `unknown output format "xml"`,
		},
		{
			name:          "list with bad filter",
			args:          []string{"list", "-f", "department"},
			mockSetup:     func(*mock_hrctl.MockAPI, *mock_hrctl.MockPrompter) {},
			expectedError: `invalid filter "department"`,
		},
		{
			name: "get",
			args: []string{"get", "1"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().GetEmployee(gomock.Any(), int64(1)).Return(&ada, nil)
			},
			expectedOutput: []string{`"first_name": "Ada"`},
		},
		{
			name:          "get with bad id",
			args:          []string{"get", "abc"},
			mockSetup:     func(*mock_hrctl.MockAPI, *mock_hrctl.MockPrompter) {},
			expectedError: `invalid id "abc"`,
		},
		{
			name: "get not found",
			args: []string{"get", "99"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().GetEmployee(gomock.Any(), int64(99)).Return(nil, &apiclient.HTTPError{Status: 404, Message: "Not found."})
			},
			expectedError: "http 404: Not found.",
		},
		{
			name: "create",
			args: []string{"create", "-d", `{"first_name":"Grace","last_name":"Hopper"}`},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().CreateEmployee(gomock.Any(), models.EmployeeInput{FirstName: "Grace", LastName: "Hopper"}).
					Return(&models.Employee{ID: 2, FirstName: "Grace", LastName: "Hopper"}, nil)
			},
			expectedOutput: []string{"Created employee 2 (Grace Hopper)"},
		},
		{
			name:          "create without data",
			args:          []string{"create"},
			mockSetup:     func(*mock_hrctl.MockAPI, *mock_hrctl.MockPrompter) {},
			expectedError: "--data is required",
		},
		{
			name: "update",
			args: []string{"update", "1", "-d", `{"position":"Lead"}`},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().UpdateEmployee(gomock.Any(), int64(1), models.EmployeeInput{Position: "Lead"}).Return(&ada, nil)
			},
			expectedOutput: []string{"Updated employee 1 (Ada Lovelace)"},
		},
		{
			name: "delete confirmed",
			args: []string{"delete", "1"},
			mockSetup: func(api *mock_hrctl.MockAPI, prompter *mock_hrctl.MockPrompter) {
				prompter.EXPECT().PromptForConfirmation("Delete employee 1?").Return(true)
				api.EXPECT().DeleteEmployee(gomock.Any(), int64(1)).Return(nil)
			},
			expectedOutput: []string{"Deleted employee 1"},
		},
		{
			name: "delete declined",
			args: []string{"delete", "1"},
			mockSetup: func(_ *mock_hrctl.MockAPI, prompter *mock_hrctl.MockPrompter) {
				prompter.EXPECT().PromptForConfirmation("Delete employee 1?").Return(false)
			},
			expectedOutput: []string{"Aborted."},
		},
		{
			name: "delete with yes after session expired",
			args: []string{"delete", "1", "--yes"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().DeleteEmployee(gomock.Any(), int64(1)).
					Return(&apiclient.AuthExpiredError{Cause: errors.New("refresh rejected")})
			},
			expectedError: "authentication expired",
		},
	})
}

func TestDepartmentsCmd(t *testing.T) {
	runCases(t, NewDepartmentsCmd, []cmdCase{
		{
			name: "list",
			args: []string{"list"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().ListDepartments(gomock.Any(), hrsvc.ListOptions{}).Return([]models.Department{
					{ID: 1, Code: "ENG", Name: "Engineering", EmployeeCount: 12},
					{ID: 2, Code: "OPS", Name: "Operations"},
				}, nil)
			},
			expectedOutput: []string{"CODE", "ENG", "Engineering", "12", "OPS"},
		},
	})
}

func TestLeaveCmd(t *testing.T) {
	pending := models.LeaveRequest{
		ID: 7, Employee: 1, EmployeeDetails: &models.EmployeeRef{FullName: "Ada Lovelace"},
		LeaveTypeName: "Annual", StartDate: "2026-11-02", EndDate: "2026-11-04", TotalDays: "3", Status: models.LeavePending,
	}

	runCases(t, NewLeaveCmd, []cmdCase{
		{
			name: "types",
			args: []string{"types"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().ListLeaveTypes(gomock.Any()).Return([]models.LeaveType{{ID: 1, Name: "Annual", DaysAllowed: 20, IsPaid: true}}, nil)
			},
			expectedOutput: []string{"Annual", "20", "true"},
		},
		{
			name: "list pending",
			args: []string{"list", "--status", "pending"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().ListLeaveRequests(gomock.Any(), hrsvc.ListOptions{Query: url.Values{"status": {"pending"}}}).
					Return([]models.LeaveRequest{pending}, nil)
			},
			expectedOutput: []string{"Ada Lovelace", "Annual", "2026-11-02", "pending"},
		},
		{
			name: "mine",
			args: []string{"mine"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().MyLeaveRequests(gomock.Any()).Return([]models.LeaveRequest{{ID: 8, Employee: 3, Status: models.LeaveApproved}}, nil)
			},
			expectedOutput: []string{"8", "3", "approved"},
		},
		{
			name: "request",
			args: []string{"request", "-t", "1", "--from", "2026-11-02", "--to", "2026-11-04", "-r", "Holiday"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().CreateLeaveRequest(gomock.Any(), models.CreateLeaveRequest{
					LeaveType: 1, StartDate: "2026-11-02", EndDate: "2026-11-04", Reason: "Holiday",
				}).Return(&pending, nil)
			},
			expectedOutput: []string{"Leave request 7 submitted (pending)"},
		},
		{
			name: "request single day",
			args: []string{"request", "-t", "2", "--from", "2026-11-02"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().CreateLeaveRequest(gomock.Any(), models.CreateLeaveRequest{
					LeaveType: 2, StartDate: "2026-11-02", EndDate: "2026-11-02",
				}).Return(&pending, nil)
			},
			expectedOutput: []string{"submitted"},
		},
		{
			name:          "request without type",
			args:          []string{"request", "--from", "2026-11-02"},
			mockSetup:     func(*mock_hrctl.MockAPI, *mock_hrctl.MockPrompter) {},
			expectedError: "--type is required",
		},
		{
			name:          "request with reversed dates",
			args:          []string{"request", "-t", "1", "--from", "2026-11-04", "--to", "2026-11-02"},
			mockSetup:     func(*mock_hrctl.MockAPI, *mock_hrctl.MockPrompter) {},
			expectedError: "--to must not be before --from",
		},
		{
			name:          "request with bad date",
			args:          []string{"request", "-t", "1", "--from", "02/11/2026"},
			mockSetup:     func(*mock_hrctl.MockAPI, *mock_hrctl.MockPrompter) {},
			expectedError: `invalid --from date "02/11/2026"`,
		},
		{
			name: "approve",
			args: []string{"approve", "7"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().DecideLeaveRequest(gomock.Any(), int64(7), models.LeaveDecision{Status: models.LeaveApproved}).
					Return(&models.LeaveRequest{ID: 7, Status: models.LeaveApproved}, nil)
			},
			expectedOutput: []string{"Leave request 7 approved"},
		},
		{
			name: "reject with reason",
			args: []string{"reject", "7", "--reason", "Team offsite"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().DecideLeaveRequest(gomock.Any(), int64(7), models.LeaveDecision{
					Status: models.LeaveRejected, RejectionReason: "Team offsite",
				}).Return(&models.LeaveRequest{ID: 7, Status: models.LeaveRejected}, nil)
			},
			expectedOutput: []string{"Leave request 7 rejected"},
		},
		{
			name: "balances",
			args: []string{"balances"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().MyLeaveBalances(gomock.Any()).Return([]models.LeaveBalance{
					{LeaveTypeName: "Annual", Year: 2026, TotalDays: "20", UsedDays: "5.5", RemainingDays: "14.5"},
				}, nil)
			},
			expectedOutput: []string{"REMAINING", "Annual", "2026", "14.5"},
		},
	})
}

func TestAttendanceCmd(t *testing.T) {
	record := models.Attendance{ID: 3, Employee: 1, Date: "2026-10-19", CheckIn: "09:01:00", CheckOut: "17:30:00", WorkHours: "8.5", AttendanceType: models.AttendancePresent}

	runCases(t, NewAttendanceCmd, []cmdCase{
		{
			name: "list with range",
			args: []string{"list", "--from", "2026-10-01", "--to", "2026-10-31", "--employee", "1"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().ListAttendance(gomock.Any(), hrsvc.ListOptions{Query: url.Values{
					"start_date": {"2026-10-01"}, "end_date": {"2026-10-31"}, "employee": {"1"},
				}}).Return([]models.Attendance{record}, nil)
			},
			expectedOutput: []string{"2026-10-19", "09:01:00", "8.5", "present"},
		},
		{
			name: "mine",
			args: []string{"mine"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().MyAttendance(gomock.Any(), hrsvc.ListOptions{}).Return([]models.Attendance{record}, nil)
			},
			expectedOutput: []string{"2026-10-19"},
		},
		{
			name: "check in",
			args: []string{"check-in"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().CheckIn(gomock.Any()).Return(&models.Attendance{Date: "2026-10-19", CheckIn: "09:01:00"}, nil)
			},
			expectedOutput: []string{"Checked in at 09:01:00 on 2026-10-19"},
		},
		{
			name: "check out",
			args: []string{"check-out"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().CheckOut(gomock.Any()).Return(&record, nil)
			},
			expectedOutput: []string{"Checked out at 17:30:00 on 2026-10-19"},
		},
		{
			name: "check in twice",
			args: []string{"check-in"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().CheckIn(gomock.Any()).Return(nil, &apiclient.HTTPError{Status: 400, Message: "Already checked in today"})
			},
			expectedError: "Already checked in today",
		},
		{
			name: "report",
			args: []string{"report", "--from", "2026-10-01"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().AttendanceReport(gomock.Any(), url.Values{"start_date": {"2026-10-01"}}).
					Return([]models.AttendanceReport{{EmployeeName: "Ada Lovelace", TotalDays: 20, PresentDays: 19, AttendancePercentage: "95.00"}}, nil)
			},
			expectedOutput: []string{"Ada Lovelace", "19", "95.00%"},
		},
	})
}

func TestPayrollCmd(t *testing.T) {
	runCases(t, NewPayrollCmd, []cmdCase{
		{
			name: "periods",
			args: []string{"periods"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().ListPayrollPeriods(gomock.Any(), hrsvc.ListOptions{}).Return([]models.PayrollPeriod{
					{ID: 4, PeriodType: "monthly", StartDate: "2026-10-01", EndDate: "2026-10-31", Status: "draft"},
				}, nil)
			},
			expectedOutput: []string{"monthly", "2026-10-31", "draft"},
		},
		{
			name: "process confirmed",
			args: []string{"process", "4"},
			mockSetup: func(api *mock_hrctl.MockAPI, prompter *mock_hrctl.MockPrompter) {
				prompter.EXPECT().PromptForConfirmation("Process payroll period 4?").Return(true)
				api.EXPECT().ProcessPayrollPeriod(gomock.Any(), int64(4)).Return(&models.ProcessResult{Status: "Payroll processed for 12 employees"}, nil)
			},
			expectedOutput: []string{"Payroll period 4: Payroll processed for 12 employees"},
		},
		{
			name: "process declined",
			args: []string{"process", "4"},
			mockSetup: func(_ *mock_hrctl.MockAPI, prompter *mock_hrctl.MockPrompter) {
				prompter.EXPECT().PromptForConfirmation("Process payroll period 4?").Return(false)
			},
			expectedOutput: []string{"Aborted."},
		},
		{
			name: "records for period",
			args: []string{"records", "--period", "4"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().ListPayrollRecords(gomock.Any(), hrsvc.ListOptions{Query: url.Values{"period": {"4"}}}).
					Return([]models.PayrollRecord{{ID: 9, Period: 4, Employee: 1, GrossSalary: "5000.00", NetSalary: "4100.00", Status: "pending"}}, nil)
			},
			expectedOutput: []string{"5000.00", "4100.00", "pending"},
		},
		{
			name: "payslip",
			args: []string{"payslip", "9"},
			mockSetup: func(api *mock_hrctl.MockAPI, _ *mock_hrctl.MockPrompter) {
				api.EXPECT().GeneratePayslip(gomock.Any(), int64(9)).Return(&models.Payslip{
					Employee: "Ada Lovelace", Period: "2026-10-01 to 2026-10-31",
					BasicSalary: "5000.00", TotalAllowances: "300.00", TotalDeductions: "1200.00", NetSalary: "4100.00",
				}, nil)
			},
			expectedOutput: []string{"Employee         : Ada Lovelace", "Net salary       : 4100.00"},
		},
	})
}
