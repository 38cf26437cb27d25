package hr

import (
	"context"
	"net/url"

	"github.com/BerryBytes/hrctl/models"
)

type EmployeeAPI interface {
	ListEmployees(ctx context.Context, opts ListOptions) ([]models.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*models.Employee, error)
	CreateEmployee(ctx context.Context, in models.EmployeeInput) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, in models.EmployeeInput) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
	ListDepartments(ctx context.Context, opts ListOptions) ([]models.Department, error)
}

type LeaveAPI interface {
	ListLeaveTypes(ctx context.Context) ([]models.LeaveType, error)
	ListLeaveRequests(ctx context.Context, opts ListOptions) ([]models.LeaveRequest, error)
	MyLeaveRequests(ctx context.Context) ([]models.LeaveRequest, error)
	CreateLeaveRequest(ctx context.Context, in models.CreateLeaveRequest) (*models.LeaveRequest, error)
	DecideLeaveRequest(ctx context.Context, id int64, decision models.LeaveDecision) (*models.LeaveRequest, error)
	MyLeaveBalances(ctx context.Context) ([]models.LeaveBalance, error)
}

type AttendanceAPI interface {
	ListAttendance(ctx context.Context, opts ListOptions) ([]models.Attendance, error)
	MyAttendance(ctx context.Context, opts ListOptions) ([]models.Attendance, error)
	CheckIn(ctx context.Context) (*models.Attendance, error)
	CheckOut(ctx context.Context) (*models.Attendance, error)
	AttendanceReport(ctx context.Context, query url.Values) ([]models.AttendanceReport, error)
}

type PayrollAPI interface {
	ListPayrollPeriods(ctx context.Context, opts ListOptions) ([]models.PayrollPeriod, error)
	ProcessPayrollPeriod(ctx context.Context, id int64) (*models.ProcessResult, error)
	ListPayrollRecords(ctx context.Context, opts ListOptions) ([]models.PayrollRecord, error)
	GeneratePayslip(ctx context.Context, id int64) (*models.Payslip, error)
}

type PerformanceAPI interface {
	ListPerformanceCriteria(ctx context.Context) ([]models.PerformanceCriterion, error)
	ListReviews(ctx context.Context, opts ListOptions) ([]models.PerformanceReview, error)
	GetReview(ctx context.Context, id int64) (*models.PerformanceReview, error)
	MyReviews(ctx context.Context) ([]models.PerformanceReview, error)
	SubmitReview(ctx context.Context, id int64) (*models.StatusMessage, error)
	AverageScores(ctx context.Context, employeeID int64) ([]models.AverageScore, error)
	ListGoals(ctx context.Context, opts ListOptions) ([]models.Goal, error)
	MyGoals(ctx context.Context) ([]models.Goal, error)
	UpdateGoal(ctx context.Context, id int64, in models.GoalUpdate) (*models.Goal, error)
}

type NotificationAPI interface {
	ListNotifications(ctx context.Context, opts ListOptions) ([]models.Notification, error)
	UnreadNotifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) (*models.Notification, error)
	MarkAllNotificationsRead(ctx context.Context) (int, error)
	ActiveAlerts(ctx context.Context) ([]models.Alert, error)
}

// API is everything the resource commands need from the backend.
type API interface {
	EmployeeAPI
	LeaveAPI
	AttendanceAPI
	PayrollAPI
	PerformanceAPI
	NotificationAPI
}
