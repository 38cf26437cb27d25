package models

type LeaveStatus string

const (
	LeavePending   LeaveStatus = "pending"
	LeaveApproved  LeaveStatus = "approved"
	LeaveRejected  LeaveStatus = "rejected"
	LeaveCancelled LeaveStatus = "cancelled"
)

type LeaveType struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	DaysAllowed      int    `json:"days_allowed"`
	IsPaid           bool   `json:"is_paid"`
	RequiresApproval bool   `json:"requires_approval"`
}

type LeaveBalance struct {
	ID            int64   `json:"id"`
	Employee      int64   `json:"employee"`
	LeaveType     int64   `json:"leave_type"`
	LeaveTypeName string  `json:"leave_type_name"`
	Year          int     `json:"year"`
	TotalDays     Decimal `json:"total_days"`
	UsedDays      Decimal `json:"used_days"`
	RemainingDays Decimal `json:"remaining_days"`
}

type LeaveRequest struct {
	ID              int64        `json:"id"`
	Employee        int64        `json:"employee"`
	EmployeeDetails *EmployeeRef `json:"employee_details,omitempty"`
	LeaveType       int64        `json:"leave_type"`
	LeaveTypeName   string       `json:"leave_type_name,omitempty"`
	StartDate       string       `json:"start_date"`
	EndDate         string       `json:"end_date"`
	TotalDays       Decimal      `json:"total_days,omitempty"`
	Reason          string       `json:"reason"`
	Status          LeaveStatus  `json:"status"`
	ApprovedBy      *int64       `json:"approved_by,omitempty"`
	RejectionReason string       `json:"rejection_reason,omitempty"`
	CreatedAt       string       `json:"created_at,omitempty"`
}

type CreateLeaveRequest struct {
	LeaveType int64  `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// LeaveDecision is the body of POST /leave/requests/{id}/approve/.
type LeaveDecision struct {
	Status          LeaveStatus `json:"status"`
	RejectionReason string      `json:"rejection_reason,omitempty"`
}
