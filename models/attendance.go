package models

type AttendanceType string

const (
	AttendancePresent      AttendanceType = "present"
	AttendanceAbsent       AttendanceType = "absent"
	AttendanceHalfDay      AttendanceType = "half_day"
	AttendanceWorkFromHome AttendanceType = "work_from_home"
)

type Attendance struct {
	ID              int64          `json:"id"`
	Employee        int64          `json:"employee"`
	EmployeeDetails *EmployeeRef   `json:"employee_details,omitempty"`
	Date            string         `json:"date"`
	CheckIn         string         `json:"check_in,omitempty"`
	CheckOut        string         `json:"check_out,omitempty"`
	AttendanceType  AttendanceType `json:"attendance_type"`
	WorkHours       Decimal        `json:"work_hours,omitempty"`
	OvertimeHours   Decimal        `json:"overtime_hours,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	IsApproved      bool           `json:"is_approved"`
}

type AttendanceReport struct {
	EmployeeID           int64   `json:"employee_id"`
	EmployeeName         string  `json:"employee_name"`
	Department           string  `json:"department"`
	TotalDays            int     `json:"total_days"`
	PresentDays          int     `json:"present_days"`
	AbsentDays           int     `json:"absent_days"`
	LateArrivals         int     `json:"late_arrivals"`
	TotalWorkHours       Decimal `json:"total_work_hours"`
	AttendancePercentage Decimal `json:"attendance_percentage"`
}
