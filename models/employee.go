package models

type EmploymentStatus string

const (
	EmploymentActive     EmploymentStatus = "active"
	EmploymentOnLeave    EmploymentStatus = "on_leave"
	EmploymentTerminated EmploymentStatus = "terminated"
	EmploymentResigned   EmploymentStatus = "resigned"
)

type Employee struct {
	ID               int64            `json:"id"`
	EmployeeID       string           `json:"employee_id"`
	User             int64            `json:"user,omitempty"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	FullName         string           `json:"full_name,omitempty"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone,omitempty"`
	Position         string           `json:"position,omitempty"`
	Designation      string           `json:"designation,omitempty"`
	Department       string           `json:"department,omitempty"`
	DepartmentName   string           `json:"department_name,omitempty"`
	HireDate         string           `json:"hire_date,omitempty"`
	EmploymentStatus EmploymentStatus `json:"employment_status,omitempty"`
	EmploymentType   string           `json:"employment_type,omitempty"`
	WorkEmail        string           `json:"work_email,omitempty"`
	BaseSalary       Decimal          `json:"base_salary,omitempty"`
	IsManager        bool             `json:"is_manager,omitempty"`
	CreatedAt        string           `json:"created_at,omitempty"`
	UpdatedAt        string           `json:"updated_at,omitempty"`
}

func (e Employee) DisplayName() string {
	if e.FullName != "" {
		return e.FullName
	}
	return e.FirstName + " " + e.LastName
}

// EmployeeInput is the writable subset used for create and partial update.
type EmployeeInput struct {
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Position         string `json:"position,omitempty"`
	Department       string `json:"department,omitempty"`
	HireDate         string `json:"hire_date,omitempty"`
	EmploymentStatus string `json:"employment_status,omitempty"`
	EmploymentType   string `json:"employment_type,omitempty"`
	WorkEmail        string `json:"work_email,omitempty"`
	BaseSalary       string `json:"base_salary,omitempty"`
}

type Department struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Code          string `json:"code"`
	Description   string `json:"description,omitempty"`
	Manager       *int64 `json:"manager,omitempty"`
	ManagerName   string `json:"manager_name,omitempty"`
	EmployeeCount int    `json:"employee_count"`
}
