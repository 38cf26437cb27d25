package models

type PayrollPeriod struct {
	ID               int64   `json:"id"`
	PeriodType       string  `json:"period_type"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	PaymentDate      string  `json:"payment_date"`
	Status           string  `json:"status"`
	TotalPayroll     Decimal `json:"total_payroll,omitempty"`
	ProcessedRecords int     `json:"processed_records"`
}

type PayrollRecord struct {
	ID              int64        `json:"id"`
	Period          int64        `json:"period"`
	Employee        int64        `json:"employee"`
	EmployeeDetails *EmployeeRef `json:"employee_details,omitempty"`
	BasicSalary     Decimal      `json:"basic_salary"`
	TotalAllowances Decimal      `json:"total_allowances"`
	TotalDeductions Decimal      `json:"total_deductions"`
	GrossSalary     Decimal      `json:"gross_salary"`
	TaxAmount       Decimal      `json:"tax_amount"`
	NetSalary       Decimal      `json:"net_salary"`
	Status          string       `json:"status"`
	PaymentDate     string       `json:"payment_date,omitempty"`
}

// Payslip is the summary returned by GET /payroll/records/{id}/generate_payslip/.
type Payslip struct {
	Employee        string  `json:"employee"`
	Period          string  `json:"period"`
	BasicSalary     Decimal `json:"basic_salary"`
	TotalAllowances Decimal `json:"total_allowances"`
	TotalDeductions Decimal `json:"total_deductions"`
	NetSalary       Decimal `json:"net_salary"`
}

// ProcessResult acknowledges POST /payroll/periods/{id}/process/.
type ProcessResult struct {
	Status string `json:"status"`
}
