package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Decimal holds a monetary or fractional amount as sent by the backend. The
// API serialises decimals either as JSON strings ("1200.50") or numbers.
type Decimal string

func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Decimal(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid decimal %s: %w", string(data), err)
	}
	*d = Decimal(n.String())
	return nil
}

func (d Decimal) Float64() (float64, error) {
	if d == "" {
		return 0, nil
	}
	return strconv.ParseFloat(string(d), 64)
}

func (d Decimal) String() string {
	if d == "" {
		return "0"
	}
	return string(d)
}

// EmployeeRef is the compact employee summary nested in attendance, leave
// and payroll records.
type EmployeeRef struct {
	ID             int64  `json:"id"`
	EmployeeID     string `json:"employee_id"`
	FullName       string `json:"full_name"`
	DepartmentName string `json:"department_name"`
}

// Page is a paginated list envelope.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
