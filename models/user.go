package models

import "strings"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// User is the authenticated account profile.
type User struct {
	ID          int64  `json:"id" yaml:"id"`
	Email       string `json:"email" yaml:"email"`
	FirstName   string `json:"first_name" yaml:"firstName"`
	LastName    string `json:"last_name" yaml:"lastName"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Role        Role   `json:"role" yaml:"role"`
	Department  string `json:"department,omitempty" yaml:"department,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty" yaml:"phoneNumber,omitempty"`
	IsStaff     bool   `json:"is_staff,omitempty" yaml:"isStaff,omitempty"`
	IsActive    bool   `json:"is_active,omitempty" yaml:"isActive,omitempty"`
}

func (u User) FullName() string {
	if u.Name != "" {
		return u.Name
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
