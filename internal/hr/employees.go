package hr

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BerryBytes/hrctl/models"
)

func (s *Service) ListEmployees(ctx context.Context, opts ListOptions) ([]models.Employee, error) {
	employees, err := list[models.Employee](ctx, s, "/employees/", opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *Service) GetEmployee(ctx context.Context, id int64) (*models.Employee, error) {
	var employee models.Employee
	if err := s.get(ctx, fmt.Sprintf("/employees/%d/", id), nil, &employee); err != nil {
		return nil, fmt.Errorf("failed to get employee %d: %w", id, err)
	}
	return &employee, nil
}

func (s *Service) CreateEmployee(ctx context.Context, in models.EmployeeInput) (*models.Employee, error) {
	var employee models.Employee
	if err := s.send(ctx, http.MethodPost, "/employees/", in, &employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return &employee, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, id int64, in models.EmployeeInput) (*models.Employee, error) {
	var employee models.Employee
	if err := s.send(ctx, http.MethodPatch, fmt.Sprintf("/employees/%d/", id), in, &employee); err != nil {
		return nil, fmt.Errorf("failed to update employee %d: %w", id, err)
	}
	return &employee, nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.send(ctx, http.MethodDelete, fmt.Sprintf("/employees/%d/", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	return nil
}

func (s *Service) ListDepartments(ctx context.Context, opts ListOptions) ([]models.Department, error) {
	departments, err := list[models.Department](ctx, s, "/departments/", opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}
