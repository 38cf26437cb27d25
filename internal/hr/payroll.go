package hr

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BerryBytes/hrctl/models"
)

func (s *Service) ListPayrollPeriods(ctx context.Context, opts ListOptions) ([]models.PayrollPeriod, error) {
	periods, err := list[models.PayrollPeriod](ctx, s, "/payroll/periods/", opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	return periods, nil
}

func (s *Service) ProcessPayrollPeriod(ctx context.Context, id int64) (*models.ProcessResult, error) {
	var result models.ProcessResult
	if err := s.send(ctx, http.MethodPost, fmt.Sprintf("/payroll/periods/%d/process/", id), nil, &result); err != nil {
		return nil, fmt.Errorf("failed to process payroll period %d: %w", id, err)
	}
	return &result, nil
}

func (s *Service) ListPayrollRecords(ctx context.Context, opts ListOptions) ([]models.PayrollRecord, error) {
	records, err := list[models.PayrollRecord](ctx, s, "/payroll/records/", opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	return records, nil
}

func (s *Service) GeneratePayslip(ctx context.Context, id int64) (*models.Payslip, error) {
	var payslip models.Payslip
	if err := s.get(ctx, fmt.Sprintf("/payroll/records/%d/generate_payslip/", id), nil, &payslip); err != nil {
		return nil, fmt.Errorf("failed to generate payslip for record %d: %w", id, err)
	}
	return &payslip, nil
}
