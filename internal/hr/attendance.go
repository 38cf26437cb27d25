package hr

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/BerryBytes/hrctl/models"
)

func (s *Service) ListAttendance(ctx context.Context, opts ListOptions) ([]models.Attendance, error) {
	records, err := list[models.Attendance](ctx, s, "/attendance/", opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}

func (s *Service) MyAttendance(ctx context.Context, opts ListOptions) ([]models.Attendance, error) {
	records, err := list[models.Attendance](ctx, s, "/attendance/my-attendance/", opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list own attendance: %w", err)
	}
	return records, nil
}

func (s *Service) CheckIn(ctx context.Context) (*models.Attendance, error) {
	var record models.Attendance
	if err := s.send(ctx, http.MethodPost, "/attendance/check_in/", nil, &record); err != nil {
		return nil, fmt.Errorf("failed to check in: %w", err)
	}
	return &record, nil
}

func (s *Service) CheckOut(ctx context.Context) (*models.Attendance, error) {
	var record models.Attendance
	if err := s.send(ctx, http.MethodPost, "/attendance/check_out/", nil, &record); err != nil {
		return nil, fmt.Errorf("failed to check out: %w", err)
	}
	return &record, nil
}

func (s *Service) AttendanceReport(ctx context.Context, query url.Values) ([]models.AttendanceReport, error) {
	report, err := list[models.AttendanceReport](ctx, s, "/attendance/report/", ListOptions{Query: query})
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance report: %w", err)
	}
	return report, nil
}
