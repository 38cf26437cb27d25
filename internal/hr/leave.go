package hr

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/BerryBytes/hrctl/models"
)

var (
	ErrInvalidDecision = errors.New("leave decision must be approved or rejected")
	ErrInvalidProgress = errors.New("goal progress must be between 0 and 100")
)

func (s *Service) ListLeaveTypes(ctx context.Context) ([]models.LeaveType, error) {
	types, err := list[models.LeaveType](ctx, s, "/leave/types/", ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	return types, nil
}

func (s *Service) ListLeaveRequests(ctx context.Context, opts ListOptions) ([]models.LeaveRequest, error) {
	requests, err := list[models.LeaveRequest](ctx, s, "/leave/requests/", opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

func (s *Service) MyLeaveRequests(ctx context.Context) ([]models.LeaveRequest, error) {
	requests, err := list[models.LeaveRequest](ctx, s, "/leave/my-requests/", ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list own leave requests: %w", err)
	}
	return requests, nil
}

func (s *Service) CreateLeaveRequest(ctx context.Context, in models.CreateLeaveRequest) (*models.LeaveRequest, error) {
	var created models.LeaveRequest
	if err := s.send(ctx, http.MethodPost, "/leave/requests/", in, &created); err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}
	return &created, nil
}

// DecideLeaveRequest approves or rejects a pending request. A rejection
// should carry a reason.
func (s *Service) DecideLeaveRequest(ctx context.Context, id int64, decision models.LeaveDecision) (*models.LeaveRequest, error) {
	if decision.Status != models.LeaveApproved && decision.Status != models.LeaveRejected {
		return nil, ErrInvalidDecision
	}

	var updated models.LeaveRequest
	if err := s.send(ctx, http.MethodPost, fmt.Sprintf("/leave/requests/%d/approve/", id), decision, &updated); err != nil {
		return nil, fmt.Errorf("failed to %s leave request %d: %w", verb(decision.Status), id, err)
	}
	return &updated, nil
}

func (s *Service) MyLeaveBalances(ctx context.Context) ([]models.LeaveBalance, error) {
	balances, err := list[models.LeaveBalance](ctx, s, "/leave/my-balances/", ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	return balances, nil
}

func verb(status models.LeaveStatus) string {
	if status == models.LeaveRejected {
		return "reject"
	}
	return "approve"
}
