package hr

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/BerryBytes/hrctl/models"
)

func (s *Service) ListPerformanceCriteria(ctx context.Context) ([]models.PerformanceCriterion, error) {
	criteria, err := list[models.PerformanceCriterion](ctx, s, "/performance/criteria/", ListOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list performance criteria: %w", err)
	}
	return criteria, nil
}

func (s *Service) ListReviews(ctx context.Context, opts ListOptions) ([]models.PerformanceReview, error) {
	reviews, err := list[models.PerformanceReview](ctx, s, "/performance/reviews/", opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	return reviews, nil
}

func (s *Service) GetReview(ctx context.Context, id int64) (*models.PerformanceReview, error) {
	var review models.PerformanceReview
	if err := s.get(ctx, fmt.Sprintf("/performance/reviews/%d/", id), nil, &review); err != nil {
		return nil, fmt.Errorf("failed to get performance review %d: %w", id, err)
	}
	return &review, nil
}

func (s *Service) MyReviews(ctx context.Context) ([]models.PerformanceReview, error) {
	reviews, err := list[models.PerformanceReview](ctx, s, "/performance/my-reviews/", ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list own performance reviews: %w", err)
	}
	return reviews, nil
}

// SubmitReview moves a draft review forward. The backend answers 400 for a
// review that is no longer a draft.
func (s *Service) SubmitReview(ctx context.Context, id int64) (*models.StatusMessage, error) {
	var result models.StatusMessage
	if err := s.send(ctx, http.MethodPost, fmt.Sprintf("/performance/reviews/%d/submit/", id), nil, &result); err != nil {
		return nil, fmt.Errorf("failed to submit performance review %d: %w", id, err)
	}
	return &result, nil
}

func (s *Service) AverageScores(ctx context.Context, employeeID int64) ([]models.AverageScore, error) {
	var scores []models.AverageScore
	query := url.Values{"employee": {strconv.FormatInt(employeeID, 10)}}
	if err := s.get(ctx, "/performance/scores/average_scores/", query, &scores); err != nil {
		return nil, fmt.Errorf("failed to get average scores for employee %d: %w", employeeID, err)
	}
	return scores, nil
}

func (s *Service) ListGoals(ctx context.Context, opts ListOptions) ([]models.Goal, error) {
	goals, err := list[models.Goal](ctx, s, "/performance/goals/", opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (s *Service) MyGoals(ctx context.Context) ([]models.Goal, error) {
	goals, err := list[models.Goal](ctx, s, "/performance/my-goals/", ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list own goals: %w", err)
	}
	return goals, nil
}

func (s *Service) UpdateGoal(ctx context.Context, id int64, in models.GoalUpdate) (*models.Goal, error) {
	if in.Progress != nil && (*in.Progress < 0 || *in.Progress > 100) {
		return nil, ErrInvalidProgress
	}

	var updated models.Goal
	if err := s.send(ctx, http.MethodPatch, fmt.Sprintf("/performance/goals/%d/", id), in, &updated); err != nil {
		return nil, fmt.Errorf("failed to update goal %d: %w", id, err)
	}
	return &updated, nil
}
