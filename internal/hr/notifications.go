package hr

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BerryBytes/hrctl/models"
)

func (s *Service) ListNotifications(ctx context.Context, opts ListOptions) ([]models.Notification, error) {
	notifications, err := list[models.Notification](ctx, s, "/notifications/notifications/", opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *Service) UnreadNotifications(ctx context.Context) ([]models.Notification, error) {
	notifications, err := list[models.Notification](ctx, s, "/notifications/notifications/unread/", ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list unread notifications: %w", err)
	}
	return notifications, nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, id int64) (*models.Notification, error) {
	var notification models.Notification
	if err := s.send(ctx, http.MethodPost, fmt.Sprintf("/notifications/notifications/%d/mark_as_read/", id), nil, &notification); err != nil {
		return nil, fmt.Errorf("failed to mark notification %d as read: %w", id, err)
	}
	return &notification, nil
}

func (s *Service) MarkAllNotificationsRead(ctx context.Context) (int, error) {
	var result models.MarkAllReadResult
	if err := s.send(ctx, http.MethodPost, "/notifications/notifications/mark_all_as_read/", nil, &result); err != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return result.MarkedAsRead, nil
}

func (s *Service) ActiveAlerts(ctx context.Context) ([]models.Alert, error) {
	alerts, err := list[models.Alert](ctx, s, "/notifications/alerts/active/", ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list active alerts: %w", err)
	}
	return alerts, nil
}
