package api

import (
	"context"
	"fmt"

	"canteen/internal/domain/model"
	"canteen/internal/repository"
)

type NotificationAPIRepository struct {
	c *Client
}

// DI
func NewNotificationAPIRepository(c *Client) *NotificationAPIRepository {
	return &NotificationAPIRepository{c: c}
}

func (r *NotificationAPIRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Notification, error) {
	var ns []model.Notification
	if err := r.c.get(ctx, fmt.Sprintf("/api/notifications/user/%d", userID), &ns); err != nil {
		return nil, err
	}
	return ns, nil
}

func (r *NotificationAPIRepository) Create(ctx context.Context, in repository.CreateNotificationInput) (model.Notification, error) {
	var n model.Notification
	if err := r.c.post(ctx, "/api/notifications", in, &n); err != nil {
		return model.Notification{}, err
	}
	return n, nil
}

func (r *NotificationAPIRepository) MarkRead(ctx context.Context, notificationID int64) (model.Notification, error) {
	var n model.Notification
	if err := r.c.put(ctx, fmt.Sprintf("/api/notifications/%d/read", notificationID), nil, &n); err != nil {
		return model.Notification{}, err
	}
	return n, nil
}

func (r *NotificationAPIRepository) MarkAllRead(ctx context.Context, userID int64) error {
	return r.c.put(ctx, fmt.Sprintf("/api/notifications/user/%d/read-all", userID), nil, nil)
}
