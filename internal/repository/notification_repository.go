package repository

import (
	"context"

	"canteen/internal/domain/model"
)

// POST /notifications の入力。
type CreateNotificationInput struct {
	UserID  int64  `json:"userId"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

type NotificationRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.Notification, error)
	Create(ctx context.Context, in CreateNotificationInput) (model.Notification, error)
	MarkRead(ctx context.Context, notificationID int64) (model.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
}
