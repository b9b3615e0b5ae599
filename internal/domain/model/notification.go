package model

import "time"

// READY遷移の受取通知で使うtype値。
const NotificationTypeReadyForPickup = "READY_FOR_PICKUP"

type Notification struct {
	NotificationID int64     `json:"notificationId"`
	UserID         int64     `json:"userId"`
	Message        string    `json:"message"`
	Type           string    `json:"type,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	IsRead         bool      `json:"isRead"`
}
