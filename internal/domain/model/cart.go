package model

import "time"

// サーバ側カート。1ユーザーにつき1つ。
type Cart struct {
	CartID    int64      `json:"cartId"`
	UserID    int64      `json:"userId,omitempty"`
	CartItems []CartItem `json:"cartItems,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
