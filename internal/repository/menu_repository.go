package repository

import (
	"context"

	"canteen/internal/domain/model"
)

// メニュー作成・更新の入力（管理画面用）。
type MenuItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	CanteenID   int64   `json:"canteenId,omitempty"`
	CategoryID  int64   `json:"categoryId,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
}

type MenuRepository interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	FindByID(ctx context.Context, itemID int64) (model.MenuItem, error)
	ListPopular(ctx context.Context, limit int) ([]model.MenuItem, error)

	Create(ctx context.Context, in MenuItemInput) (model.MenuItem, error)
	Update(ctx context.Context, itemID int64, in MenuItemInput) (model.MenuItem, error)
	Delete(ctx context.Context, itemID int64) error
}
