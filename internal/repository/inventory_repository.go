package repository

import (
	"context"

	"canteen/internal/domain/model"
)

type InventoryInput struct {
	ItemID         int64 `json:"itemId"`
	CurrentStock   int64 `json:"currentStock"`
	ThresholdLevel int64 `json:"thresholdLevel"`
}

type InventoryRepository interface {
	List(ctx context.Context) ([]model.Inventory, error)
	FindByItemID(ctx context.Context, itemID int64) (model.Inventory, error)
	Create(ctx context.Context, in InventoryInput) (model.Inventory, error)
	Update(ctx context.Context, inventoryID int64, in InventoryInput) (model.Inventory, error)
	Delete(ctx context.Context, inventoryID int64) error
}
