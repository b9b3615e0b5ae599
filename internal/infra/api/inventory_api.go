package api

import (
	"context"
	"fmt"

	"canteen/internal/domain/model"
	"canteen/internal/repository"
)

type InventoryAPIRepository struct {
	c *Client
}

// DI
func NewInventoryAPIRepository(c *Client) *InventoryAPIRepository {
	return &InventoryAPIRepository{c: c}
}

func (r *InventoryAPIRepository) List(ctx context.Context) ([]model.Inventory, error) {
	var inv []model.Inventory
	if err := r.c.get(ctx, "/api/inventory", &inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *InventoryAPIRepository) FindByItemID(ctx context.Context, itemID int64) (model.Inventory, error) {
	var inv model.Inventory
	if err := r.c.get(ctx, fmt.Sprintf("/api/inventory/item/%d", itemID), &inv); err != nil {
		return model.Inventory{}, err
	}
	return inv, nil
}

func (r *InventoryAPIRepository) Create(ctx context.Context, in repository.InventoryInput) (model.Inventory, error) {
	var inv model.Inventory
	if err := r.c.post(ctx, "/api/inventory", in, &inv); err != nil {
		return model.Inventory{}, err
	}
	return inv, nil
}

func (r *InventoryAPIRepository) Update(ctx context.Context, inventoryID int64, in repository.InventoryInput) (model.Inventory, error) {
	var inv model.Inventory
	if err := r.c.put(ctx, fmt.Sprintf("/api/inventory/%d", inventoryID), in, &inv); err != nil {
		return model.Inventory{}, err
	}
	return inv, nil
}

func (r *InventoryAPIRepository) Delete(ctx context.Context, inventoryID int64) error {
	return r.c.delete(ctx, fmt.Sprintf("/api/inventory/%d", inventoryID))
}
