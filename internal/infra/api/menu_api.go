package api

import (
	"context"
	"fmt"

	"canteen/internal/domain/model"
	"canteen/internal/repository"
)

type MenuAPIRepository struct {
	c *Client
}

// DI
func NewMenuAPIRepository(c *Client) *MenuAPIRepository {
	return &MenuAPIRepository{c: c}
}

func (r *MenuAPIRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := r.c.get(ctx, "/api/menu", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuAPIRepository) FindByID(ctx context.Context, itemID int64) (model.MenuItem, error) {
	var item model.MenuItem
	if err := r.c.get(ctx, fmt.Sprintf("/api/menu/%d", itemID), &item); err != nil {
		return model.MenuItem{}, err
	}
	return item, nil
}

func (r *MenuAPIRepository) ListPopular(ctx context.Context, limit int) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := r.c.get(ctx, fmt.Sprintf("/api/menu/popular?limit=%d", limit), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuAPIRepository) Create(ctx context.Context, in repository.MenuItemInput) (model.MenuItem, error) {
	var item model.MenuItem
	if err := r.c.post(ctx, "/api/menu", in, &item); err != nil {
		return model.MenuItem{}, err
	}
	return item, nil
}

func (r *MenuAPIRepository) Update(ctx context.Context, itemID int64, in repository.MenuItemInput) (model.MenuItem, error) {
	var item model.MenuItem
	if err := r.c.put(ctx, fmt.Sprintf("/api/menu/%d", itemID), in, &item); err != nil {
		return model.MenuItem{}, err
	}
	return item, nil
}

func (r *MenuAPIRepository) Delete(ctx context.Context, itemID int64) error {
	return r.c.delete(ctx, fmt.Sprintf("/api/menu/%d", itemID))
}
