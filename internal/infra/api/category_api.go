package api

import (
	"context"
	"fmt"

	"canteen/internal/domain/model"
	"canteen/internal/repository"
)

type CategoryAPIRepository struct {
	c *Client
}

// DI
func NewCategoryAPIRepository(c *Client) *CategoryAPIRepository {
	return &CategoryAPIRepository{c: c}
}

func (r *CategoryAPIRepository) List(ctx context.Context) ([]model.Category, error) {
	var cs []model.Category
	if err := r.c.get(ctx, "/api/categories", &cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func (r *CategoryAPIRepository) FindByID(ctx context.Context, categoryID int64) (model.Category, error) {
	var cat model.Category
	if err := r.c.get(ctx, fmt.Sprintf("/api/categories/%d", categoryID), &cat); err != nil {
		return model.Category{}, err
	}
	return cat, nil
}

func (r *CategoryAPIRepository) Create(ctx context.Context, in repository.CategoryInput) (model.Category, error) {
	var cat model.Category
	if err := r.c.post(ctx, "/api/categories", in, &cat); err != nil {
		return model.Category{}, err
	}
	return cat, nil
}

func (r *CategoryAPIRepository) Update(ctx context.Context, categoryID int64, in repository.CategoryInput) (model.Category, error) {
	var cat model.Category
	if err := r.c.put(ctx, fmt.Sprintf("/api/categories/%d", categoryID), in, &cat); err != nil {
		return model.Category{}, err
	}
	return cat, nil
}

func (r *CategoryAPIRepository) Delete(ctx context.Context, categoryID int64) error {
	return r.c.delete(ctx, fmt.Sprintf("/api/categories/%d", categoryID))
}
