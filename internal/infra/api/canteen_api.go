package api

import (
	"context"
	"fmt"

	"canteen/internal/domain/model"
)

type CanteenAPIRepository struct {
	c *Client
}

// DI
func NewCanteenAPIRepository(c *Client) *CanteenAPIRepository {
	return &CanteenAPIRepository{c: c}
}

func (r *CanteenAPIRepository) List(ctx context.Context) ([]model.Canteen, error) {
	var cs []model.Canteen
	if err := r.c.get(ctx, "/api/canteens", &cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func (r *CanteenAPIRepository) FindByID(ctx context.Context, canteenID int64) (model.Canteen, error) {
	var cn model.Canteen
	if err := r.c.get(ctx, fmt.Sprintf("/api/canteens/%d", canteenID), &cn); err != nil {
		return model.Canteen{}, err
	}
	return cn, nil
}
