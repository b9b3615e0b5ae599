package repository

import (
	"context"

	"canteen/internal/domain/model"
)

type CanteenRepository interface {
	List(ctx context.Context) ([]model.Canteen, error)
	FindByID(ctx context.Context, canteenID int64) (model.Canteen, error)
}
