package repository

import (
	"context"

	"canteen/internal/domain/model"
)

type CategoryInput struct {
	CategoryName string `json:"categoryName"`
}

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, categoryID int64) (model.Category, error)
	Create(ctx context.Context, in CategoryInput) (model.Category, error)
	Update(ctx context.Context, categoryID int64, in CategoryInput) (model.Category, error)
	Delete(ctx context.Context, categoryID int64) error
}
