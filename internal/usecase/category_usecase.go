package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"canteen/internal/domain/model"
	repo "canteen/internal/repository"
)

type CategoryUsecase struct {
	catRepo repo.CategoryRepository
	log     *logrus.Logger
}

// DI
func NewCategoryUsecase(catRepo repo.CategoryRepository, log *logrus.Logger) *CategoryUsecase {
	return &CategoryUsecase{catRepo: catRepo, log: log}
}

func (u *CategoryUsecase) List(ctx context.Context) ([]model.Category, error) {
	cs, err := u.catRepo.List(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return cs, nil
}

func (u *CategoryUsecase) Create(ctx context.Context, name string) (model.Category, error) {
	if strings.TrimSpace(name) == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	cat, err := u.catRepo.Create(ctx, repo.CategoryInput{CategoryName: strings.TrimSpace(name)})
	if err != nil {
		return model.Category{}, mapRepoError(err)
	}
	return cat, nil
}

func (u *CategoryUsecase) Rename(ctx context.Context, categoryID int64, name string) (model.Category, error) {
	if categoryID <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(name) == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	cat, err := u.catRepo.Update(ctx, categoryID, repo.CategoryInput{CategoryName: strings.TrimSpace(name)})
	if err != nil {
		return model.Category{}, mapRepoError(err)
	}
	return cat, nil
}

func (u *CategoryUsecase) Delete(ctx context.Context, categoryID int64) error {
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.catRepo.Delete(ctx, categoryID); err != nil {
		return mapRepoError(err)
	}
	return nil
}
