package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"canteen/internal/domain/model"
	repo "canteen/internal/repository"
)

// 一覧の絞り込み。0・空は条件なし。
type MenuFilter struct {
	CategoryID    int64
	CanteenID     int64
	Query         string
	AvailableOnly bool
}

type MenuUsecase struct {
	menuRepo repo.MenuRepository
	log      *logrus.Logger
}

// DI
func NewMenuUsecase(menuRepo repo.MenuRepository, log *logrus.Logger) *MenuUsecase {
	return &MenuUsecase{menuRepo: menuRepo, log: log}
}

// Browse はメニュー一覧。絞り込みはクライアント側で行う。
func (u *MenuUsecase) Browse(ctx context.Context, f MenuFilter) ([]model.MenuItem, error) {
	items, err := u.menuRepo.List(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]model.MenuItem, 0, len(items))
	for _, it := range items {
		if f.AvailableOnly && !it.IsAvailable {
			continue
		}
		if f.CategoryID > 0 && it.CategoryID != f.CategoryID {
			continue
		}
		if f.CanteenID > 0 && it.CanteenID != f.CanteenID {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(it.Name), q) &&
			!strings.Contains(strings.ToLower(it.Description), q) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (u *MenuUsecase) Find(ctx context.Context, itemID int64) (model.MenuItem, error) {
	item, err := u.menuRepo.FindByID(ctx, itemID)
	if err != nil {
		return model.MenuItem{}, mapRepoError(err)
	}
	return item, nil
}

func (u *MenuUsecase) Popular(ctx context.Context, limit int) ([]model.MenuItem, error) {
	if limit < 1 {
		limit = 4
	}
	items, err := u.menuRepo.ListPopular(ctx, limit)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return items, nil
}

// 管理側のCRUD。

func (u *MenuUsecase) Create(ctx context.Context, in repo.MenuItemInput) (model.MenuItem, error) {
	if err := validateMenuItemInput(in); err != nil {
		return model.MenuItem{}, err
	}
	item, err := u.menuRepo.Create(ctx, in)
	if err != nil {
		return model.MenuItem{}, mapRepoError(err)
	}
	return item, nil
}

func (u *MenuUsecase) Update(ctx context.Context, itemID int64, in repo.MenuItemInput) (model.MenuItem, error) {
	if itemID <= 0 {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateMenuItemInput(in); err != nil {
		return model.MenuItem{}, err
	}
	item, err := u.menuRepo.Update(ctx, itemID, in)
	if err != nil {
		return model.MenuItem{}, mapRepoError(err)
	}
	return item, nil
}

func (u *MenuUsecase) Delete(ctx context.Context, itemID int64) error {
	if itemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.menuRepo.Delete(ctx, itemID); err != nil {
		return mapRepoError(err)
	}
	return nil
}

func validateMenuItemInput(in repo.MenuItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	return nil
}
