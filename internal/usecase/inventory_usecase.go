package usecase

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"canteen/internal/domain/model"
	repo "canteen/internal/repository"
)

type InventoryUsecase struct {
	invRepo repo.InventoryRepository
	log     *logrus.Logger
}

// DI
func NewInventoryUsecase(invRepo repo.InventoryRepository, log *logrus.Logger) *InventoryUsecase {
	return &InventoryUsecase{invRepo: invRepo, log: log}
}

// List は在庫一覧。statusが空で届いたら在庫数から導出して埋める。
func (u *InventoryUsecase) List(ctx context.Context) ([]model.Inventory, error) {
	inv, err := u.invRepo.List(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	for i := range inv {
		if inv[i].Status == "" {
			inv[i].Status = model.DeriveStockStatus(inv[i].CurrentStock, inv[i].ThresholdLevel)
		}
	}
	return inv, nil
}

// LowStock は管理画面の警告一覧（しきい値割れと在庫切れ）。
func (u *InventoryUsecase) LowStock(ctx context.Context) ([]model.Inventory, error) {
	inv, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Inventory, 0)
	for _, v := range inv {
		if v.Status != model.StockStatusInStock {
			out = append(out, v)
		}
	}
	return out, nil
}

func (u *InventoryUsecase) FindByItemID(ctx context.Context, itemID int64) (model.Inventory, error) {
	if itemID <= 0 {
		return model.Inventory{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	inv, err := u.invRepo.FindByItemID(ctx, itemID)
	if err != nil {
		return model.Inventory{}, mapRepoError(err)
	}
	if inv.Status == "" {
		inv.Status = model.DeriveStockStatus(inv.CurrentStock, inv.ThresholdLevel)
	}
	return inv, nil
}

func (u *InventoryUsecase) Create(ctx context.Context, in repo.InventoryInput) (model.Inventory, error) {
	if err := validateInventoryInput(in); err != nil {
		return model.Inventory{}, err
	}
	inv, err := u.invRepo.Create(ctx, in)
	if err != nil {
		return model.Inventory{}, mapRepoError(err)
	}
	return inv, nil
}

func (u *InventoryUsecase) Update(ctx context.Context, inventoryID int64, in repo.InventoryInput) (model.Inventory, error) {
	if inventoryID <= 0 {
		return model.Inventory{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateInventoryInput(in); err != nil {
		return model.Inventory{}, err
	}
	inv, err := u.invRepo.Update(ctx, inventoryID, in)
	if err != nil {
		return model.Inventory{}, mapRepoError(err)
	}
	return inv, nil
}

func (u *InventoryUsecase) Delete(ctx context.Context, inventoryID int64) error {
	if inventoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.invRepo.Delete(ctx, inventoryID); err != nil {
		return mapRepoError(err)
	}
	return nil
}

func validateInventoryInput(in repo.InventoryInput) error {
	if in.ItemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	if in.CurrentStock < 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid stock")
	}
	if in.ThresholdLevel < 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid threshold")
	}
	return nil
}
