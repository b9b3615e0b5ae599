package usecase

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"canteen/internal/domain/model"
	repo "canteen/internal/repository"
)

type CanteenUsecase struct {
	canteenRepo repo.CanteenRepository
	log         *logrus.Logger
}

// DI
func NewCanteenUsecase(canteenRepo repo.CanteenRepository, log *logrus.Logger) *CanteenUsecase {
	return &CanteenUsecase{canteenRepo: canteenRepo, log: log}
}

func (u *CanteenUsecase) List(ctx context.Context) ([]model.Canteen, error) {
	cs, err := u.canteenRepo.List(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return cs, nil
}

func (u *CanteenUsecase) Find(ctx context.Context, canteenID int64) (model.Canteen, error) {
	if canteenID <= 0 {
		return model.Canteen{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	cn, err := u.canteenRepo.FindByID(ctx, canteenID)
	if err != nil {
		return model.Canteen{}, mapRepoError(err)
	}
	return cn, nil
}
