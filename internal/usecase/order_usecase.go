package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"canteen/internal/domain/model"
	repo "canteen/internal/repository"
)

// 履歴タブの分類結果。全注文がどれか1つにだけ入る。
type OrderBuckets struct {
	Ongoing   []model.Order
	Completed []model.Order
	Cancelled []model.Order
	// 語彙外ステータス。黙って落とすと注文が行方不明になるので必ず出す
	Unknown []model.Order
}

// タブバッジ用の件数。
type BucketCounts struct {
	Ongoing   int
	Completed int
	Cancelled int
	Unknown   int
}

func (b OrderBuckets) Counts() BucketCounts {
	return BucketCounts{
		Ongoing:   len(b.Ongoing),
		Completed: len(b.Completed),
		Cancelled: len(b.Cancelled),
		Unknown:   len(b.Unknown),
	}
}

// PartitionOrders は注文一覧をバケットに分ける純粋関数。
// 各注文の行き先は並び順に依存しない。
func PartitionOrders(orders []model.Order) OrderBuckets {
	var b OrderBuckets
	for _, o := range orders {
		switch o.Bucket() {
		case model.BucketOngoing:
			b.Ongoing = append(b.Ongoing, o)
		case model.BucketCompleted:
			b.Completed = append(b.Completed, o)
		case model.BucketCancelled:
			b.Cancelled = append(b.Cancelled, o)
		default:
			b.Unknown = append(b.Unknown, o)
		}
	}
	return b
}

// OrderUsecase は利用者側の注文参照。
type OrderUsecase struct {
	orderRepo repo.OrderRepository
	log       *logrus.Logger
}

// DI
func NewOrderUsecase(orderRepo repo.OrderRepository, log *logrus.Logger) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo, log: log}
}

func (u *OrderUsecase) ListMine(ctx context.Context, userID int64) ([]model.Order, error) {
	orders, err := u.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return orders, nil
}

// History は履歴画面の3タブ＋未知分。
func (u *OrderUsecase) History(ctx context.Context, userID int64) (OrderBuckets, error) {
	orders, err := u.ListMine(ctx, userID)
	if err != nil {
		return OrderBuckets{}, err
	}
	return PartitionOrders(orders), nil
}

func (u *OrderUsecase) Find(ctx context.Context, orderID int64) (model.Order, error) {
	order, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return model.Order{}, mapRepoError(err)
	}
	return order, nil
}
