package repository

import (
	"context"

	"canteen/internal/domain/model"
)

type OrderRepository interface {
	// カート内容から注文を作る。空カートの拒否は呼び出し側で済ませる。
	CreateFromCart(ctx context.Context, userID int64, paymentMethod string) (model.Order, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	// スタッフ用の全件一覧
	ListAll(ctx context.Context) ([]model.Order, error)
	// 強制はサーバ側。クライアントは遷移表ガードを通してから呼ぶ
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (model.Order, error)
}
