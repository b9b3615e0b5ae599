package repository

import (
	"context"

	"canteen/internal/domain/model"
)

// サーバ側カートへの約束。書き込み系は成功時にサーバが返した
// カート全体を返し、それが常に正となる（ローカルとのマージはしない）。
type CartRepository interface {
	FindByUserID(ctx context.Context, userID int64) (model.Cart, error)
	// 同一商品＋同一noteは数量加算される
	AddItem(ctx context.Context, userID int64, menuItemID int64, quantity int64, note string) (model.Cart, error)
	UpdateItemQuantity(ctx context.Context, cartItemID int64, quantity int64) (model.Cart, error)
	RemoveItem(ctx context.Context, cartItemID int64) error
}
