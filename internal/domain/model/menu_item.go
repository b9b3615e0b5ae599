package model

import "time"

// ライス追加の単価。1個あたりに加算する（1行あたりではない）。
const RiceAddonPrice = 15.00

// メニューはカタログサービス側が所有。クライアントからは読み取り専用。
type MenuItem struct {
	ItemID      int64      `json:"itemId"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Price       Price      `json:"price"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	CanteenID   int64      `json:"canteenId,omitempty"`
	CategoryID  int64      `json:"categoryId,omitempty"`
	IsAvailable bool       `json:"isAvailable"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}
