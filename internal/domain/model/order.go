package model

import "time"

// 注文。明細と合計は注文確定時にサーバ側で凍結される。
// 過去注文のtotalPriceはクライアントで再計算しない（永続値が正）。
type Order struct {
	OrderID       int64       `json:"orderId"`
	UserID        int64       `json:"userId"`
	User          *OrderUser  `json:"user,omitempty"`
	Status        string      `json:"status"`
	IsPreorder    bool        `json:"isPreorder"`
	Takeout       bool        `json:"takeout"`
	OrderTime     time.Time   `json:"orderTime"`
	PickupTime    *time.Time  `json:"pickupTime,omitempty"`
	TotalPrice    Price       `json:"totalPrice"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	Note          string      `json:"note,omitempty"`
	OrderItems    []OrderItem `json:"orderItems,omitempty"`
}

// 注文一覧に載せる発注者の最小情報。
type OrderUser struct {
	FullName string `json:"fullName"`
	SchoolID string `json:"schoolId"`
}

// CanonicalStatus は境界で正規化したステータス。
func (o Order) CanonicalStatus() OrderStatus {
	st, _ := NormalizeStatus(o.Status)
	return st
}

// Bucket は表示用の大分類。
func (o Order) Bucket() Bucket {
	return BucketOf(o.Status)
}
