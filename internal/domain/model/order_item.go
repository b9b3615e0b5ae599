package model

// 注文の明細。priceAtOrderは注文時点の単価で、カタログの価格改定には追従しない。
type OrderItem struct {
	OrderItemID   int64     `json:"orderItemId"`
	OrderID       int64     `json:"orderId"`
	ItemID        int64     `json:"itemId"`
	Quantity      int64     `json:"quantity"`
	PriceAtOrder  Price     `json:"priceAtOrder"`
	SubtotalPrice Price     `json:"subtotalPrice"`
	Note          string    `json:"note,omitempty"`
	MenuItem      *MenuItem `json:"menuItem,omitempty"`
}
