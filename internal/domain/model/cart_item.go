package model

import "time"

// カートの明細。menuItemは展開されて返ることがある（無ければnil）。
type CartItem struct {
	CartItemID int64      `json:"cartItemId"`
	ItemID     int64      `json:"itemId"`
	Quantity   int64      `json:"quantity"`
	Note       string     `json:"note,omitempty"`
	AddonRice  bool       `json:"addonRice,omitempty"`
	AddedAt    *time.Time `json:"addedAt,omitempty"`
	MenuItem   *MenuItem  `json:"menuItem,omitempty"`
}

// UnitPrice は明細の単価。menuItem未展開なら0。
func (i CartItem) UnitPrice() float64 {
	if i.MenuItem == nil {
		return 0
	}
	return i.MenuItem.Price.Float()
}
