package model

type StockStatus string

const (
	StockStatusInStock    StockStatus = "In Stock"
	StockStatusLowStock   StockStatus = "Low Stock"
	StockStatusOutOfStock StockStatus = "Out of Stock"
)

type Inventory struct {
	InventoryID    int64       `json:"inventoryId"`
	ItemID         int64       `json:"itemId"`
	ItemName       string      `json:"itemName"`
	CurrentStock   int64       `json:"currentStock"`
	ThresholdLevel int64       `json:"thresholdLevel"`
	Status         StockStatus `json:"status,omitempty"`
}

// DeriveStockStatus は在庫数としきい値から表示ステータスを導く。
func DeriveStockStatus(currentStock, threshold int64) StockStatus {
	switch {
	case currentStock <= 0:
		return StockStatusOutOfStock
	case currentStock <= threshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}
