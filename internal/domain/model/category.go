package model

type Category struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	ItemCount    int64  `json:"itemCount,omitempty"`
}
