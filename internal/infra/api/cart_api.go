package api

import (
	"context"
	"fmt"

	"canteen/internal/domain/model"
)

type CartAPIRepository struct {
	c *Client
}

// DI
func NewCartAPIRepository(c *Client) *CartAPIRepository {
	return &CartAPIRepository{c: c}
}

func (r *CartAPIRepository) FindByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	var cart model.Cart
	if err := r.c.get(ctx, fmt.Sprintf("/api/carts/user/%d", userID), &cart); err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

type addCartItemRequest struct {
	MenuItemID int64  `json:"menuItemId"`
	Quantity   int64  `json:"quantity"`
	Note       string `json:"note,omitempty"`
}

func (r *CartAPIRepository) AddItem(ctx context.Context, userID int64, menuItemID int64, quantity int64, note string) (model.Cart, error) {
	var cart model.Cart
	body := addCartItemRequest{MenuItemID: menuItemID, Quantity: quantity, Note: note}
	if err := r.c.post(ctx, fmt.Sprintf("/api/carts/user/%d/items", userID), body, &cart); err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

type updateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

func (r *CartAPIRepository) UpdateItemQuantity(ctx context.Context, cartItemID int64, quantity int64) (model.Cart, error) {
	var cart model.Cart
	body := updateCartItemRequest{Quantity: quantity}
	if err := r.c.put(ctx, fmt.Sprintf("/api/carts/items/%d", cartItemID), body, &cart); err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

func (r *CartAPIRepository) RemoveItem(ctx context.Context, cartItemID int64) error {
	return r.c.delete(ctx, fmt.Sprintf("/api/carts/items/%d", cartItemID))
}
