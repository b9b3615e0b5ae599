package api

import (
	"context"
	"fmt"
	"net/url"

	"canteen/internal/domain/model"
)

type OrderAPIRepository struct {
	c *Client
}

// DI
func NewOrderAPIRepository(c *Client) *OrderAPIRepository {
	return &OrderAPIRepository{c: c}
}

func (r *OrderAPIRepository) CreateFromCart(ctx context.Context, userID int64, paymentMethod string) (model.Order, error) {
	var order model.Order
	path := fmt.Sprintf("/api/orders/user/%d?paymentMethod=%s", userID, url.QueryEscape(paymentMethod))
	if err := r.c.post(ctx, path, nil, &order); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (r *OrderAPIRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var order model.Order
	if err := r.c.get(ctx, fmt.Sprintf("/api/orders/%d", orderID), &order); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (r *OrderAPIRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var orders []model.Order
	if err := r.c.get(ctx, fmt.Sprintf("/api/orders/user/%d", userID), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderAPIRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := r.c.get(ctx, "/api/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (r *OrderAPIRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (model.Order, error) {
	var order model.Order
	body := updateStatusRequest{Status: string(status)}
	if err := r.c.put(ctx, fmt.Sprintf("/api/orders/%d/status", orderID), body, &order); err != nil {
		return model.Order{}, err
	}
	return order, nil
}
