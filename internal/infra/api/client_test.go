package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteen/internal/infra/api"
	"canteen/internal/repository"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, 5*time.Second, testLogger())
}

func TestClient_RequestHeaders(t *testing.T) {
	var got http.Header
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_ = json.NewEncoder(w).Encode([]any{})
	})
	c.SetToken("abc123")

	menu := api.NewMenuAPIRepository(c)
	_, err := menu.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "Bearer abc123", got.Get("Authorization"))
	assert.NotEmpty(t, got.Get("X-Request-ID"))
}

func TestClient_NoAuthHeaderWithoutToken(t *testing.T) {
	var got http.Header
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_ = json.NewEncoder(w).Encode([]any{})
	})

	menu := api.NewMenuAPIRepository(c)
	_, err := menu.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{"unauthorized", http.StatusUnauthorized, repository.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, repository.ErrForbidden},
		{"not found", http.StatusNotFound, repository.ErrNotFound},
		{"server error", http.StatusInternalServerError, repository.ErrUnavailable},
		{"bad gateway", http.StatusBadGateway, repository.ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			menu := api.NewMenuAPIRepository(c)
			_, err := menu.FindByID(context.Background(), 1)
			assert.True(t, errors.Is(err, tt.sentinel))
		})
	}
}

func TestClient_ClientErrorKeepsServerMessage(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "quantity must be positive"})
	})

	cart := api.NewCartAPIRepository(c)
	_, err := cart.AddItem(context.Background(), 1, 2, -1, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity must be positive")
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // 接続先を落とす

	c := api.NewClient(srv.URL, time.Second, testLogger())
	menu := api.NewMenuAPIRepository(c)
	_, err := menu.List(context.Background())
	assert.True(t, errors.Is(err, repository.ErrUnavailable))
}

func TestCartAPI_AddItem(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"cartId": 10,
			"cartItems": []map[string]any{
				{"cartItemId": 100, "itemId": 2, "quantity": 3},
			},
		})
	})

	cart := api.NewCartAPIRepository(c)
	got, err := cart.AddItem(context.Background(), 1, 2, 3, "no onions")
	require.NoError(t, err)

	assert.Equal(t, "POST /api/carts/user/1/items", gotPath)
	assert.Equal(t, float64(2), gotBody["menuItemId"])
	assert.Equal(t, float64(3), gotBody["quantity"])
	assert.Equal(t, "no onions", gotBody["note"])
	require.Len(t, got.CartItems, 1)
	assert.Equal(t, int64(100), got.CartItems[0].CartItemID)
}

func TestOrderAPI_CreateFromCartEscapesPaymentMethod(t *testing.T) {
	var gotQuery string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("paymentMethod")
		_ = json.NewEncoder(w).Encode(map[string]any{"orderId": 7})
	})

	orders := api.NewOrderAPIRepository(c)
	order, err := orders.CreateFromCart(context.Background(), 1, "GCash / e-wallet")
	require.NoError(t, err)
	assert.Equal(t, "GCash / e-wallet", gotQuery)
	assert.Equal(t, int64(7), order.OrderID)
}

func TestOrderAPI_PolymorphicTotalPrice(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		// 境界の価格表現ゆらぎはここで吸収される
		_, _ = w.Write([]byte(`[
			{"orderId": 1, "totalPrice": 29.99},
			{"orderId": 2, "totalPrice": "19.50"},
			{"orderId": 3, "totalPrice": {"value": 10}}
		]`))
	})

	orders := api.NewOrderAPIRepository(c)
	got, err := orders.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 29.99, got[0].TotalPrice.Float())
	assert.Equal(t, 19.50, got[1].TotalPrice.Float())
	assert.Equal(t, 10.0, got[2].TotalPrice.Float())
}

func TestCartAPI_RemoveItemNoContent(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	cart := api.NewCartAPIRepository(c)
	assert.NoError(t, cart.RemoveItem(context.Background(), 100))
}
