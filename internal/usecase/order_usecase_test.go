package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"canteen/internal/domain/model"
	"canteen/internal/usecase"
)

func orderIDs(orders []model.Order) []int64 {
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.OrderID)
	}
	return ids
}

func TestPartitionOrders(t *testing.T) {
	orders := []model.Order{
		{OrderID: 1, Status: "pending"},
		{OrderID: 2, Status: " COMPLETED "},
		{OrderID: 3, Status: "declined"},
	}

	b := usecase.PartitionOrders(orders)
	assert.Equal(t, []int64{1}, orderIDs(b.Ongoing))
	assert.Equal(t, []int64{2}, orderIDs(b.Completed))
	assert.Equal(t, []int64{3}, orderIDs(b.Cancelled))
	assert.Empty(t, b.Unknown)
}

func TestPartitionOrders_OrderIndependent(t *testing.T) {
	forward := []model.Order{
		{OrderID: 1, Status: "PENDING"},
		{OrderID: 2, Status: "READY"},
		{OrderID: 3, Status: "CANCELED"},
	}
	reversed := []model.Order{forward[2], forward[1], forward[0]}

	a := usecase.PartitionOrders(forward)
	b := usecase.PartitionOrders(reversed)

	// 各注文の行き先は並び順に依存しない
	assert.ElementsMatch(t, orderIDs(a.Ongoing), orderIDs(b.Ongoing))
	assert.ElementsMatch(t, orderIDs(a.Cancelled), orderIDs(b.Cancelled))
}

func TestPartitionOrders_UnknownIsSurfaced(t *testing.T) {
	orders := []model.Order{
		{OrderID: 1, Status: "PENDING"},
		{OrderID: 2, Status: "SHIPPED"},
		{OrderID: 3, Status: ""},
	}

	b := usecase.PartitionOrders(orders)
	// 語彙外は落とさず未知バケットに出す
	assert.Equal(t, []int64{2, 3}, orderIDs(b.Unknown))

	c := b.Counts()
	assert.Equal(t, 1, c.Ongoing)
	assert.Equal(t, 2, c.Unknown)
	assert.Equal(t, len(orders), c.Ongoing+c.Completed+c.Cancelled+c.Unknown)
}

func TestHistory(t *testing.T) {
	orderRepo := &OrderRepoMock{}
	u := usecase.NewOrderUsecase(orderRepo, testLogger())

	orderRepo.On("ListByUserID", mock.Anything, int64(3)).Return([]model.Order{
		{OrderID: 1, UserID: 3, Status: "READY"},
		{OrderID: 2, UserID: 3, Status: "COMPLETED"},
	}, nil)

	b, err := u.History(context.Background(), 3)
	require.NoError(t, err)
	// READYは進行中のまま（受取待ちの印はActionRequiredで別途出す）
	assert.Equal(t, []int64{1}, orderIDs(b.Ongoing))
	assert.Equal(t, []int64{2}, orderIDs(b.Completed))
}
