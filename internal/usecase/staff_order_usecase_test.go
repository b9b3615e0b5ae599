package usecase_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"canteen/internal/domain/model"
	repo "canteen/internal/repository"
	"canteen/internal/usecase"
)

type NotificationRepoMock struct{ mock.Mock }

func (m *NotificationRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Notification, error) {
	args := m.Called(ctx, userID)
	ns, _ := args.Get(0).([]model.Notification)
	return ns, args.Error(1)
}

func (m *NotificationRepoMock) Create(ctx context.Context, in repo.CreateNotificationInput) (model.Notification, error) {
	args := m.Called(ctx, in)
	n, _ := args.Get(0).(model.Notification)
	return n, args.Error(1)
}

func (m *NotificationRepoMock) MarkRead(ctx context.Context, notificationID int64) (model.Notification, error) {
	args := m.Called(ctx, notificationID)
	n, _ := args.Get(0).(model.Notification)
	return n, args.Error(1)
}

func (m *NotificationRepoMock) MarkAllRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestUpdateStatus_PendingToPreparing(t *testing.T) {
	orderRepo := &OrderRepoMock{}
	notifRepo := &NotificationRepoMock{}
	u := usecase.NewStaffOrderUsecase(orderRepo, notifRepo, testLogger())

	orderRepo.On("FindByID", mock.Anything, int64(7)).
		Return(model.Order{OrderID: 7, UserID: 3, Status: "PENDING"}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, int64(7), model.OrderStatusPreparing).
		Return(model.Order{OrderID: 7, UserID: 3, Status: "PREPARING"}, nil)

	result, err := u.Accept(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "PREPARING", result.Order.Status)
	assert.NoError(t, result.NotifyErr)
	notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateStatus_TerminalOrderRejectedBeforeNetwork(t *testing.T) {
	orderRepo := &OrderRepoMock{}
	u := usecase.NewStaffOrderUsecase(orderRepo, &NotificationRepoMock{}, testLogger())

	orderRepo.On("FindByID", mock.Anything, int64(7)).
		Return(model.Order{OrderID: 7, Status: "COMPLETED"}, nil)

	_, err := u.UpdateStatus(context.Background(), 7, "PREPARING")
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, 400, he.Status)

	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_BackwardTransitionRejected(t *testing.T) {
	orderRepo := &OrderRepoMock{}
	u := usecase.NewStaffOrderUsecase(orderRepo, &NotificationRepoMock{}, testLogger())

	orderRepo.On("FindByID", mock.Anything, int64(7)).
		Return(model.Order{OrderID: 7, Status: "READY"}, nil)

	_, err := u.UpdateStatus(context.Background(), 7, "PENDING")
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, 400, he.Status)

	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	orderRepo := &OrderRepoMock{}
	u := usecase.NewStaffOrderUsecase(orderRepo, &NotificationRepoMock{}, testLogger())

	_, err := u.UpdateStatus(context.Background(), 7, "SHIPPED")
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, 400, he.Status)
	assert.Equal(t, "invalid status", he.Message)

	orderRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdateStatus_SameStatusIsNoop(t *testing.T) {
	orderRepo := &OrderRepoMock{}
	u := usecase.NewStaffOrderUsecase(orderRepo, &NotificationRepoMock{}, testLogger())

	// エイリアス経由でも同一判定
	orderRepo.On("FindByID", mock.Anything, int64(7)).
		Return(model.Order{OrderID: 7, Status: "ACCEPTED"}, nil)

	result, err := u.UpdateStatus(context.Background(), 7, "preparing")
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.Order.OrderID)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_ReadySendsPickupNotification(t *testing.T) {
	orderRepo := &OrderRepoMock{}
	notifRepo := &NotificationRepoMock{}
	u := usecase.NewStaffOrderUsecase(orderRepo, notifRepo, testLogger())

	orderRepo.On("FindByID", mock.Anything, int64(7)).
		Return(model.Order{OrderID: 7, UserID: 3, Status: "PREPARING"}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, int64(7), model.OrderStatusReady).
		Return(model.Order{OrderID: 7, UserID: 3, Status: "READY"}, nil)
	notifRepo.On("Create", mock.Anything, repo.CreateNotificationInput{
		UserID:  3,
		Message: "Your order TG-0007 is ready for pickup!",
		Type:    model.NotificationTypeReadyForPickup,
	}).Return(model.Notification{NotificationID: 1}, nil)

	result, err := u.Ready(context.Background(), 7)
	require.NoError(t, err)
	assert.NoError(t, result.NotifyErr)
	notifRepo.AssertExpectations(t)
}

func TestUpdateStatus_NotifyFailureDoesNotRollback(t *testing.T) {
	orderRepo := &OrderRepoMock{}
	notifRepo := &NotificationRepoMock{}
	u := usecase.NewStaffOrderUsecase(orderRepo, notifRepo, testLogger())

	orderRepo.On("FindByID", mock.Anything, int64(7)).
		Return(model.Order{OrderID: 7, UserID: 3, Status: "PREPARING"}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, int64(7), model.OrderStatusReady).
		Return(model.Order{OrderID: 7, UserID: 3, Status: "READY"}, nil)
	notifRepo.On("Create", mock.Anything, mock.Anything).
		Return(model.Notification{}, errors.New("notify down"))

	// 通知失敗は二次的な警告。本体のエラーにはしない
	result, err := u.Ready(context.Background(), 7)
	require.NoError(t, err)
	assert.Error(t, result.NotifyErr)
	assert.Equal(t, "READY", result.Order.Status)
}

func TestUpdateStatus_PrimaryFailureSurfaced(t *testing.T) {
	orderRepo := &OrderRepoMock{}
	notifRepo := &NotificationRepoMock{}
	u := usecase.NewStaffOrderUsecase(orderRepo, notifRepo, testLogger())

	orderRepo.On("FindByID", mock.Anything, int64(7)).
		Return(model.Order{OrderID: 7, UserID: 3, Status: "PREPARING"}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, int64(7), model.OrderStatusReady).
		Return(model.Order{}, repo.ErrUnavailable)

	_, err := u.Ready(context.Background(), 7)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, 503, he.Status)
	notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderNumber(t *testing.T) {
	assert.Equal(t, "TG-0007", usecase.OrderNumber(7))
	assert.Equal(t, "TG-0042", usecase.OrderNumber(42))
	assert.Equal(t, "TG-12345", usecase.OrderNumber(12345))
}

func TestBuildQueue(t *testing.T) {
	orders := []model.Order{
		{OrderID: 1, Status: "PENDING"},
		{OrderID: 2, Status: "PENDING_PAYMENT"},
		{OrderID: 3, Status: "accepted"}, // PREPARINGのエイリアス
		{OrderID: 4, Status: "READY"},
		{OrderID: 5, Status: "COMPLETED"},
		{OrderID: 6, Status: "DECLINED"},
		{OrderID: 7, Status: "SHIPPED"},
	}

	q := usecase.BuildQueue(orders)
	assert.Len(t, q.Pending, 2)
	assert.Len(t, q.InKitchen, 2) // READYは調理中タブに残る
	assert.Len(t, q.Completed, 1)
	assert.Len(t, q.Cancelled, 1)
	require.Len(t, q.Unknown, 1)
	assert.Equal(t, int64(7), q.Unknown[0].OrderID)
}
