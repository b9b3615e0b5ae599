package usecase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"canteen/internal/domain/model"
	repo "canteen/internal/repository"
)

// スタッフ画面のキュー。pendingタブ / 調理中タブ（READY含む）/ 完了タブ。
type OrderQueue struct {
	Pending   []model.Order
	InKitchen []model.Order
	Completed []model.Order
	Cancelled []model.Order
	Unknown   []model.Order
}

// StaffOrderUsecase はスタッフ操作の注文ライフサイクル。
// 遷移表のガードはネットワークを呼ぶ前にここで行う（強制はサーバ側）。
type StaffOrderUsecase struct {
	orderRepo repo.OrderRepository
	notifRepo repo.NotificationRepository
	log       *logrus.Logger
}

// DI
func NewStaffOrderUsecase(orderRepo repo.OrderRepository, notifRepo repo.NotificationRepository, log *logrus.Logger) *StaffOrderUsecase {
	return &StaffOrderUsecase{
		orderRepo: orderRepo,
		notifRepo: notifRepo,
		log:       log,
	}
}

func (u *StaffOrderUsecase) ListAll(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return orders, nil
}

// BuildQueue は全注文をスタッフ画面のタブに割り付ける純粋関数。
func BuildQueue(orders []model.Order) OrderQueue {
	var q OrderQueue
	for _, o := range orders {
		st, ok := model.NormalizeStatus(o.Status)
		if !ok {
			q.Unknown = append(q.Unknown, o)
			continue
		}
		switch st {
		case model.OrderStatusPending, model.OrderStatusPendingPayment:
			q.Pending = append(q.Pending, o)
		case model.OrderStatusPreparing, model.OrderStatusReady:
			q.InKitchen = append(q.InKitchen, o)
		case model.OrderStatusCompleted:
			q.Completed = append(q.Completed, o)
		case model.OrderStatusCancelled:
			q.Cancelled = append(q.Cancelled, o)
		}
	}
	return q
}

func (u *StaffOrderUsecase) Queue(ctx context.Context) (OrderQueue, error) {
	orders, err := u.ListAll(ctx)
	if err != nil {
		return OrderQueue{}, err
	}
	return BuildQueue(orders), nil
}

// 更新結果。NotifyErrは二次的な警告で、本体の更新は巻き戻されていない。
type UpdateStatusResult struct {
	Order model.Order
	// READY通知の失敗。nilなら通知不要か成功
	NotifyErr error
}

// 受取通知の注文番号表示。
func OrderNumber(orderID int64) string {
	return fmt.Sprintf("TG-%04d", orderID)
}

// UpdateStatus はステータス遷移の本体。
// 遷移表に無い遷移はネットワークを呼ばずに拒否する。
// READYへの遷移だけ、成功後に受取通知を送る（ベストエフォート）。
func (u *StaffOrderUsecase) UpdateStatus(ctx context.Context, orderID int64, rawStatus string) (UpdateStatusResult, error) {
	if orderID <= 0 {
		return UpdateStatusResult{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	next, ok := model.NormalizeStatus(rawStatus)
	if !ok {
		return UpdateStatusResult{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	order, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return UpdateStatusResult{}, mapRepoError(err)
	}
	current := order.CanonicalStatus()

	// すでに同じなら何もしない
	if current == next {
		return UpdateStatusResult{Order: order}, nil
	}
	// 終端ガード
	if model.IsTerminal(current) {
		return UpdateStatusResult{}, NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("cannot change %s order", current))
	}
	if !model.CanTransition(current, next) {
		return UpdateStatusResult{}, NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("transition %s -> %s not allowed", current, next))
	}

	updated, err := u.orderRepo.UpdateStatus(ctx, orderID, next)
	if err != nil {
		// 一次失敗。注文は元のバケットのまま
		return UpdateStatusResult{}, mapRepoError(err)
	}

	u.log.WithFields(logrus.Fields{
		"order_id": orderID,
		"from":     string(current),
		"to":       string(next),
	}).Info("order status updated")

	result := UpdateStatusResult{Order: updated}

	if next == model.OrderStatusReady && updated.UserID > 0 {
		_, nerr := u.notifRepo.Create(ctx, repo.CreateNotificationInput{
			UserID:  updated.UserID,
			Message: fmt.Sprintf("Your order %s is ready for pickup!", OrderNumber(orderID)),
			Type:    model.NotificationTypeReadyForPickup,
		})
		if nerr != nil {
			// 更新済みのステータスは巻き戻さない。警告として返すだけ
			u.log.WithField("order_id", orderID).WithError(nerr).Warn("status updated but failed to notify")
			result.NotifyErr = nerr
		}
	}

	return result, nil
}

// Accept / Decline / Ready / Complete はスタッフ画面のボタンに対応する。

func (u *StaffOrderUsecase) Accept(ctx context.Context, orderID int64) (UpdateStatusResult, error) {
	return u.UpdateStatus(ctx, orderID, string(model.OrderStatusPreparing))
}

func (u *StaffOrderUsecase) Decline(ctx context.Context, orderID int64) (UpdateStatusResult, error) {
	return u.UpdateStatus(ctx, orderID, string(model.OrderStatusCancelled))
}

func (u *StaffOrderUsecase) Ready(ctx context.Context, orderID int64) (UpdateStatusResult, error) {
	return u.UpdateStatus(ctx, orderID, string(model.OrderStatusReady))
}

func (u *StaffOrderUsecase) Complete(ctx context.Context, orderID int64) (UpdateStatusResult, error) {
	return u.UpdateStatus(ctx, orderID, string(model.OrderStatusCompleted))
}
