package usecase

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"canteen/internal/domain/model"
	repo "canteen/internal/repository"
)

// ダッシュボードの集計。
type DashboardStats struct {
	NewOrders  int
	Preparing  int
	Ready      int
	Completed  int
	Cancelled  int
	TotalSales float64
}

type ReportUsecase struct {
	orderRepo repo.OrderRepository
	log       *logrus.Logger
}

// DI
func NewReportUsecase(orderRepo repo.OrderRepository, log *logrus.Logger) *ReportUsecase {
	return &ReportUsecase{orderRepo: orderRepo, log: log}
}

// BuildStats は注文一覧からの集計（純粋関数）。
// 売上はキャンセル以外のtotalPriceの和。金額は境界の値をそのまま使い、
// 明細から再計算はしない。
func BuildStats(orders []model.Order) DashboardStats {
	var s DashboardStats
	for _, o := range orders {
		st, _ := model.NormalizeStatus(o.Status)
		switch st {
		case model.OrderStatusPending, model.OrderStatusPendingPayment:
			s.NewOrders++
		case model.OrderStatusPreparing:
			s.Preparing++
		case model.OrderStatusReady:
			s.Ready++
		case model.OrderStatusCompleted:
			s.Completed++
		case model.OrderStatusCancelled:
			s.Cancelled++
		}
		if st != model.OrderStatusCancelled {
			s.TotalSales += o.TotalPrice.Float()
		}
	}
	return s
}

func (u *ReportUsecase) Stats(ctx context.Context) (DashboardStats, error) {
	orders, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return DashboardStats{}, mapRepoError(err)
	}
	return BuildStats(orders), nil
}

// WriteOrdersCSV は注文一覧のレポート出力。
func WriteOrdersCSV(w io.Writer, orders []model.Order) error {
	cw := csv.NewWriter(w)

	header := []string{"order_id", "user_id", "status", "bucket", "total_price", "payment_method", "order_time"}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write csv header")
	}

	for _, o := range orders {
		st, _ := model.NormalizeStatus(o.Status)
		row := []string{
			strconv.FormatInt(o.OrderID, 10),
			strconv.FormatInt(o.UserID, 10),
			string(st),
			string(o.Bucket()),
			strconv.FormatFloat(o.TotalPrice.Float(), 'f', 2, 64),
			o.PaymentMethod,
			o.OrderTime.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}

// ExportOrders は全注文のCSVレポート。
func (u *ReportUsecase) ExportOrders(ctx context.Context, w io.Writer) error {
	orders, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return mapRepoError(err)
	}
	return WriteOrdersCSV(w, orders)
}
