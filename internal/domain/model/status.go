package model

import "strings"

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	OrderStatusPreparing      OrderStatus = "PREPARING"
	OrderStatusReady          OrderStatus = "READY"
	OrderStatusCompleted      OrderStatus = "COMPLETED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// 表示用の大分類。
type Bucket string

const (
	BucketOngoing   Bucket = "ongoing"
	BucketCompleted Bucket = "completed"
	BucketCancelled Bucket = "cancelled"
	// 未知のステータスは落とさずここに出す（注文が見えなくなるのを防ぐ）
	BucketUnknown Bucket = "unknown"
)

// 別名の吸収。境界で必ず通し、内部は正準値だけを扱う。
var statusAliases = map[string]OrderStatus{
	"ACCEPTED": OrderStatusPreparing,
	"CANCELED": OrderStatusCancelled,
	"DECLINED": OrderStatusCancelled,
}

// NormalizeStatus はtrim＋大文字化して別名を正準値に寄せる。
// 語彙外の値は（trim＋大文字化だけして）そのまま返し、okはfalse。
func NormalizeStatus(raw string) (OrderStatus, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if alias, ok := statusAliases[s]; ok {
		return alias, true
	}
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusPendingPayment, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return OrderStatus(s), true
	}
	return OrderStatus(s), false
}

// BucketOf は生のステータス文字列を大分類に割り当てる。全域関数。
func BucketOf(raw string) Bucket {
	st, ok := NormalizeStatus(raw)
	if !ok {
		return BucketUnknown
	}
	switch st {
	case OrderStatusCompleted:
		return BucketCompleted
	case OrderStatusCancelled:
		return BucketCancelled
	default:
		return BucketOngoing
	}
}

// スタッフ操作で許可する遷移。COMPLETED / CANCELLED は終端。
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPendingPayment: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:      {OrderStatusReady, OrderStatusCompleted},
	OrderStatusReady:          {OrderStatusCompleted},
}

// CanTransition は遷移表の照会。ネットワークを呼ぶ前のガードに使う。
func CanTransition(from, to OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses はfromから進める遷移先（スタッフ画面のボタン列）。
func NextStatuses(from OrderStatus) []OrderStatus {
	return allowedTransitions[from]
}

// IsTerminal は終端判定。
func IsTerminal(s OrderStatus) bool {
	return len(allowedTransitions[s]) == 0
}

// ActionRequired はREADYの受取待ち表示。ongoingのサブ状態であって
// 独立したバケットにはしない。
func ActionRequired(s OrderStatus) bool {
	return s == OrderStatusReady
}
