package usecase

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"canteen/internal/domain/model"
	"canteen/internal/poller"
	repo "canteen/internal/repository"
)

// LineKey は明細の署名。同一署名への追加は数量加算で静かにマージする。
// noteかaddonが違えば別明細。
type LineKey struct {
	ItemID    int64
	Note      string
	AddonRice bool
}

// CartLine はカートの作業用明細。cartItemIDはサーバ採番（ローカルのみは0）。
type CartLine struct {
	CartItemID int64
	Key        LineKey
	MenuItem   model.MenuItem
	Quantity   int64
}

// カートの表示用スナップショット。
type CartSummary struct {
	Lines     []CartLine
	Total     float64
	ItemCount int64
}

// CartUsecase はカート集約エンジン。明細の作業集合を唯一の窓口として持ち、
// 数量・合計の不変条件をここで守る（グローバル可変ストアの置き換え）。
// cartRepoがnilならローカルのみで動く（未ログイン・テスト用）。
// UIイベントループ前提の単一実行文脈で使う。
type CartUsecase struct {
	cartRepo  repo.CartRepository
	orderRepo repo.OrderRepository
	seq       *poller.Sequencer
	log       *logrus.Logger

	lines []CartLine // 追加順を保持
}

// DI
func NewCartUsecase(cartRepo repo.CartRepository, orderRepo repo.OrderRepository, log *logrus.Logger) *CartUsecase {
	return &CartUsecase{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		seq:       poller.NewSequencer(),
		log:       log,
	}
}

// AddLine は明細追加。同一署名があれば数量加算、無ければ末尾に追加。
// リモート時はサーバ応答のカートが正。失敗時はローカル状態を変えない。
func (u *CartUsecase) AddLine(ctx context.Context, userID int64, item model.MenuItem, quantity int64, note string, addonRice bool) (CartSummary, error) {
	if quantity < 1 {
		return u.Summary(), NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	key := LineKey{ItemID: item.ItemID, Note: note, AddonRice: addonRice}

	if u.cartRepo != nil {
		token := u.seq.Next()
		cart, err := u.cartRepo.AddItem(ctx, userID, item.ItemID, quantity, note)
		if err != nil {
			return u.Summary(), mapRepoError(err)
		}
		if u.seq.Latest(token) {
			u.reconcile(cart)
		}
		return u.Summary(), nil
	}

	if i := u.indexOf(key); i >= 0 {
		u.lines[i].Quantity += quantity
	} else {
		u.lines = append(u.lines, CartLine{Key: key, MenuItem: item, Quantity: quantity})
	}
	return u.Summary(), nil
}

// SetQuantity は数量の置き換え。0以下なら明細ごと削除。
// 署名に合う明細が無ければ何もしない。
func (u *CartUsecase) SetQuantity(ctx context.Context, key LineKey, quantity int64) (CartSummary, error) {
	i := u.indexOf(key)
	if i < 0 {
		return u.Summary(), nil
	}
	if quantity <= 0 {
		return u.RemoveLine(ctx, key)
	}

	if u.cartRepo != nil && u.lines[i].CartItemID > 0 {
		token := u.seq.Next()
		cart, err := u.cartRepo.UpdateItemQuantity(ctx, u.lines[i].CartItemID, quantity)
		if err != nil {
			return u.Summary(), mapRepoError(err)
		}
		if u.seq.Latest(token) {
			u.reconcile(cart)
		}
		return u.Summary(), nil
	}

	u.lines[i].Quantity = quantity
	return u.Summary(), nil
}

// RemoveLine は明細削除。無ければ何もしない（冪等）。
func (u *CartUsecase) RemoveLine(ctx context.Context, key LineKey) (CartSummary, error) {
	i := u.indexOf(key)
	if i < 0 {
		return u.Summary(), nil
	}

	if u.cartRepo != nil && u.lines[i].CartItemID > 0 {
		token := u.seq.Next()
		if err := u.cartRepo.RemoveItem(ctx, u.lines[i].CartItemID); err != nil {
			return u.Summary(), mapRepoError(err)
		}
		if !u.seq.Latest(token) {
			return u.Summary(), nil
		}
	}

	u.lines = append(u.lines[:i], u.lines[i+1:]...)
	return u.Summary(), nil
}

// Refresh はサーバ側カートで作業集合を全置換する。
func (u *CartUsecase) Refresh(ctx context.Context, userID int64) (CartSummary, error) {
	if u.cartRepo == nil {
		return u.Summary(), nil
	}
	token := u.seq.Next()
	cart, err := u.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return u.Summary(), mapRepoError(err)
	}
	if u.seq.Latest(token) {
		u.reconcile(cart)
	}
	return u.Summary(), nil
}

// Checkout はカート内容から注文を作る。空カートはネットワークを呼ぶ前に拒否。
func (u *CartUsecase) Checkout(ctx context.Context, userID int64, paymentMethod string) (model.Order, error) {
	if len(u.lines) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}
	if paymentMethod == "" {
		paymentMethod = "Cash"
	}

	order, err := u.orderRepo.CreateFromCart(ctx, userID, paymentMethod)
	if err != nil {
		return model.Order{}, mapRepoError(err)
	}

	u.lines = nil
	u.log.WithFields(logrus.Fields{
		"order_id": order.OrderID,
		"user_id":  userID,
		"total":    order.TotalPrice.Float(),
	}).Info("order placed")
	return order, nil
}

// LineTotal は明細小計。単価×数量、ライス追加分は1個あたり加算。
func LineTotal(line CartLine) float64 {
	unit := line.MenuItem.Price.Float()
	if line.Key.AddonRice {
		unit += model.RiceAddonPrice
	}
	return unit * float64(line.Quantity)
}

// CartTotal はカート合計。
func (u *CartUsecase) CartTotal() float64 {
	var total float64
	for _, line := range u.lines {
		total += LineTotal(line)
	}
	return total
}

// ItemCount はバッジ表示用の総数量。
func (u *CartUsecase) ItemCount() int64 {
	var count int64
	for _, line := range u.lines {
		count += line.Quantity
	}
	return count
}

func (u *CartUsecase) Lines() []CartLine {
	out := make([]CartLine, len(u.lines))
	copy(out, u.lines)
	return out
}

func (u *CartUsecase) Summary() CartSummary {
	return CartSummary{
		Lines:     u.Lines(),
		Total:     u.CartTotal(),
		ItemCount: u.ItemCount(),
	}
}

func (u *CartUsecase) indexOf(key LineKey) int {
	for i, line := range u.lines {
		if line.Key == key {
			return i
		}
	}
	return -1
}

// reconcile はサーバ応答での全置換。マージはしない。
// addonRiceはクライアント側の価格ポリシーなので、(itemID, note)が一致する
// 既存明細からだけ引き継ぐ。
func (u *CartUsecase) reconcile(cart model.Cart) {
	addons := make(map[LineKey]bool, len(u.lines))
	for _, line := range u.lines {
		if line.Key.AddonRice {
			addons[LineKey{ItemID: line.Key.ItemID, Note: line.Key.Note}] = true
		}
	}

	next := make([]CartLine, 0, len(cart.CartItems))
	for _, it := range cart.CartItems {
		if it.Quantity < 1 {
			continue
		}
		addon := it.AddonRice || addons[LineKey{ItemID: it.ItemID, Note: it.Note}]
		line := CartLine{
			CartItemID: it.CartItemID,
			Key:        LineKey{ItemID: it.ItemID, Note: it.Note, AddonRice: addon},
			Quantity:   it.Quantity,
		}
		if it.MenuItem != nil {
			line.MenuItem = *it.MenuItem
		} else {
			line.MenuItem = model.MenuItem{ItemID: it.ItemID}
		}
		next = append(next, line)
	}
	u.lines = next
}
