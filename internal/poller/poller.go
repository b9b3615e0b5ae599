package poller

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Poller は一定間隔でfnを回す。所有する画面のctxに寿命を縛り、
// キャンセル後は一切fnを呼ばない（破棄済み画面への更新を防ぐ）。
type Poller struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
	log      *logrus.Logger
}

func New(name string, interval time.Duration, log *logrus.Logger, fn func(ctx context.Context) error) *Poller {
	return &Poller{
		name:     name,
		interval: interval,
		fn:       fn,
		log:      log,
	}
}

// Run はctxが切れるまでブロックする。初回は即時に1回実行。
// fnのエラーはログに出して続行する（1回の失敗で止めない）。
func (p *Poller) Run(ctx context.Context) {
	p.tick(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.WithField("poller", p.name).Debug("poller stopped")
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := p.fn(ctx); err != nil {
		// キャンセル起因のエラーは通常経路。警告にしない
		if ctx.Err() != nil {
			return
		}
		p.log.WithField("poller", p.name).WithError(err).Warn("poll failed")
	}
}
