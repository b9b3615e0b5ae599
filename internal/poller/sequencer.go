package poller

import "sync/atomic"

// Sequencer は変異リクエストに単調増加のトークンを振る。
// 応答を適用してよいのは、その要求以降に新しい変異が発行されて
// いないときだけ。追い越して戻ってきた古い応答は握りつぶす。
type Sequencer struct {
	issued atomic.Uint64
}

func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Next は新しい変異の発行。返ったトークンを応答の適用判定に使う。
func (s *Sequencer) Next() uint64 {
	return s.issued.Add(1)
}

// Latest はtokenが最新の発行かどうか。falseなら応答は捨てる。
func (s *Sequencer) Latest(token uint64) bool {
	return s.issued.Load() == token
}
