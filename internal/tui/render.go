package tui

import (
	"fmt"
	"time"
)

// 金額表示。原典に合わせて "P 50.00" 形式。
func money(v float64) string {
	return fmt.Sprintf("P %.2f", v)
}

func timestamp(t time.Time) string {
	return t.Local().Format("Jan 2, 2006 15:04")
}
