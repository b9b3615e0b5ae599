package tui

import (
	"fmt"
	"io"

	"canteen/internal/usecase"
)

// RenderNotifications は通知画面。日ごとの束を新しい順に出す。
func RenderNotifications(w io.Writer, groups []usecase.NotificationGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No notifications.")
		return
	}

	for _, g := range groups {
		fmt.Fprintf(w, "%s\n", g.Label)
		for _, n := range g.Items {
			mark := " "
			if !n.IsRead {
				mark = "*"
			}
			fmt.Fprintf(w, "  %s [%s] %s\n", mark, n.Timestamp.Local().Format("15:04"), n.Message)
		}
	}
}
