package tui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"canteen/internal/domain/model"
)

// RenderMenu はメニュー一覧画面。
func RenderMenu(w io.Writer, items []model.MenuItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No menu items.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tAVAILABLE")
	for _, it := range items {
		avail := "yes"
		if !it.IsAvailable {
			avail = "no"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", it.ItemID, it.Name, money(it.Price.Float()), avail)
	}
	tw.Flush()
}
