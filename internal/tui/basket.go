package tui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"canteen/internal/usecase"
)

// RenderBasket はカート画面。明細・小計・合計・バッジ数。
func RenderBasket(w io.Writer, s usecase.CartSummary) {
	if len(s.Lines) == 0 {
		fmt.Fprintln(w, "Your basket is empty")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tQTY\tNOTE\tADDON\tSUBTOTAL")
	for _, line := range s.Lines {
		addon := "-"
		if line.Key.AddonRice {
			addon = "+rice"
		}
		note := line.Key.Note
		if note == "" {
			note = "-"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
			line.MenuItem.Name, line.Quantity, note, addon, money(usecase.LineTotal(line)))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nItems: %d\tTotal: %s\n", s.ItemCount, money(s.Total))
}
