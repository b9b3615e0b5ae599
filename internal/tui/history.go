package tui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"canteen/internal/domain/model"
	"canteen/internal/usecase"
)

// RenderHistory は履歴画面。タブごとのバッジ件数と各タブの注文一覧。
func RenderHistory(w io.Writer, b usecase.OrderBuckets) {
	c := b.Counts()
	fmt.Fprintf(w, "Ongoing (%d) | Completed (%d) | Cancelled (%d)\n",
		c.Ongoing, c.Completed, c.Cancelled)

	renderOrderSection(w, "ONGOING", b.Ongoing)
	renderOrderSection(w, "COMPLETED", b.Completed)
	renderOrderSection(w, "CANCELLED", b.Cancelled)

	// 語彙外のステータスは消さずに見せる
	if len(b.Unknown) > 0 {
		fmt.Fprintf(w, "\n!! %d order(s) with unrecognized status:\n", len(b.Unknown))
		for _, o := range b.Unknown {
			fmt.Fprintf(w, "  order %d: %q\n", o.OrderID, o.Status)
		}
	}
}

func renderOrderSection(w io.Writer, title string, orders []model.Order) {
	if len(orders) == 0 {
		return
	}
	fmt.Fprintf(w, "\n== %s ==\n", title)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tSTATUS\tTOTAL\tPLACED")
	for _, o := range orders {
		st := o.CanonicalStatus()
		marker := string(st)
		if model.ActionRequired(st) {
			marker += " *pickup"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			usecase.OrderNumber(o.OrderID), marker, money(o.TotalPrice.Float()), timestamp(o.OrderTime))
	}
	tw.Flush()
}
