package tui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"canteen/internal/domain/model"
	"canteen/internal/usecase"
)

// RenderQueue はスタッフの注文キュー画面。
func RenderQueue(w io.Writer, q usecase.OrderQueue) {
	fmt.Fprintf(w, "Pending (%d) | In kitchen (%d) | Completed (%d)\n",
		len(q.Pending), len(q.InKitchen), len(q.Completed))

	renderQueueSection(w, "PENDING", q.Pending)
	renderQueueSection(w, "IN KITCHEN", q.InKitchen)
	renderQueueSection(w, "COMPLETED", q.Completed)

	if len(q.Unknown) > 0 {
		fmt.Fprintf(w, "\n!! %d order(s) with unrecognized status:\n", len(q.Unknown))
		for _, o := range q.Unknown {
			fmt.Fprintf(w, "  order %d: %q\n", o.OrderID, o.Status)
		}
	}
}

func renderQueueSection(w io.Writer, title string, orders []model.Order) {
	if len(orders) == 0 {
		return
	}
	fmt.Fprintf(w, "\n== %s ==\n", title)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tCUSTOMER\tSTATUS\tTOTAL\tNEXT")
	for _, o := range orders {
		st := o.CanonicalStatus()

		name := "-"
		if o.User != nil {
			name = o.User.FullName
		}

		nexts := model.NextStatuses(st)
		labels := make([]string, 0, len(nexts))
		for _, n := range nexts {
			labels = append(labels, string(n))
		}
		next := strings.Join(labels, "/")
		if next == "" {
			next = "-"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			usecase.OrderNumber(o.OrderID), name, string(st), money(o.TotalPrice.Float()), next)
	}
	tw.Flush()
}
