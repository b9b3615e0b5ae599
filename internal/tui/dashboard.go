package tui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"canteen/internal/domain/model"
	"canteen/internal/usecase"
)

// RenderDashboard は管理ダッシュボード。
func RenderDashboard(w io.Writer, s usecase.DashboardStats) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "New orders\t%d\n", s.NewOrders)
	fmt.Fprintf(tw, "Preparing\t%d\n", s.Preparing)
	fmt.Fprintf(tw, "Ready\t%d\n", s.Ready)
	fmt.Fprintf(tw, "Completed\t%d\n", s.Completed)
	fmt.Fprintf(tw, "Cancelled\t%d\n", s.Cancelled)
	fmt.Fprintf(tw, "Total sales\t%s\n", money(s.TotalSales))
	tw.Flush()
}

// RenderInventory は在庫画面。
func RenderInventory(w io.Writer, inv []model.Inventory) {
	if len(inv) == 0 {
		fmt.Fprintln(w, "No inventory records.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tSTOCK\tTHRESHOLD\tSTATUS")
	for _, v := range inv {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", v.ItemName, v.CurrentStock, v.ThresholdLevel, v.Status)
	}
	tw.Flush()
}
