package main

import (
	"io"

	"github.com/Grefendor/drinks/internal/model"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func money(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return d.Decimal.StringFixed(2)
}

func writeInventory(w io.Writer, products []model.Product) {
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Barcode", "Name", "Stock", "Price"})
	total := 0
	for _, p := range products {
		t.AppendRow(table.Row{p.ID, p.Barcode, p.Name, p.Count, money(p.Price)})
		total += p.Count
	}
	t.AppendFooter(table.Row{"", "", "Total", total, ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	t.Render()
}

func writeUsers(w io.Writer, users []model.User) {
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Name", "Role"})
	for _, u := range users {
		role := "user"
		if u.IsAdmin {
			role = "admin"
		}
		t.AppendRow(table.Row{u.ID, u.Name, role})
	}
	t.Render()
}

// writeConsumption 總計只加總有價格的列
func writeConsumption(w io.Writer, rows []model.ReportRow) {
	t := newTable(w)
	t.AppendHeader(table.Row{"User", "Product", "Count", "Price", "Cost"})
	units := 0
	total := decimal.Zero
	for _, r := range rows {
		t.AppendRow(table.Row{r.UserName, r.ProductName, r.Count, money(r.Price), money(r.Cost)})
		units += r.Count
		if r.Cost.Valid {
			total = total.Add(r.Cost.Decimal)
		}
	}
	t.AppendFooter(table.Row{"", "Total", units, "", total.StringFixed(2)})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	t.Render()
}
