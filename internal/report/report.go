// File: internal/report/report.go
package report

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Grefendor/drinks/internal/ledger"
	"github.com/Grefendor/drinks/internal/model"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// Data 為報表內容，由 Collect 自帳本取得
type Data struct {
	Generated   time.Time
	Consumption []model.ReportRow
	Inventory   []model.Product
	Users       []model.User
}

// Collect 讀取消費、庫存、使用者三份資料
func Collect(ctx context.Context, svc ledger.Service) (Data, error) {
	consumption, err := svc.ConsumptionReport(ctx)
	if err != nil {
		return Data{}, err
	}
	inventory, err := svc.Inventory(ctx)
	if err != nil {
		return Data{}, err
	}
	users, err := svc.ListUsers(ctx)
	if err != nil {
		return Data{}, err
	}
	return Data{
		Generated:   timeNow(),
		Consumption: consumption,
		Inventory:   inventory,
		Users:       users,
	}, nil
}

var timeNow = time.Now

type column struct {
	title string
	width float64
	align string
}

// Render 輸出 A4 PDF
func Render(w io.Writer, d Data) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Drinks report", true)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Drinks report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated "+d.Generated.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	consumption := make([][]string, 0, len(d.Consumption))
	total := decimal.Zero
	for _, r := range d.Consumption {
		consumption = append(consumption, []string{
			tr(r.UserName), tr(r.ProductName), strconv.Itoa(r.Count), money(r.Price), money(r.Cost),
		})
		if r.Cost.Valid {
			total = total.Add(r.Cost.Decimal)
		}
	}
	table(pdf, tr("Consumption"), []column{
		{"User", 45, "L"}, {"Product", 60, "L"}, {"Count", 20, "R"}, {"Price", 25, "R"}, {"Cost", 30, "R"},
	}, consumption)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(150, 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, total.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.Ln(6)

	inventory := make([][]string, 0, len(d.Inventory))
	for _, p := range d.Inventory {
		inventory = append(inventory, []string{tr(p.Barcode), tr(p.Name), strconv.Itoa(p.Count), money(p.Price)})
	}
	table(pdf, "Inventory", []column{
		{"Barcode", 45, "L"}, {"Name", 85, "L"}, {"Count", 20, "R"}, {"Price", 30, "R"},
	}, inventory)
	pdf.Ln(6)

	users := make([][]string, 0, len(d.Users))
	for _, u := range d.Users {
		role := "user"
		if u.IsAdmin {
			role = "admin"
		}
		users = append(users, []string{tr(u.Name), role})
	}
	table(pdf, "Users", []column{{"Name", 130, "L"}, {"Role", 50, "L"}}, users)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

func table(pdf *fpdf.Fpdf, title string, cols []column, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")

	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(211, 211, 211)
		for _, c := range cols {
			pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, row := range rows {
		if pdf.GetY()+7 > pageHeight-bottom {
			pdf.AddPage()
			header()
		}
		for i, c := range cols {
			pdf.CellFormat(c.width, 7, row[i], "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(rows) == 0 {
		width := 0.0
		for _, c := range cols {
			width += c.width
		}
		pdf.CellFormat(width, 7, "-", "1", 1, "C", false, 0, "")
	}
}

func money(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return d.Decimal.StringFixed(2)
}
