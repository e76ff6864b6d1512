package ledger

import (
	"context"

	"github.com/Grefendor/drinks/internal/model"
	"github.com/shopspring/decimal"
)

// UserSummary 使用者各商品的消費數量，已刪除商品不列出
func (l *Ledger) UserSummary(ctx context.Context, userID int) ([]model.SummaryRow, error) {
	rows, err := userSummary(ctx, l.db, userID)
	if err != nil {
		return nil, classify("UserSummary", err)
	}
	return rows, nil
}

// ConsumptionReport 每位使用者每項商品的消費數量與金額
func (l *Ledger) ConsumptionReport(ctx context.Context) ([]model.ReportRow, error) {
	rows, err := consumptionReport(ctx, l.db)
	if err != nil {
		return nil, classify("ConsumptionReport", err)
	}
	for i := range rows {
		rows[i].Cost = cost(rows[i].Price, rows[i].Count)
	}
	return rows, nil
}

func cost(price decimal.NullDecimal, count int) decimal.NullDecimal {
	if !price.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(price.Decimal.Mul(decimal.NewFromInt(int64(count))))
}
