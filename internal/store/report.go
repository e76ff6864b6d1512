package store

import (
	"context"
	"fmt"

	"github.com/Grefendor/drinks/internal/database"
	"github.com/Grefendor/drinks/internal/model"
)

// UserSummary 以商品分組統計使用者消費筆數；已刪除商品的紀錄不列入
func UserSummary(ctx context.Context, q database.Querier, userID int) ([]model.SummaryRow, error) {
	rows, err := q.Query(ctx,
		`SELECT p.id, p.name, count(t.id)
		 FROM transactions t
		 JOIN products p ON p.id = t.product_id
		 WHERE t.user_id = $1
		 GROUP BY p.id, p.name
		 ORDER BY p.name, p.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("UserSummary: %w", err)
	}
	defer rows.Close()

	var list []model.SummaryRow
	for rows.Next() {
		var r model.SummaryRow
		if err := rows.Scan(&r.ProductID, &r.ProductName, &r.Count); err != nil {
			return nil, fmt.Errorf("UserSummary: %w", err)
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("UserSummary: %w", err)
	}
	return list, nil
}

// ConsumptionReport 使用者 × 商品 消費筆數，依使用者名稱、商品名稱排序；
// 任一端已刪除的紀錄不列入。Cost 由呼叫端計算。
func ConsumptionReport(ctx context.Context, q database.Querier) ([]model.ReportRow, error) {
	rows, err := q.Query(ctx,
		`SELECT u.id, u.name, p.id, p.name, count(t.id), p.price
		 FROM transactions t
		 JOIN users u    ON u.id = t.user_id
		 JOIN products p ON p.id = t.product_id
		 GROUP BY u.id, u.name, p.id, p.name, p.price
		 ORDER BY u.name, p.name, u.id, p.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ConsumptionReport: %w", err)
	}
	defer rows.Close()

	var list []model.ReportRow
	for rows.Next() {
		var r model.ReportRow
		if err := rows.Scan(&r.UserID, &r.UserName, &r.ProductID, &r.ProductName, &r.Count, &r.Price); err != nil {
			return nil, fmt.Errorf("ConsumptionReport: %w", err)
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ConsumptionReport: %w", err)
	}
	return list, nil
}
