package store

import (
	"context"
	"fmt"

	"github.com/Grefendor/drinks/internal/database"
	"github.com/Grefendor/drinks/internal/model"
)

// InsertTransactions 一次寫入 quantity 筆紀錄 (每單位一列)，回傳寫入筆數
func InsertTransactions(ctx context.Context, q database.Querier, userID, productID, quantity int) (int64, error) {
	tag, err := q.Exec(ctx,
		`INSERT INTO transactions (user_id, product_id, created_at)
		 SELECT $1::int, $2::int, clock_timestamp()
		 FROM generate_series(1, $3::int)`,
		userID,
		productID,
		quantity,
	)
	if err != nil {
		return 0, fmt.Errorf("InsertTransactions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListTransactionsByUser 回傳使用者最近的 limit 筆紀錄，新到舊。
// 以 id (序列值) 為準的寫入順序；並行寫入時 created_at 可能與 id 順序不一致，
// 只當顯示用，不參與排序
func ListTransactionsByUser(ctx context.Context, q database.Querier, userID, limit int) ([]model.Transaction, error) {
	rows, err := q.Query(ctx,
		`SELECT id, user_id, product_id, created_at
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY id DESC
		 LIMIT $2`,
		userID,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTransactionsByUser: %w", err)
	}
	defer rows.Close()

	var list []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.ProductID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListTransactionsByUser: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTransactionsByUser: %w", err)
	}
	return list, nil
}
