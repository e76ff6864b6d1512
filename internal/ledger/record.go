package ledger

import (
	"context"
	"errors"

	"github.com/Grefendor/drinks/internal/database"
	"github.com/Grefendor/drinks/internal/model"
	"github.com/jackc/pgx/v5"
)

// RecordTransaction 扣庫存並寫入 quantity 筆交易紀錄，兩者在同一交易內完成。
// 檢查順序：條碼、數量、使用者、庫存。
func (l *Ledger) RecordTransaction(ctx context.Context, userID int, barcode string, quantity int) error {
	err := l.tx(ctx, func(q database.Querier) error {
		p, err := lockProductByBarcode(ctx, q, barcode)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUnknownBarcode
		}
		if err != nil {
			return err
		}
		if quantity <= 0 {
			return ErrInvalidQuantity
		}
		exists, err := lockUserShare(ctx, q, userID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		if p.Count < quantity {
			return ErrInsufficientStock
		}

		if _, err := insertTransactions(ctx, q, userID, p.ID, quantity); err != nil {
			return err
		}
		return decrementProduct(ctx, q, p.ID, quantity)
	})
	return classify("RecordTransaction", err)
}

// History 回傳使用者最近的交易紀錄 (新到舊)
func (l *Ledger) History(ctx context.Context, userID, limit int) ([]model.Transaction, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	list, err := listTransactions(ctx, l.db, userID, limit)
	if err != nil {
		return nil, classify("History", err)
	}
	return list, nil
}
