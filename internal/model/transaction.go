// File: internal/model/transaction.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction 一筆消費紀錄，每一單位商品對應一列
type Transaction struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	ProductID int       `db:"product_id" json:"product_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type SummaryRow struct {
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
	Count       int    `json:"count"`
}

// ReportRow 使用者 × 商品 的消費彙總；Price 未設定時 Cost 亦為空
type ReportRow struct {
	UserID      int                 `json:"user_id"`
	UserName    string              `json:"user_name"`
	ProductID   int                 `json:"product_id"`
	ProductName string              `json:"product_name"`
	Count       int                 `json:"count"`
	Price       decimal.NullDecimal `json:"price"`
	Cost        decimal.NullDecimal `json:"cost"`
}
