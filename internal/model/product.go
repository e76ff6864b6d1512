// File: internal/model/product.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product 庫存商品，Barcode 為外部自然鍵
type Product struct {
	ID        int                 `db:"id" json:"id"`
	Barcode   string              `db:"barcode" json:"barcode"`
	Name      string              `db:"name" json:"name"`
	Count     int                 `db:"count" json:"count"`
	Price     decimal.NullDecimal `db:"price" json:"price"`
	CreatedAt time.Time           `db:"created_at" json:"created_at"`
}
