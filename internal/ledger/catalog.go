package ledger

import (
	"context"
	"errors"

	"github.com/Grefendor/drinks/internal/database"
	"github.com/Grefendor/drinks/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const barcodeConstraint = "products_barcode_key"

func validPrice(price decimal.NullDecimal) bool {
	return !price.Valid || !price.Decimal.IsNegative()
}

// CreateProduct 新增商品；條碼重複回傳 ErrDuplicateBarcode
func (l *Ledger) CreateProduct(ctx context.Context, barcode, name string, initialCount int, price decimal.NullDecimal) (model.Product, error) {
	const op = "CreateProduct"
	if barcode == "" || name == "" || !validPrice(price) {
		return model.Product{}, classify(op, ErrInvalidInput)
	}
	if initialCount < 0 {
		return model.Product{}, classify(op, ErrInvalidQuantity)
	}

	var created model.Product
	err := l.tx(ctx, func(q database.Querier) error {
		p, err := createProduct(ctx, q, &model.Product{Barcode: barcode, Name: name, Count: initialCount, Price: price})
		if err != nil {
			if constraint, ok := database.UniqueViolation(err); ok && constraint == barcodeConstraint {
				return ErrDuplicateBarcode
			}
			return err
		}
		created = *p
		return nil
	})
	if err != nil {
		return model.Product{}, classify(op, err)
	}
	return created, nil
}

func (l *Ledger) GetProduct(ctx context.Context, barcode string) (model.Product, error) {
	p, err := getProductByBarcode(ctx, l.db, barcode)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Product{}, classify("GetProduct", ErrUnknownBarcode)
	}
	if err != nil {
		return model.Product{}, classify("GetProduct", err)
	}
	return *p, nil
}

// UpdateProductCount 直接設定庫存 (盤點)，不寫入交易紀錄
func (l *Ledger) UpdateProductCount(ctx context.Context, barcode string, newCount int) error {
	const op = "UpdateProductCount"
	if newCount < 0 {
		return classify(op, ErrInvalidQuantity)
	}
	err := l.tx(ctx, func(q database.Querier) error {
		ok, err := setProductCount(ctx, q, barcode, newCount)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnknownBarcode
		}
		return nil
	})
	return classify(op, err)
}

// UpdateProduct 修改名稱與價格；price 無效值代表清除價格
func (l *Ledger) UpdateProduct(ctx context.Context, barcode, name string, price decimal.NullDecimal) error {
	const op = "UpdateProduct"
	if name == "" || !validPrice(price) {
		return classify(op, ErrInvalidInput)
	}
	err := l.tx(ctx, func(q database.Querier) error {
		ok, err := updateProductDetails(ctx, q, barcode, name, price)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnknownBarcode
		}
		return nil
	})
	return classify(op, err)
}

// DeleteProduct 刪除商品，交易紀錄保留
func (l *Ledger) DeleteProduct(ctx context.Context, barcode string) error {
	err := l.tx(ctx, func(q database.Querier) error {
		ok, err := deleteProduct(ctx, q, barcode)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnknownBarcode
		}
		return nil
	})
	return classify("DeleteProduct", err)
}

// Inventory 依名稱排序回傳所有商品
func (l *Ledger) Inventory(ctx context.Context) ([]model.Product, error) {
	list, err := listProducts(ctx, l.db)
	if err != nil {
		return nil, classify("Inventory", err)
	}
	return list, nil
}
