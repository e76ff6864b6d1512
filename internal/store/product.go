package store

import (
	"context"
	"fmt"

	"github.com/Grefendor/drinks/internal/database"
	"github.com/Grefendor/drinks/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const productColumns = `id, barcode, name, count, price, created_at`

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(
		&p.ID,
		&p.Barcode,
		&p.Name,
		&p.Count,
		&p.Price,
		&p.CreatedAt,
	)
}

func CreateProduct(ctx context.Context, q database.Querier, p *model.Product) (*model.Product, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO products (barcode, name, count, price)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		p.Barcode,
		p.Name,
		p.Count,
		p.Price,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", err)
	}
	return p, nil
}

func GetProductByBarcode(ctx context.Context, q database.Querier, barcode string) (*model.Product, error) {
	p := &model.Product{}
	row := q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE barcode = $1`, barcode)
	if err := scanProduct(row, p); err != nil {
		return nil, fmt.Errorf("GetProductByBarcode: %w", err)
	}
	return p, nil
}

// LockProductByBarcode 以 FOR UPDATE 取得商品列，鎖到交易結束
func LockProductByBarcode(ctx context.Context, q database.Querier, barcode string) (*model.Product, error) {
	p := &model.Product{}
	row := q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE barcode = $1 FOR UPDATE`, barcode)
	if err := scanProduct(row, p); err != nil {
		return nil, fmt.Errorf("LockProductByBarcode: %w", err)
	}
	return p, nil
}

// ListProducts 依名稱排序的完整庫存快照
func ListProducts(ctx context.Context, q database.Querier) ([]model.Product, error) {
	rows, err := q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	defer rows.Close()

	var list []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("ListProducts: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	return list, nil
}

// SetProductCount 直接設定庫存 (非增減)，回傳是否有符合的 barcode
func SetProductCount(ctx context.Context, q database.Querier, barcode string, count int) (bool, error) {
	tag, err := q.Exec(ctx,
		`UPDATE products SET count = $1 WHERE barcode = $2`,
		count,
		barcode,
	)
	if err != nil {
		return false, fmt.Errorf("SetProductCount: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func UpdateProductDetails(ctx context.Context, q database.Querier, barcode, name string, price decimal.NullDecimal) (bool, error) {
	tag, err := q.Exec(ctx,
		`UPDATE products SET name = $1, price = $2 WHERE barcode = $3`,
		name,
		price,
		barcode,
	)
	if err != nil {
		return false, fmt.Errorf("UpdateProductDetails: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func DeleteProduct(ctx context.Context, q database.Querier, barcode string) (bool, error) {
	tag, err := q.Exec(ctx, `DELETE FROM products WHERE barcode = $1`, barcode)
	if err != nil {
		return false, fmt.Errorf("DeleteProduct: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func DecrementProductCount(ctx context.Context, q database.Querier, productID, quantity int) error {
	_, err := q.Exec(ctx,
		`UPDATE products SET count = count - $1 WHERE id = $2`,
		quantity,
		productID,
	)
	if err != nil {
		return fmt.Errorf("DecrementProductCount: %w", err)
	}
	return nil
}
