package api

import "github.com/shopspring/decimal"

// PurchaseRequest quantity 省略 (nil) 時為 1；明確給 0 或負數視為錯誤
// swagger:model api.PurchaseRequest
type PurchaseRequest struct {
	Barcode  string `form:"barcode" json:"barcode" validate:"required" example:"4029764001807"`
	Quantity *int   `form:"quantity" json:"quantity" validate:"omitempty,gte=1" example:"2" swaggertype:"integer"`
}

// QuantityOrDefault 回傳請求數量，未提供時為 1
func (r PurchaseRequest) QuantityOrDefault() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// swagger:model api.PurchaseResponse
type PurchaseResponse struct {
	Barcode  string `json:"barcode" example:"4029764001807"`
	Quantity int    `json:"quantity" example:"2"`
}

// swagger:model api.ReportRow
type ReportRow struct {
	UserID      int                 `json:"user_id" example:"1"`
	UserName    string              `json:"user_name" example:"Alice"`
	ProductID   int                 `json:"product_id" example:"3"`
	ProductName string              `json:"product_name" example:"Club-Mate"`
	Count       int                 `json:"count" example:"12"`
	Price       decimal.NullDecimal `json:"price" swaggertype:"string" example:"1.50"`
	Cost        decimal.NullDecimal `json:"cost" swaggertype:"string" example:"18.00"`
}
