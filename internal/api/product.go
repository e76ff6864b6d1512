package api

import (
	"time"

	"github.com/Grefendor/drinks/internal/model"
	"github.com/shopspring/decimal"
)

// swagger:model api.CreateProductRequest
type CreateProductRequest struct {
	Barcode string `form:"barcode" json:"barcode" validate:"required,max=64" example:"4029764001807"`
	Name    string `form:"name" json:"name" validate:"required" example:"Club-Mate"`
	Count   int    `form:"count" json:"count" validate:"gte=0" example:"24"`
	Price   string `form:"price" json:"price" validate:"omitempty,numeric" example:"1.50"`
}

// swagger:model api.UpdateProductRequest
type UpdateProductRequest struct {
	Name  string `form:"name" json:"name" validate:"required" example:"Club-Mate 0.5l"`
	Price string `form:"price" json:"price" validate:"omitempty,numeric" example:"1.60"`
}

// swagger:model api.UpdateCountRequest
type UpdateCountRequest struct {
	Count string `form:"count" json:"count" validate:"required,numeric" example:"48"`
}

// ParsePrice 空字串代表未設定價格
func ParsePrice(s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

// swagger:model api.ProductResponse
type ProductResponse struct {
	ID        int                 `json:"id" example:"3"`
	Barcode   string              `json:"barcode" example:"4029764001807"`
	Name      string              `json:"name" example:"Club-Mate"`
	Count     int                 `json:"count" example:"24"`
	Price     decimal.NullDecimal `json:"price" swaggertype:"string" example:"1.50"`
	CreatedAt time.Time           `json:"created_at"`
}

func NewProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Barcode:   p.Barcode,
		Name:      p.Name,
		Count:     p.Count,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
	}
}

// swagger:model api.LookupResponse
type LookupResponse struct {
	Barcode string `json:"barcode" example:"4029764001807"`
	Name    string `json:"name" example:"Club-Mate"`
}
