// File: internal/handler/products/products.go
package products

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Grefendor/drinks/internal/api"
	"github.com/Grefendor/drinks/internal/handler"
	"github.com/Grefendor/drinks/internal/ledger"
	"github.com/Grefendor/drinks/internal/lookup"

	"github.com/labstack/echo/v4"
)

// Lookuper 依條碼查詢商品名稱
type Lookuper interface {
	ProductName(ctx context.Context, barcode string) (string, error)
}

// @Summary     List inventory
// @Description 依名稱排序回傳所有商品與庫存
// @Tags        products
// @Produce     json
// @Success     200 {array}  api.ProductResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /products [get]
func ListProductsHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := svc.Inventory(c.Request().Context())
		if err != nil {
			return handler.LedgerError(c, err)
		}
		out := make([]api.ProductResponse, 0, len(list))
		for _, p := range list {
			out = append(out, api.NewProductResponse(p))
		}
		return c.JSON(http.StatusOK, out)
	}
}

// @Summary     Get product
// @Tags        products
// @Produce     json
// @Param       barcode path string true "條碼"
// @Success     200 {object} api.ProductResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /products/{barcode} [get]
func GetProductHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := svc.GetProduct(c.Request().Context(), c.Param("barcode"))
		if err != nil {
			return handler.LedgerError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewProductResponse(p))
	}
}

// @Summary     Create product
// @Tags        products
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       barcode formData string  true  "條碼"
// @Param       name    formData string  true  "名稱"
// @Param       count   formData integer false "初始庫存"
// @Param       price   formData string  false "單價"
// @Success     201 {object} api.ProductResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /products [post]
func CreateProductHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		price, err := api.ParsePrice(req.Price)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid price"})
		}

		p, err := svc.CreateProduct(c.Request().Context(), req.Barcode, req.Name, req.Count, price)
		if err != nil {
			return handler.LedgerError(c, err)
		}
		return c.JSON(http.StatusCreated, api.NewProductResponse(p))
	}
}

// @Summary     Update product name and price
// @Tags        products
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       barcode path     string true  "條碼"
// @Param       name    formData string true  "名稱"
// @Param       price   formData string false "單價，空白代表清除"
// @Success     200 {object} api.ProductResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /products/{barcode} [put]
func UpdateProductHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		price, err := api.ParsePrice(req.Price)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid price"})
		}

		ctx := c.Request().Context()
		barcode := c.Param("barcode")
		if err := svc.UpdateProduct(ctx, barcode, req.Name, price); err != nil {
			return handler.LedgerError(c, err)
		}
		p, err := svc.GetProduct(ctx, barcode)
		if err != nil {
			return handler.LedgerError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewProductResponse(p))
	}
}

// UpdateCountHandler 盤點：直接設定庫存數量
// @Summary     Set stock count
// @Tags        products
// @Accept      application/x-www-form-urlencoded
// @Param       barcode path     string  true "條碼"
// @Param       count   formData integer true "新庫存"
// @Success     204
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /products/{barcode}/count [put]
func UpdateCountHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateCountRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		count, err := strconv.Atoi(req.Count)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid count"})
		}

		if err := svc.UpdateProductCount(c.Request().Context(), c.Param("barcode"), count); err != nil {
			return handler.LedgerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Delete product
// @Description 刪除商品，交易紀錄保留
// @Tags        products
// @Param       barcode path string true "條碼"
// @Success     204
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /products/{barcode} [delete]
func DeleteProductHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := svc.DeleteProduct(c.Request().Context(), c.Param("barcode")); err != nil {
			return handler.LedgerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// LookupHandler 以 OpenFoodFacts 查詢條碼對應的商品名稱，供建立商品時預填
// @Summary     Barcode lookup
// @Tags        products
// @Produce     json
// @Param       barcode path string true "條碼"
// @Success     200 {object} api.LookupResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     502 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /products/lookup/{barcode} [get]
func LookupHandler(l Lookuper) echo.HandlerFunc {
	return func(c echo.Context) error {
		barcode := c.Param("barcode")
		name, err := l.ProductName(c.Request().Context(), barcode)
		if errors.Is(err, lookup.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "no product data for barcode"})
		}
		if err != nil {
			c.Logger().Warnf("barcode lookup %s: %v", barcode, err)
			return c.JSON(http.StatusBadGateway, api.ErrorResponse{Message: "lookup failed"})
		}
		return c.JSON(http.StatusOK, api.LookupResponse{Barcode: barcode, Name: name})
	}
}
