// File: internal/handler/purchases/purchase.go
package purchases

import (
	"net/http"
	"strconv"

	"github.com/Grefendor/drinks/internal/api"
	"github.com/Grefendor/drinks/internal/handler"
	"github.com/Grefendor/drinks/internal/ledger"
	"github.com/Grefendor/drinks/internal/middleware"
	"github.com/Grefendor/drinks/internal/model"

	"github.com/labstack/echo/v4"
)

// PurchaseHandler 為目前登入的使用者記錄消費並扣庫存
// @Summary     Record a purchase
// @Description 扣除庫存並寫入每單位一筆交易紀錄；quantity 省略時為 1
// @Tags        purchases
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       barcode  formData string  true  "條碼"
// @Param       quantity formData integer false "數量"
// @Success     201 {object} api.PurchaseResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /purchases [post]
func PurchaseHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.PurchaseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		qty := req.QuantityOrDefault()

		claims := middleware.CurrentUser(c)
		if err := svc.RecordTransaction(c.Request().Context(), claims.UserID, req.Barcode, qty); err != nil {
			return handler.LedgerError(c, err)
		}
		return c.JSON(http.StatusCreated, api.PurchaseResponse{Barcode: req.Barcode, Quantity: qty})
	}
}

// HistoryHandler 回傳目前使用者最近的交易紀錄
// @Summary     Purchase history
// @Tags        purchases
// @Produce     json
// @Param       limit query integer false "筆數 (預設 20)"
// @Success     200 {array}  model.Transaction
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /purchases [get]
func HistoryHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := 0
		if v := c.QueryParam("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid limit"})
			}
			limit = n
		}

		claims := middleware.CurrentUser(c)
		list, err := svc.History(c.Request().Context(), claims.UserID, limit)
		if err != nil {
			return handler.LedgerError(c, err)
		}
		if list == nil {
			list = []model.Transaction{}
		}
		return c.JSON(http.StatusOK, list)
	}
}
