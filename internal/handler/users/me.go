package users

import (
	"net/http"

	"github.com/Grefendor/drinks/internal/api"
	"github.com/Grefendor/drinks/internal/handler"
	"github.com/Grefendor/drinks/internal/ledger"
	"github.com/Grefendor/drinks/internal/middleware"

	"github.com/labstack/echo/v4"
)

// @Summary     Get current user
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMeHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := svc.GetUser(c.Request().Context(), middleware.CurrentUser(c).UserID)
		if err != nil {
			return handler.LedgerError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// @Summary     Change my PIN
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Param       pin formData string true "新 PIN"
// @Success     204
// @Failure     409 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me/pin [patch]
func UpdateMyPinHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdatePinRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if err := svc.UpdatePinByID(c.Request().Context(), middleware.CurrentUser(c).UserID, req.Pin); err != nil {
			return handler.LedgerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// MySummaryHandler 目前使用者各商品的消費數量
// @Summary     My consumption summary
// @Tags        users
// @Produce     json
// @Success     200 {object} api.SummaryResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me/summary [get]
func MySummaryHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := middleware.CurrentUser(c).UserID
		rows, err := svc.UserSummary(c.Request().Context(), userID)
		if err != nil {
			return handler.LedgerError(c, err)
		}
		resp := api.SummaryResponse{UserID: userID, Items: make([]api.SummaryRow, 0, len(rows))}
		for _, r := range rows {
			resp.Items = append(resp.Items, api.SummaryRow{
				ProductID:   r.ProductID,
				ProductName: r.ProductName,
				Count:       r.Count,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
