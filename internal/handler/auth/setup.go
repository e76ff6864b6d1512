package auth

import (
	"net/http"

	"github.com/Grefendor/drinks/internal/api"
	"github.com/Grefendor/drinks/internal/handler"
	"github.com/Grefendor/drinks/internal/ledger"

	"github.com/labstack/echo/v4"
)

// SetupHandler 首次啟動時建立第一位 admin，已有使用者則回傳 409
// @Summary     First-run setup
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name formData string true "Admin 名稱"
// @Param       pin  formData string true "Admin PIN"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /setup [post]
func SetupHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SetupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := svc.CreateInitialAdmin(c.Request().Context(), req.Pin, req.Name)
		if err != nil {
			return handler.LedgerError(c, err)
		}
		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}
