// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/Grefendor/drinks/internal/api"
	"github.com/Grefendor/drinks/internal/handler"
	"github.com/Grefendor/drinks/internal/ledger"
	"github.com/Grefendor/drinks/internal/service"

	"github.com/labstack/echo/v4"
)

// TokenTTL 存取令牌有效期間
const TokenTTL = 12 * time.Hour

var (
	issueAccessToken = service.IssueAccessToken
	timeNow          = time.Now
)

// LoginHandler 使用 PIN 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 PIN 進行驗證，回傳存取令牌與到期時間；失敗次數過多時回傳 429
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       pin formData string true "使用者 PIN"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     429 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(svc ledger.Service, limiter *service.AttemptLimiter) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := handler.AuthenticatePin(c, svc, limiter, req.Pin)
		if errors.Is(err, ledger.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}
		if err != nil {
			return handler.LedgerError(c, err)
		}

		expiresAt := timeNow().Add(TokenTTL)
		token, err := issueAccessToken(user, TokenTTL)
		if err != nil {
			c.Logger().Errorf("issue token: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresAt:   expiresAt,
			User:        api.NewUserResponse(user),
		})
	}
}
