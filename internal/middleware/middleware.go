package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Grefendor/drinks/internal/ledger"
	"github.com/Grefendor/drinks/internal/model"
	"github.com/Grefendor/drinks/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// UserGetter 讀取 token 所屬使用者的目前狀態
type UserGetter interface {
	GetUser(ctx context.Context, userID int) (model.User, error)
}

// Auth 驗證 JWT 後以帳本現況覆寫 claims：
// 已刪除的使用者即使 token 未過期也回 401，admin 權限變更立即生效
type Auth struct {
	users UserGetter
}

// NewAuth users 為 nil 時只信任 token 內容
func NewAuth(users UserGetter) *Auth {
	return &Auth{users: users}
}

// CurrentUser 回傳 RequireAuth 存入的 claims；未經驗證時回傳 nil
func CurrentUser(c echo.Context) *service.CustomClaims {
	claims, _ := c.Get(ContextUserKey).(*service.CustomClaims)
	return claims
}

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, unauthorized(c, "missing token")
	}
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return nil, unauthorized(c, "invalid authorization header format")
	}
	claims, err := service.VerifyAccessToken(token)
	if err != nil {
		return nil, unauthorized(c, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

func unauthorized(c echo.Context, msg string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Bearer realm="drinks"`)
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}

func (a *Auth) refresh(c echo.Context, claims *service.CustomClaims) error {
	if a.users == nil {
		return nil
	}
	u, err := a.users.GetUser(c.Request().Context(), claims.UserID)
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		return unauthorized(c, "user no longer exists")
	case err != nil:
		c.Logger().Errorf("auth: reload user %d: %v", claims.UserID, err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "user lookup failed")
	}
	claims.Name = u.Name
	claims.IsAdmin = u.IsAdmin
	return nil
}

func (a *Auth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if err != nil {
			return err
		}
		if err := a.refresh(c, claims); err != nil {
			return err
		}
		c.Set(ContextUserKey, claims)
		return next(c)
	}
}

func (a *Auth) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return a.RequireAuth(func(c echo.Context) error {
		claims := CurrentUser(c)
		if claims == nil || !claims.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
		}
		return next(c)
	})
}
