package handler

import (
	"errors"
	"strconv"

	"github.com/Grefendor/drinks/internal/ledger"
	"github.com/Grefendor/drinks/internal/model"
	"github.com/Grefendor/drinks/internal/service"

	"github.com/labstack/echo/v4"
)

// AuthenticatePin 驗證 PIN，失敗次數以 client IP 計算。
// limiter 為 nil 時不限制；Redis 異常時記錄警告並放行。
func AuthenticatePin(c echo.Context, svc ledger.Service, limiter *service.AttemptLimiter, pin string) (model.User, error) {
	ctx := c.Request().Context()
	key := c.RealIP()

	if limiter != nil {
		ok, err := limiter.Allowed(ctx, key)
		if err != nil {
			c.Logger().Warnf("attempt limiter: %v", err)
		} else if !ok {
			c.Response().Header().Set("Retry-After", strconv.Itoa(int(limiter.Window().Seconds())))
			return model.User{}, ErrTooManyAttempts
		}
	}

	user, err := svc.Authenticate(ctx, pin)
	if limiter == nil {
		return user, err
	}
	switch {
	case err == nil:
		if rerr := limiter.Reset(ctx, key); rerr != nil {
			c.Logger().Warnf("attempt limiter: %v", rerr)
		}
	case errors.Is(err, ledger.ErrNotFound):
		if ferr := limiter.Fail(ctx, key); ferr != nil {
			c.Logger().Warnf("attempt limiter: %v", ferr)
		}
	}
	return user, err
}
