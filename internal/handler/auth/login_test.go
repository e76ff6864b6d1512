package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Grefendor/drinks/internal/cache"
	"github.com/Grefendor/drinks/internal/ledger"
	"github.com/Grefendor/drinks/internal/model"
	"github.com/Grefendor/drinks/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newFormCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("pin is required") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

func restore() {
	issueAccessToken = service.IssueAccessToken
	timeNow = time.Now
}

func pinSvc() *ledger.FakeService {
	return &ledger.FakeService{
		AuthenticateFn: func(_ context.Context, pin string) (model.User, error) {
			if pin == "1234" {
				return model.User{ID: 5, Name: "alice", IsAdmin: true}, nil
			}
			return model.User{}, ledger.ErrNotFound
		},
	}
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()

	t.Run("validation error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = errValidator{}
		ctx, rec := newFormCtx(e, "")
		require.NoError(t, LoginHandler(pinSvc(), nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong pin", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = okValidator{}
		ctx, rec := newFormCtx(e, "pin=0000")
		require.NoError(t, LoginHandler(pinSvc(), nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("store busy", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = okValidator{}
		svc := &ledger.FakeService{AuthenticateFn: func(context.Context, string) (model.User, error) {
			return model.User{}, ledger.ErrBusy
		}}
		ctx, rec := newFormCtx(e, "pin=1234")
		require.NoError(t, LoginHandler(svc, nil)(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("issue error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = okValidator{}
		issueAccessToken = func(model.User, time.Duration) (string, error) { return "", errors.New("no secret") }
		ctx, rec := newFormCtx(e, "pin=1234")
		require.NoError(t, LoginHandler(pinSvc(), nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = okValidator{}
		t.Setenv("JWT_SECRET", "s3cret")
		now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
		timeNow = func() time.Time { return now }

		ctx, rec := newFormCtx(e, "pin=1234")
		require.NoError(t, LoginHandler(pinSvc(), nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"token_type":"Bearer"`)
		require.Contains(t, rec.Body.String(), `"expires_at":"2024-05-01T20:00:00Z"`)
		require.Contains(t, rec.Body.String(), `"name":"alice"`)
	})
}

func TestLoginHandlerLimiterReset(t *testing.T) {
	t.Cleanup(restore)
	e := echo.New()
	e.Validator = okValidator{}
	issueAccessToken = func(model.User, time.Duration) (string, error) { return "tok", nil }

	var incr, del int
	fc := &cache.FakeCache{
		GetFn: func(ctx context.Context, key string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		},
		TxPipelinedFn: func(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error) {
			return nil, fn(&cache.FakePipe{
				IncrFn: func(ctx context.Context, key string) *redis.IntCmd {
					incr++
					return redis.NewIntResult(2, nil)
				},
				ExpireNXFn: func(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
					return redis.NewBoolResult(true, nil)
				},
			})
		},
		DelFn: func(ctx context.Context, keys ...string) *redis.IntCmd {
			del++
			return redis.NewIntResult(1, nil)
		},
	}
	limiter := service.NewAttemptLimiter(fc, 5, time.Minute)

	ctx, rec := newFormCtx(e, "pin=0000")
	require.NoError(t, LoginHandler(pinSvc(), limiter)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, 1, incr)

	ctx, rec = newFormCtx(e, "pin=1234")
	require.NoError(t, LoginHandler(pinSvc(), limiter)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, del)
}

func TestLoginHandlerLimiterUnavailable(t *testing.T) {
	t.Cleanup(restore)
	e := echo.New()
	e.Validator = okValidator{}
	issueAccessToken = func(model.User, time.Duration) (string, error) { return "tok", nil }

	fc := &cache.FakeCache{
		GetFn: func(ctx context.Context, key string) *redis.StringCmd {
			return redis.NewStringResult("", errors.New("connection refused"))
		},
		DelFn: func(ctx context.Context, keys ...string) *redis.IntCmd {
			return redis.NewIntResult(0, errors.New("connection refused"))
		},
	}
	ctx, rec := newFormCtx(e, "pin=1234")
	require.NoError(t, LoginHandler(pinSvc(), service.NewAttemptLimiter(fc, 5, time.Minute))(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSetupHandler(t *testing.T) {
	e := echo.New()
	e.Validator = okValidator{}

	svc := &ledger.FakeService{
		CreateInitialAdminFn: func(_ context.Context, pin, name string) (model.User, error) {
			return model.User{ID: 1, Name: name, IsAdmin: true}, nil
		},
	}
	ctx, rec := newFormCtx(e, "name=root&pin=0000")
	require.NoError(t, SetupHandler(svc)(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"is_admin":true`)

	svc.CreateInitialAdminFn = func(context.Context, string, string) (model.User, error) {
		return model.User{}, ledger.ErrAlreadyInitialized
	}
	ctx, rec = newFormCtx(e, "name=root&pin=0000")
	require.NoError(t, SetupHandler(svc)(ctx))
	require.Equal(t, http.StatusConflict, rec.Code)

	e.Validator = errValidator{}
	ctx, rec = newFormCtx(e, "name=root")
	require.NoError(t, SetupHandler(svc)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
