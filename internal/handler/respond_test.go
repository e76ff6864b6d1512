package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Grefendor/drinks/internal/cache"
	"github.com/Grefendor/drinks/internal/ledger"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// memCache 以 map 模擬 limiter 用到的 Redis 指令
func memCache() (*cache.FakeCache, map[string]int64) {
	counts := map[string]int64{}
	return &cache.FakeCache{
		GetFn: func(ctx context.Context, key string) *redis.StringCmd {
			cmd := redis.NewStringCmd(ctx)
			if n, ok := counts[key]; ok {
				cmd.SetVal(fmt.Sprint(n))
			} else {
				cmd.SetErr(redis.Nil)
			}
			return cmd
		},
		TxPipelinedFn: func(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error) {
			pipe := &cache.FakePipe{
				IncrFn: func(ctx context.Context, key string) *redis.IntCmd {
					counts[key]++
					return redis.NewIntResult(counts[key], nil)
				},
				ExpireNXFn: func(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
					return redis.NewBoolResult(true, nil)
				},
			}
			return nil, fn(pipe)
		},
		DelFn: func(ctx context.Context, keys ...string) *redis.IntCmd {
			for _, k := range keys {
				delete(counts, k)
			}
			return redis.NewIntResult(int64(len(keys)), nil)
		},
	}, counts
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("GetProduct: %w", ledger.ErrUnknownBarcode), http.StatusNotFound},
		{ledger.ErrNotFound, http.StatusNotFound},
		{ledger.ErrInvalidQuantity, http.StatusBadRequest},
		{ledger.ErrInvalidInput, http.StatusBadRequest},
		{ledger.ErrAdminRequired, http.StatusBadRequest},
		{ledger.ErrDuplicatePin, http.StatusConflict},
		{ledger.ErrDuplicateBarcode, http.StatusConflict},
		{ledger.ErrAlreadyInitialized, http.StatusConflict},
		{ledger.ErrAmbiguousName, http.StatusConflict},
		{ledger.ErrInsufficientStock, http.StatusConflict},
		{ledger.ErrSelfDeletion, http.StatusConflict},
		{ledger.ErrLastAdminProtected, http.StatusConflict},
		{ledger.ErrBusy, http.StatusServiceUnavailable},
		{ledger.ErrStoreUnavailable, http.StatusInternalServerError},
		{ErrTooManyAttempts, http.StatusTooManyRequests},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		code, msg := StatusFor(tt.err)
		require.Equal(t, tt.code, code, tt.err.Error())
		require.NotEmpty(t, msg)
	}

	_, msg := StatusFor(ledger.ErrUnknownBarcode)
	require.Equal(t, "unknown barcode", msg)
}

func TestLedgerErrorBusy(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/purchases", nil), rec)

	require.NoError(t, LedgerError(c, fmt.Errorf("RecordTransaction: %w", ledger.ErrBusy)))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "1", rec.Header().Get("Retry-After"))
	require.Contains(t, rec.Body.String(), "retry later")
}

func TestLedgerErrorHidesCause(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, LedgerError(c, fmt.Errorf("%w: password authentication failed", ledger.ErrStoreUnavailable)))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "password")
}
