// File: internal/handler/respond.go
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Grefendor/drinks/internal/api"
	"github.com/Grefendor/drinks/internal/ledger"

	"github.com/labstack/echo/v4"
)

// ErrTooManyAttempts PIN 失敗次數超過上限
var ErrTooManyAttempts = errors.New("too many failed PIN attempts")

// RetryAfterBusy ErrBusy 時建議的重試秒數
const RetryAfterBusy = 1

type errorStatus struct {
	err     error
	status  int
	message string
}

// 順序有意義：ErrUnknownBarcode 必須在 ErrNotFound 之前
var errorStatuses = []errorStatus{
	{ErrTooManyAttempts, http.StatusTooManyRequests, "too many failed attempts, try again later"},
	{ledger.ErrUnknownBarcode, http.StatusNotFound, "unknown barcode"},
	{ledger.ErrNotFound, http.StatusNotFound, "not found"},
	{ledger.ErrInvalidInput, http.StatusBadRequest, "invalid input"},
	{ledger.ErrInvalidQuantity, http.StatusBadRequest, "invalid quantity"},
	{ledger.ErrAdminRequired, http.StatusBadRequest, "the first user must be an admin"},
	{ledger.ErrDuplicatePin, http.StatusConflict, "PIN already in use"},
	{ledger.ErrDuplicateBarcode, http.StatusConflict, "barcode already exists"},
	{ledger.ErrAlreadyInitialized, http.StatusConflict, "already initialized"},
	{ledger.ErrAmbiguousName, http.StatusConflict, "several users share this name"},
	{ledger.ErrInsufficientStock, http.StatusConflict, "insufficient stock"},
	{ledger.ErrSelfDeletion, http.StatusConflict, "cannot delete yourself"},
	{ledger.ErrLastAdminProtected, http.StatusConflict, "cannot delete the last admin"},
	{ledger.ErrBusy, http.StatusServiceUnavailable, "store busy, retry later"},
}

// StatusFor 回傳錯誤對應的 HTTP 狀態碼與訊息；未分類錯誤為 500
func StatusFor(err error) (int, string) {
	for _, s := range errorStatuses {
		if errors.Is(err, s.err) {
			return s.status, s.message
		}
	}
	return http.StatusInternalServerError, "internal server error"
}

// LedgerError 寫入錯誤回應；5xx 會記錄原始錯誤
func LedgerError(c echo.Context, err error) error {
	status, msg := StatusFor(err)
	switch {
	case status == http.StatusServiceUnavailable:
		c.Response().Header().Set("Retry-After", strconv.Itoa(RetryAfterBusy))
	case status >= http.StatusInternalServerError:
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	}
	return c.JSON(status, api.ErrorResponse{Message: msg})
}
