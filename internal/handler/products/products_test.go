package products

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Grefendor/drinks/internal/ledger"
	"github.com/Grefendor/drinks/internal/lookup"
	"github.com/Grefendor/drinks/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type realValidator struct{ v *validator.Validate }

func (r realValidator) Validate(i any) error { return r.v.Struct(i) }

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = realValidator{validator.New()}
	return e
}

func newCtx(e *echo.Echo, method, barcode, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/api/products", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if barcode != "" {
		c.SetPath("/api/products/:barcode")
		c.SetParamNames("barcode")
		c.SetParamValues(barcode)
	}
	return c, rec
}

func TestListProductsHandler(t *testing.T) {
	e := newEcho()
	svc := &ledger.FakeService{InventoryFn: func(context.Context) ([]model.Product, error) {
		return []model.Product{
			{ID: 1, Barcode: "4001", Name: "Mate", Count: 3, Price: decimal.NewNullDecimal(decimal.RequireFromString("1.5"))},
			{ID: 2, Barcode: "4002", Name: "Water", Count: 0},
		}, nil
	}}
	c, rec := newCtx(e, http.MethodGet, "", "")
	require.NoError(t, ListProductsHandler(svc)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"price":"1.5"`)
	require.Contains(t, rec.Body.String(), `"price":null`)
}

func TestGetProductHandler(t *testing.T) {
	e := newEcho()
	svc := &ledger.FakeService{GetProductFn: func(_ context.Context, barcode string) (model.Product, error) {
		if barcode == "4001" {
			return model.Product{Barcode: "4001", Name: "Mate"}, nil
		}
		return model.Product{}, ledger.ErrUnknownBarcode
	}}

	c, rec := newCtx(e, http.MethodGet, "4001", "")
	require.NoError(t, GetProductHandler(svc)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = newCtx(e, http.MethodGet, "0000", "")
	require.NoError(t, GetProductHandler(svc)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProductHandler(t *testing.T) {
	e := newEcho()
	var gotPrice decimal.NullDecimal
	svc := &ledger.FakeService{CreateProductFn: func(_ context.Context, barcode, name string, count int, price decimal.NullDecimal) (model.Product, error) {
		if barcode == "dup" {
			return model.Product{}, ledger.ErrDuplicateBarcode
		}
		gotPrice = price
		return model.Product{ID: 9, Barcode: barcode, Name: name, Count: count, Price: price}, nil
	}}

	tests := []struct {
		name string
		body string
		code int
	}{
		{"missing name", "barcode=4001", http.StatusBadRequest},
		{"negative count", "barcode=4001&name=Mate&count=-1", http.StatusBadRequest},
		{"bad price", "barcode=4001&name=Mate&price=abc", http.StatusBadRequest},
		{"duplicate", "barcode=dup&name=Mate", http.StatusConflict},
		{"ok", "barcode=4001&name=Mate&count=24&price=1.50", http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newCtx(e, http.MethodPost, "", tt.body)
			require.NoError(t, CreateProductHandler(svc)(c))
			require.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
	require.True(t, gotPrice.Valid)
	require.True(t, decimal.RequireFromString("1.5").Equal(gotPrice.Decimal))
}

func TestUpdateProductHandler(t *testing.T) {
	e := newEcho()
	var cleared bool
	svc := &ledger.FakeService{
		UpdateProductFn: func(_ context.Context, barcode, name string, price decimal.NullDecimal) error {
			if barcode != "4001" {
				return ledger.ErrUnknownBarcode
			}
			cleared = !price.Valid
			return nil
		},
		GetProductFn: func(_ context.Context, barcode string) (model.Product, error) {
			return model.Product{Barcode: barcode, Name: "Mate 0.5"}, nil
		},
	}

	c, rec := newCtx(e, http.MethodPut, "4001", "name=Mate+0.5&price=")
	require.NoError(t, UpdateProductHandler(svc)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, cleared)

	c, rec = newCtx(e, http.MethodPut, "0000", "name=Mate")
	require.NoError(t, UpdateProductHandler(svc)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCountHandler(t *testing.T) {
	e := newEcho()
	var got int
	svc := &ledger.FakeService{UpdateProductCountFn: func(_ context.Context, barcode string, n int) error {
		if n < 0 {
			return ledger.ErrInvalidQuantity
		}
		got = n
		return nil
	}}

	c, rec := newCtx(e, http.MethodPut, "4001", "count=48")
	require.NoError(t, UpdateCountHandler(svc)(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, 48, got)

	c, rec = newCtx(e, http.MethodPut, "4001", "count=-2")
	require.NoError(t, UpdateCountHandler(svc)(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newCtx(e, http.MethodPut, "4001", "other=1")
	require.NoError(t, UpdateCountHandler(svc)(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProductHandler(t *testing.T) {
	e := newEcho()
	svc := &ledger.FakeService{DeleteProductFn: func(_ context.Context, barcode string) error {
		if barcode == "busy" {
			return ledger.ErrBusy
		}
		return nil
	}}

	c, rec := newCtx(e, http.MethodDelete, "4001", "")
	require.NoError(t, DeleteProductHandler(svc)(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = newCtx(e, http.MethodDelete, "busy", "")
	require.NoError(t, DeleteProductHandler(svc)(c))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
}

type fakeLookup struct {
	name string
	err  error
}

func (f fakeLookup) ProductName(context.Context, string) (string, error) { return f.name, f.err }

func TestLookupHandler(t *testing.T) {
	e := newEcho()

	c, rec := newCtx(e, http.MethodGet, "4001", "")
	require.NoError(t, LookupHandler(fakeLookup{name: "Club-Mate"})(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Club-Mate")

	c, rec = newCtx(e, http.MethodGet, "4001", "")
	require.NoError(t, LookupHandler(fakeLookup{err: lookup.ErrNotFound})(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newCtx(e, http.MethodGet, "4001", "")
	require.NoError(t, LookupHandler(fakeLookup{err: errors.New("timeout")})(c))
	require.Equal(t, http.StatusBadGateway, rec.Code)
}
