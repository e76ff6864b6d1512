package ledger

import (
	"context"
	"fmt"

	"github.com/Grefendor/drinks/internal/model"
	"github.com/shopspring/decimal"
)

// FakeService 供前端測試使用；未設定的方法回傳 ErrStoreUnavailable
type FakeService struct {
	AuthenticateFn       func(ctx context.Context, pin string) (model.User, error)
	CreateUserFn         func(ctx context.Context, pin, name string, isAdmin bool) (model.User, error)
	CreateInitialAdminFn func(ctx context.Context, pin, name string) (model.User, error)
	UpdatePinFn          func(ctx context.Context, name, newPin string) error
	UpdatePinByIDFn      func(ctx context.Context, userID int, newPin string) error
	UserCountFn          func(ctx context.Context) (int, error)
	ListUsersFn          func(ctx context.Context) ([]model.User, error)
	GetUserFn            func(ctx context.Context, userID int) (model.User, error)
	DeleteUserFn         func(ctx context.Context, name string, actingUserID int) error
	DeleteUserByIDFn     func(ctx context.Context, userID, actingUserID int) error
	CreateProductFn      func(ctx context.Context, barcode, name string, initialCount int, price decimal.NullDecimal) (model.Product, error)
	GetProductFn         func(ctx context.Context, barcode string) (model.Product, error)
	UpdateProductCountFn func(ctx context.Context, barcode string, newCount int) error
	UpdateProductFn      func(ctx context.Context, barcode, name string, price decimal.NullDecimal) error
	DeleteProductFn      func(ctx context.Context, barcode string) error
	InventoryFn          func(ctx context.Context) ([]model.Product, error)
	RecordTransactionFn  func(ctx context.Context, userID int, barcode string, quantity int) error
	HistoryFn            func(ctx context.Context, userID, limit int) ([]model.Transaction, error)
	UserSummaryFn        func(ctx context.Context, userID int) ([]model.SummaryRow, error)
	ConsumptionReportFn  func(ctx context.Context) ([]model.ReportRow, error)
}

var _ Service = (*FakeService)(nil)

func errUnexpected(method string) error {
	return fmt.Errorf("FakeService.%s: %w", method, ErrStoreUnavailable)
}

func (f *FakeService) Authenticate(ctx context.Context, pin string) (model.User, error) {
	if f.AuthenticateFn != nil {
		return f.AuthenticateFn(ctx, pin)
	}
	return model.User{}, errUnexpected("Authenticate")
}

func (f *FakeService) CreateUser(ctx context.Context, pin, name string, isAdmin bool) (model.User, error) {
	if f.CreateUserFn != nil {
		return f.CreateUserFn(ctx, pin, name, isAdmin)
	}
	return model.User{}, errUnexpected("CreateUser")
}

func (f *FakeService) CreateInitialAdmin(ctx context.Context, pin, name string) (model.User, error) {
	if f.CreateInitialAdminFn != nil {
		return f.CreateInitialAdminFn(ctx, pin, name)
	}
	return model.User{}, errUnexpected("CreateInitialAdmin")
}

func (f *FakeService) UpdatePin(ctx context.Context, name, newPin string) error {
	if f.UpdatePinFn != nil {
		return f.UpdatePinFn(ctx, name, newPin)
	}
	return errUnexpected("UpdatePin")
}

func (f *FakeService) UpdatePinByID(ctx context.Context, userID int, newPin string) error {
	if f.UpdatePinByIDFn != nil {
		return f.UpdatePinByIDFn(ctx, userID, newPin)
	}
	return errUnexpected("UpdatePinByID")
}

func (f *FakeService) UserCount(ctx context.Context) (int, error) {
	if f.UserCountFn != nil {
		return f.UserCountFn(ctx)
	}
	return 0, errUnexpected("UserCount")
}

func (f *FakeService) ListUsers(ctx context.Context) ([]model.User, error) {
	if f.ListUsersFn != nil {
		return f.ListUsersFn(ctx)
	}
	return nil, errUnexpected("ListUsers")
}

func (f *FakeService) GetUser(ctx context.Context, userID int) (model.User, error) {
	if f.GetUserFn != nil {
		return f.GetUserFn(ctx, userID)
	}
	return model.User{}, errUnexpected("GetUser")
}

func (f *FakeService) DeleteUser(ctx context.Context, name string, actingUserID int) error {
	if f.DeleteUserFn != nil {
		return f.DeleteUserFn(ctx, name, actingUserID)
	}
	return errUnexpected("DeleteUser")
}

func (f *FakeService) DeleteUserByID(ctx context.Context, userID, actingUserID int) error {
	if f.DeleteUserByIDFn != nil {
		return f.DeleteUserByIDFn(ctx, userID, actingUserID)
	}
	return errUnexpected("DeleteUserByID")
}

func (f *FakeService) CreateProduct(ctx context.Context, barcode, name string, initialCount int, price decimal.NullDecimal) (model.Product, error) {
	if f.CreateProductFn != nil {
		return f.CreateProductFn(ctx, barcode, name, initialCount, price)
	}
	return model.Product{}, errUnexpected("CreateProduct")
}

func (f *FakeService) GetProduct(ctx context.Context, barcode string) (model.Product, error) {
	if f.GetProductFn != nil {
		return f.GetProductFn(ctx, barcode)
	}
	return model.Product{}, errUnexpected("GetProduct")
}

func (f *FakeService) UpdateProductCount(ctx context.Context, barcode string, newCount int) error {
	if f.UpdateProductCountFn != nil {
		return f.UpdateProductCountFn(ctx, barcode, newCount)
	}
	return errUnexpected("UpdateProductCount")
}

func (f *FakeService) UpdateProduct(ctx context.Context, barcode, name string, price decimal.NullDecimal) error {
	if f.UpdateProductFn != nil {
		return f.UpdateProductFn(ctx, barcode, name, price)
	}
	return errUnexpected("UpdateProduct")
}

func (f *FakeService) DeleteProduct(ctx context.Context, barcode string) error {
	if f.DeleteProductFn != nil {
		return f.DeleteProductFn(ctx, barcode)
	}
	return errUnexpected("DeleteProduct")
}

func (f *FakeService) Inventory(ctx context.Context) ([]model.Product, error) {
	if f.InventoryFn != nil {
		return f.InventoryFn(ctx)
	}
	return nil, errUnexpected("Inventory")
}

func (f *FakeService) RecordTransaction(ctx context.Context, userID int, barcode string, quantity int) error {
	if f.RecordTransactionFn != nil {
		return f.RecordTransactionFn(ctx, userID, barcode, quantity)
	}
	return errUnexpected("RecordTransaction")
}

func (f *FakeService) History(ctx context.Context, userID, limit int) ([]model.Transaction, error) {
	if f.HistoryFn != nil {
		return f.HistoryFn(ctx, userID, limit)
	}
	return nil, errUnexpected("History")
}

func (f *FakeService) UserSummary(ctx context.Context, userID int) ([]model.SummaryRow, error) {
	if f.UserSummaryFn != nil {
		return f.UserSummaryFn(ctx, userID)
	}
	return nil, errUnexpected("UserSummary")
}

func (f *FakeService) ConsumptionReport(ctx context.Context) ([]model.ReportRow, error) {
	if f.ConsumptionReportFn != nil {
		return f.ConsumptionReportFn(ctx)
	}
	return nil, errUnexpected("ConsumptionReport")
}
