package ledger

import (
	"errors"
	"fmt"

	"github.com/Grefendor/drinks/internal/database"
)

// Sentinel errors. 所有錯誤都以 %w 包裝回傳，呼叫端以 errors.Is 判斷。
var (
	ErrNotFound       = errors.New("ledger: not found")
	ErrUnknownBarcode = fmt.Errorf("%w: unknown barcode", ErrNotFound)
	ErrInvalidInput   = errors.New("ledger: invalid input")

	// Identity
	ErrDuplicatePin       = errors.New("ledger: pin already in use")
	ErrAmbiguousName      = errors.New("ledger: several users share this name")
	ErrAdminRequired      = errors.New("ledger: first user must be an admin")
	ErrAlreadyInitialized = errors.New("ledger: users already exist")

	// Catalog / ledger engine
	ErrDuplicateBarcode  = errors.New("ledger: barcode already exists")
	ErrInvalidQuantity   = errors.New("ledger: invalid quantity")
	ErrInsufficientStock = errors.New("ledger: insufficient stock")

	// Admin invariant guard
	ErrSelfDeletion       = errors.New("ledger: cannot delete the acting user")
	ErrLastAdminProtected = errors.New("ledger: cannot delete the last admin")

	// Store
	ErrBusy             = errors.New("ledger: store busy, retry later")
	ErrStoreUnavailable = errors.New("ledger: store unavailable")
)

var domainErrors = []error{
	ErrNotFound,
	ErrInvalidInput,
	ErrDuplicatePin,
	ErrAmbiguousName,
	ErrAdminRequired,
	ErrAlreadyInitialized,
	ErrDuplicateBarcode,
	ErrInvalidQuantity,
	ErrInsufficientStock,
	ErrSelfDeletion,
	ErrLastAdminProtected,
	ErrBusy,
	ErrStoreUnavailable,
}

func isDomain(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// classify 將 store 錯誤轉成 ledger 錯誤並加上操作名稱；原始錯誤保留於鏈中
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if isDomain(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if database.IsBusy(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrBusy, err)
	}
	if constraint, ok := database.CheckViolation(err); ok {
		switch constraint {
		case "products_count_non_negative":
			return fmt.Errorf("%s: %w: %w", op, ErrInvalidQuantity, err)
		default:
			return fmt.Errorf("%s: %w: %w", op, ErrInvalidInput, err)
		}
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

// IsRetryable 回傳呼叫端是否可重試 (僅 ErrBusy)
func IsRetryable(err error) bool {
	return errors.Is(err, ErrBusy)
}
