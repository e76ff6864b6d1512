package ledger

import (
	"context"
	"errors"

	"github.com/Grefendor/drinks/internal/database"
	"github.com/Grefendor/drinks/internal/model"
	"github.com/jackc/pgx/v5"
)

const pinConstraint = "users_pin_digest_key"

func pinConflict(err error) error {
	if constraint, ok := database.UniqueViolation(err); ok && constraint == pinConstraint {
		return ErrDuplicatePin
	}
	return err
}

// Authenticate 以 PIN 找出唯一使用者；無符合者回傳 ErrNotFound
func (l *Ledger) Authenticate(ctx context.Context, pin string) (model.User, error) {
	if pin == "" {
		return model.User{}, classify("Authenticate", ErrNotFound)
	}
	digest, err := hashPin(pin, l.pepper)
	if err != nil {
		return model.User{}, classify("Authenticate", err)
	}
	u, err := getUserByPinDigest(ctx, l.db, digest)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, classify("Authenticate", ErrNotFound)
	}
	if err != nil {
		return model.User{}, classify("Authenticate", err)
	}
	return *u, nil
}

// CreateUser 新增使用者；使用者表為空時只能建立 admin
func (l *Ledger) CreateUser(ctx context.Context, pin, name string, isAdmin bool) (model.User, error) {
	return l.createUser(ctx, "CreateUser", pin, name, isAdmin, false)
}

// CreateInitialAdmin 僅在沒有任何使用者時建立第一位 admin
func (l *Ledger) CreateInitialAdmin(ctx context.Context, pin, name string) (model.User, error) {
	return l.createUser(ctx, "CreateInitialAdmin", pin, name, true, true)
}

func (l *Ledger) createUser(ctx context.Context, op, pin, name string, isAdmin, initial bool) (model.User, error) {
	if name == "" {
		return model.User{}, classify(op, ErrInvalidInput)
	}
	digest, err := l.digest(pin)
	if err != nil {
		return model.User{}, classify(op, err)
	}

	var created model.User
	err = l.tx(ctx, func(q database.Querier) error {
		if err := lockUsers(ctx, q); err != nil {
			return err
		}
		n, err := countUsers(ctx, q)
		if err != nil {
			return err
		}
		switch {
		case initial && n > 0:
			return ErrAlreadyInitialized
		case !isAdmin && n == 0:
			return ErrAdminRequired
		}

		u, err := createUser(ctx, q, &model.User{Name: name, PinDigest: digest, IsAdmin: isAdmin})
		if err != nil {
			return pinConflict(err)
		}
		created = *u
		return nil
	})
	if err != nil {
		return model.User{}, classify(op, err)
	}
	return created, nil
}

// resolveName 名稱必須恰好對應一位使用者
func resolveName(ctx context.Context, q database.Querier, name string) (model.User, error) {
	list, err := findUsersByName(ctx, q, name)
	if err != nil {
		return model.User{}, err
	}
	switch len(list) {
	case 0:
		return model.User{}, ErrNotFound
	case 1:
		return list[0], nil
	default:
		return model.User{}, ErrAmbiguousName
	}
}

func resolveID(ctx context.Context, q database.Querier, userID int) (model.User, error) {
	u, err := getUserByID(ctx, q, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return *u, nil
}

func (l *Ledger) UpdatePin(ctx context.Context, name, newPin string) error {
	return l.updatePin(ctx, "UpdatePin", newPin, func(q database.Querier) (model.User, error) {
		return resolveName(ctx, q, name)
	})
}

func (l *Ledger) UpdatePinByID(ctx context.Context, userID int, newPin string) error {
	return l.updatePin(ctx, "UpdatePinByID", newPin, func(q database.Querier) (model.User, error) {
		return resolveID(ctx, q, userID)
	})
}

func (l *Ledger) updatePin(ctx context.Context, op, newPin string, resolve func(q database.Querier) (model.User, error)) error {
	digest, err := l.digest(newPin)
	if err != nil {
		return classify(op, err)
	}
	err = l.tx(ctx, func(q database.Querier) error {
		if err := lockUsers(ctx, q); err != nil {
			return err
		}
		u, err := resolve(q)
		if err != nil {
			return err
		}
		return pinConflict(updateUserPinDigest(ctx, q, u.ID, digest))
	})
	return classify(op, err)
}

func (l *Ledger) UserCount(ctx context.Context) (int, error) {
	n, err := countUsers(ctx, l.db)
	if err != nil {
		return 0, classify("UserCount", err)
	}
	return n, nil
}

// ListUsers 依名稱排序
func (l *Ledger) ListUsers(ctx context.Context) ([]model.User, error) {
	list, err := listUsers(ctx, l.db)
	if err != nil {
		return nil, classify("ListUsers", err)
	}
	return list, nil
}

func (l *Ledger) GetUser(ctx context.Context, userID int) (model.User, error) {
	u, err := resolveID(ctx, l.db, userID)
	if err != nil {
		return model.User{}, classify("GetUser", err)
	}
	return u, nil
}
