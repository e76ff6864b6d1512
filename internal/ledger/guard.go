package ledger

import (
	"context"

	"github.com/Grefendor/drinks/internal/database"
	"github.com/Grefendor/drinks/internal/model"
)

// guardDeletion 檢查順序：不可刪除自己，再來不可刪除最後一位 admin。
// 呼叫端須已持有使用者寫入鎖。
func guardDeletion(ctx context.Context, q database.Querier, target model.User, actingUserID int) error {
	if target.ID == actingUserID {
		return ErrSelfDeletion
	}
	if !target.IsAdmin {
		return nil
	}
	admins, err := countAdmins(ctx, q)
	if err != nil {
		return err
	}
	if admins <= 1 {
		return ErrLastAdminProtected
	}
	return nil
}

// DeleteUser 依名稱刪除使用者，交易紀錄保留
func (l *Ledger) DeleteUser(ctx context.Context, name string, actingUserID int) error {
	return l.deleteUser(ctx, "DeleteUser", actingUserID, func(q database.Querier) (model.User, error) {
		return resolveName(ctx, q, name)
	})
}

func (l *Ledger) DeleteUserByID(ctx context.Context, userID, actingUserID int) error {
	return l.deleteUser(ctx, "DeleteUserByID", actingUserID, func(q database.Querier) (model.User, error) {
		return resolveID(ctx, q, userID)
	})
}

func (l *Ledger) deleteUser(ctx context.Context, op string, actingUserID int, resolve func(q database.Querier) (model.User, error)) error {
	err := l.tx(ctx, func(q database.Querier) error {
		if err := lockUsers(ctx, q); err != nil {
			return err
		}
		target, err := resolve(q)
		if err != nil {
			return err
		}
		if err := guardDeletion(ctx, q, target, actingUserID); err != nil {
			return err
		}
		return deleteUser(ctx, q, target.ID)
	})
	return classify(op, err)
}
