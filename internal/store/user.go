package store

import (
	"context"
	"fmt"

	"github.com/Grefendor/drinks/internal/database"
	"github.com/Grefendor/drinks/internal/model"

	"github.com/jackc/pgx/v5"
)

// usersLockKey 為 pg_advisory_xact_lock 的固定 key，序列化所有 users 寫入
const usersLockKey int64 = 0x6472696e6b73

const userColumns = `id, name, pin_digest, is_admin, created_at`

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(
		&u.ID,
		&u.Name,
		&u.PinDigest,
		&u.IsAdmin,
		&u.CreatedAt,
	)
}

// LockUsers 在目前交易內取得 users 的 advisory lock，交易結束自動釋放
func LockUsers(ctx context.Context, q database.Querier) error {
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, usersLockKey); err != nil {
		return fmt.Errorf("LockUsers: %w", err)
	}
	return nil
}

func CountUsers(ctx context.Context, q database.Querier) (int, error) {
	var n int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountUsers: %w", err)
	}
	return n, nil
}

func CountAdmins(ctx context.Context, q database.Querier) (int, error) {
	var n int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM users WHERE is_admin`).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountAdmins: %w", err)
	}
	return n, nil
}

func CreateUser(ctx context.Context, q database.Querier, u *model.User) (*model.User, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO users (name, pin_digest, is_admin)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		u.Name,
		u.PinDigest,
		u.IsAdmin,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func GetUserByID(ctx context.Context, q database.Querier, userID int) (*model.User, error) {
	u := &model.User{}
	row := q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	if err := scanUser(row, u); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

// GetUserByPinDigest 以 PIN 摘要精確比對
func GetUserByPinDigest(ctx context.Context, q database.Querier, digest string) (*model.User, error) {
	u := &model.User{}
	row := q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE pin_digest = $1`, digest)
	if err := scanUser(row, u); err != nil {
		return nil, fmt.Errorf("GetUserByPinDigest: %w", err)
	}
	return u, nil
}

// LockUserShare 以 FOR SHARE 鎖定使用者列，回傳該列是否存在
func LockUserShare(ctx context.Context, q database.Querier, userID int) (bool, error) {
	rows, err := q.Query(ctx, `SELECT id FROM users WHERE id = $1 FOR SHARE`, userID)
	if err != nil {
		return false, fmt.Errorf("LockUserShare: %w", err)
	}
	defer rows.Close()
	found := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("LockUserShare: %w", err)
	}
	return found, nil
}

func queryUsers(ctx context.Context, q database.Querier, sql string, args ...any) ([]model.User, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.User
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// FindUsersByName 名稱不唯一，回傳所有同名使用者 (依 id 排序)
func FindUsersByName(ctx context.Context, q database.Querier, name string) ([]model.User, error) {
	list, err := queryUsers(ctx, q, `SELECT `+userColumns+` FROM users WHERE name = $1 ORDER BY id`, name)
	if err != nil {
		return nil, fmt.Errorf("FindUsersByName: %w", err)
	}
	return list, nil
}

func ListUsers(ctx context.Context, q database.Querier) ([]model.User, error) {
	list, err := queryUsers(ctx, q, `SELECT `+userColumns+` FROM users ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return list, nil
}

func UpdateUserPinDigest(ctx context.Context, q database.Querier, userID int, digest string) error {
	_, err := q.Exec(ctx,
		`UPDATE users
		 SET pin_digest = $1
		 WHERE id = $2`,
		digest,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserPinDigest: %w", err)
	}
	return nil
}

func DeleteUser(ctx context.Context, q database.Querier, ID int) error {
	_, err := q.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		ID,
	)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	return nil
}
