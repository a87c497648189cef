package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/flannelman48/whirly-rentals-website/internal/common/db"
	commonerrors "github.com/flannelman48/whirly-rentals-website/internal/common/errors"
	"github.com/flannelman48/whirly-rentals-website/internal/user/domain"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(conn *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: conn}
}

func (r *SQLiteRepository) Create(ctx context.Context, user domain.User) error {
	start := time.Now()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO users (id, username, password, created_at) VALUES (?, ?, ?, ?)`,
		string(user.ID),
		user.Username,
		user.Password,
		user.CreatedAt.UnixNano(),
	)
	if db.IsUniqueViolation(err) {
		db.MeasureQueryDuration(db.BackendSQLite, "create user", start)
		return commonerrors.ErrUsernameAlreadyExists
	}
	return db.HandleExecError(db.BackendSQLite, err, "create user", start)
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	return r.findOne(ctx, "find user by id", `SELECT id, username, password, created_at FROM users WHERE id = ?`, string(id))
}

func (r *SQLiteRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.findOne(ctx, "find user by username", `SELECT id, username, password, created_at FROM users WHERE username = ?`, username)
}

func (r *SQLiteRepository) findOne(ctx context.Context, operation, query string, arg any) (domain.User, error) {
	start := time.Now()
	var (
		user      domain.User
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&user.ID, &user.Username, &user.Password, &createdAt)
	if err := db.HandleQueryError(db.BackendSQLite, err, commonerrors.ErrUserNotFound, operation, start); err != nil {
		return domain.User{}, err
	}
	user.CreatedAt = time.Unix(0, createdAt).UTC()
	return user, nil
}
