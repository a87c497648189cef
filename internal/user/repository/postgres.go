package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/flannelman48/whirly-rentals-website/internal/common/db"
	commonerrors "github.com/flannelman48/whirly-rentals-website/internal/common/errors"
	"github.com/flannelman48/whirly-rentals-website/internal/user/domain"
)

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Create(ctx context.Context, user domain.User) error {
	start := time.Now()
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO users (id, username, password, created_at) VALUES ($1, $2, $3, $4)`,
		string(user.ID),
		user.Username,
		user.Password,
		user.CreatedAt,
	)
	if db.IsUniqueViolation(err) {
		db.MeasureQueryDuration(db.BackendPostgres, "create user", start)
		return commonerrors.ErrUsernameAlreadyExists
	}
	return db.HandleExecError(db.BackendPostgres, err, "create user", start)
}

func (r *PgRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	start := time.Now()
	var user domain.User
	err := r.pool.QueryRow(
		ctx,
		`SELECT id, username, password, created_at FROM users WHERE id = $1`,
		string(id),
	).Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if err := db.HandleQueryError(db.BackendPostgres, err, commonerrors.ErrUserNotFound, "find user by id", start); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *PgRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	start := time.Now()
	var user domain.User
	err := r.pool.QueryRow(
		ctx,
		`SELECT id, username, password, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if err := db.HandleQueryError(db.BackendPostgres, err, commonerrors.ErrUserNotFound, "find user by username", start); err != nil {
		return domain.User{}, err
	}
	return user, nil
}
