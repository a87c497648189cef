package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/flannelman48/whirly-rentals-website/internal/common/config"
	"github.com/flannelman48/whirly-rentals-website/internal/common/constants"
	"github.com/flannelman48/whirly-rentals-website/internal/common/db"
	"github.com/flannelman48/whirly-rentals-website/internal/common/logger"
	inquiryrepo "github.com/flannelman48/whirly-rentals-website/internal/inquiry/repository"
	userrepo "github.com/flannelman48/whirly-rentals-website/internal/user/repository"
)

// Storage bundles the repositories of one backend together with the
// connection that backs them.
type Storage struct {
	Backend   string
	Users     userrepo.Repository
	Inquiries inquiryrepo.Repository

	pool        *pgxpool.Pool
	sqlite      *sql.DB
	stopMetrics context.CancelFunc
}

// Open builds the repositories for cfg.Backend. Database backends are connected
// and their schema is created before Open returns.
func Open(ctx context.Context, cfg config.StorageConfig, log *logger.Logger) (*Storage, error) {
	switch cfg.Backend {
	case config.BackendMemory, "":
		log.Info("using in-memory storage")
		return &Storage{
			Backend:   config.BackendMemory,
			Users:     userrepo.NewMemoryRepository(),
			Inquiries: inquiryrepo.NewMemoryRepository(),
		}, nil

	case config.BackendPostgres:
		pool, err := db.NewPool(ctx, log, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.EnsurePostgresSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}

		metricsCtx, stop := context.WithCancel(context.Background())
		db.StartPoolMetrics(metricsCtx, pool, constants.DBPoolMetricsInterval)

		log.Info("using postgres storage")
		return &Storage{
			Backend:     config.BackendPostgres,
			Users:       userrepo.NewPgRepository(pool),
			Inquiries:   inquiryrepo.NewPgRepository(pool, log),
			pool:        pool,
			stopMetrics: stop,
		}, nil

	case config.BackendSQLite:
		conn, err := db.OpenSQLite(ctx, log, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}

		log.Info("using sqlite storage")
		return &Storage{
			Backend:   config.BackendSQLite,
			Users:     userrepo.NewSQLiteRepository(conn),
			Inquiries: inquiryrepo.NewSQLiteRepository(conn, log),
			sqlite:    conn,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidStorageBackend, cfg.Backend)
	}
}

// Ping checks the backing database. The memory backend is always reachable.
func (s *Storage) Ping(ctx context.Context) error {
	switch {
	case s.pool != nil:
		return s.pool.Ping(ctx)
	case s.sqlite != nil:
		return s.sqlite.PingContext(ctx)
	default:
		return nil
	}
}

func (s *Storage) Close(_ context.Context) error {
	if s.stopMetrics != nil {
		s.stopMetrics()
	}
	if s.pool != nil {
		s.pool.Close()
	}
	if s.sqlite != nil {
		return s.sqlite.Close()
	}
	return nil
}
