package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval  = 5 * time.Second
	poolWaitWarnLatency = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the storefront database. On start it pings the primary, migrates
// the schema when env.autoMigrate is set and starts sampling the pool.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-step writes go through TransactionManager; single statements need no implicit tx.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	sampler := &poolSampler{stats: sqlDB.Stats, logger: params.Logger}
	samplerCtx, stopSampler := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Env.AutoMigrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("Storefront schema migrated")
			}

			go sampler.run(samplerCtx, poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopSampler()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolSampler logs when checkouts had to wait for a pooled connection.
type poolSampler struct {
	stats  func() sql.DBStats
	logger *slog.Logger
	prev   sql.DBStats
}

func (s *poolSampler) run(ctx context.Context, interval time.Duration) {
	if s.logger == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.prev = s.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sample(ctx)
		}
	}
}

func (s *poolSampler) sample(ctx context.Context) {
	cur := s.stats()
	waits := cur.WaitCount - s.prev.WaitCount
	waited := cur.WaitDuration - s.prev.WaitDuration
	s.prev = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnLatency {
		level = slog.LevelWarn
	}

	s.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
