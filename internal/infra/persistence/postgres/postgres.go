// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"atrium/config"
	"atrium/internal/domain/lifecycle"
	"atrium/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolStatsInterval     = 5 * time.Second
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL connection and ties it to the fx lifecycle.
// The connection is pinged on start and its pool is sampled in the
// background until shutdown.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Every mutation is a single atomic save/delete; no per-statement
		// implicit transaction is needed on top of that.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	samplerCtx, stopSampler := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go samplePoolStats(samplerCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopSampler()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// samplePoolStats periodically reports connection pool contention. Waits
// above poolWaitWarnThreshold within a sample window are logged at warn.
func samplePoolStats(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := sqlDB.Stats()
			waits := stats.WaitCount - prev.WaitCount
			waited := stats.WaitDuration - prev.WaitDuration
			prev = stats

			if waits == 0 {
				continue
			}

			attrs := []slog.Attr{
				slog.Int64("waitCountDelta", waits),
				slog.Duration("waitDurationDelta", waited),
				slog.Duration("avgWait", waited/time.Duration(waits)),
				slog.Int("maxOpenConns", stats.MaxOpenConnections),
				slog.Int("openConns", stats.OpenConnections),
				slog.Int("inUseConns", stats.InUse),
				slog.Int("idleConns", stats.Idle),
			}
			level := slog.LevelDebug
			if waited >= poolWaitWarnThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Postgres pool wait observed", attrs...)
		}
	}
}
