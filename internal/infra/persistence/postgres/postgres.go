package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"traiteur/config"
	"traiteur/internal/domain/lifecycle"
	"traiteur/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleEvery   = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the customer store. The connection is verified, and the schema
// optionally migrated, when the fx app starts; the pool is closed on stop.
func New(params Params) (*gorm.DB, error) {
	opened, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open customer store")
	}

	// Multi-statement work goes through the transaction manager, so single
	// statements do not need gorm's implicit transaction.
	db := opened.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "customer store connection pool")
	}

	watch := &poolWatch{logger: params.Logger, db: sqlDB}
	stopWatch := func() {}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := prepare(ctx, db, sqlDB, params); err != nil {
				return err
			}

			var watchCtx context.Context
			watchCtx, stopWatch = context.WithCancel(context.Background())
			go watch.run(watchCtx, poolSampleEvery)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func prepare(ctx context.Context, db *gorm.DB, sqlDB *sql.DB, params Params) error {
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "customer store unreachable")
	}
	if !params.Config.Database.AutoMigrate {
		return nil
	}
	if err := AutoMigrate(ctx, db); err != nil {
		return err
	}
	params.Logger.Info("Customer schema migrated")

	return nil
}

// poolWatch logs when requests had to wait for a free connection since the
// previous sample. Long waits are warnings.
type poolWatch struct {
	logger *slog.Logger
	db     *sql.DB
	last   sql.DBStats
}

func (w *poolWatch) run(ctx context.Context, every time.Duration) {
	if w.logger == nil || w.db == nil {
		return
	}

	w.last = w.db.Stats()
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sample(ctx)
		}
	}
}

func (w *poolWatch) sample(ctx context.Context) {
	cur := w.db.Stats()
	waits := cur.WaitCount - w.last.WaitCount
	waited := cur.WaitDuration - w.last.WaitDuration
	w.last = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}
	w.logger.LogAttrs(ctx, level, "Customer store pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
