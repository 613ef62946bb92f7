package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/benz9527/xdsa/coins"
	"github.com/benz9527/xdsa/lib/infra"
	"github.com/benz9527/xdsa/observability"
	"github.com/benz9527/xdsa/xlog"
)

const appName = "xdsa"

func (c *cli) newLogger(cfg *config) xlog.XLogger {
	return xlog.NewXLogger(
		xlog.WithXLoggerWriter(c.logOut),
		xlog.WithXLoggerLevel(xlog.ParseLogLevel(cfg.Log.Level)),
		xlog.WithXLoggerEncoder(xlog.ParseLogEncoder(cfg.Log.Encoder)),
	)
}

// newMemoStore builds the shared memo store of the coins commands.
func newMemoStore(lc fx.Lifecycle, cfg *config, logger xlog.XLogger) (coins.MemoStore, error) {
	switch kind := strings.ToLower(cfg.Coins.Store); kind {
	case "", "map":
		return coins.NewMapMemoStore(), nil
	case "redis":
		redis.SetLogger(xlog.NewGoRedisXLogger(logger))
		client := redis.NewClient(&redis.Options{Addr: cfg.Coins.Redis.Addr})
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return infra.WrapErrorStackWithMessage(err, fmt.Sprintf("[coins] redis %s", cfg.Coins.Redis.Addr))
				}
				return nil
			},
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})
		return coins.NewRedisMemoStore(client, cfg.Coins.Redis.KeyPrefix), nil
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.Coins.Sqlite.DSN), &gorm.Config{
			Logger: xlog.NewGormXLogger(logger, xlog.WithGormXLoggerIgnoreRecord404Err()),
		})
		if err != nil {
			return nil, infra.WrapErrorStackWithMessage(err, fmt.Sprintf("[coins] sqlite %s", cfg.Coins.Sqlite.DSN))
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, infra.WrapErrorStackWithMessage(err, "[coins] sqlite pool")
		}
		// sqlite serializes writers, the sweep workers share one connection.
		sqlDB.SetMaxOpenConns(1)
		lc.Append(fx.StopHook(sqlDB.Close))
		return coins.NewGormMemoStore(db, cfg.Coins.Sqlite.Namespace)
	default:
		return nil, infra.NewErrorStack(fmt.Sprintf("[coins] unknown memo store %q", kind))
	}
}

// initMetrics keeps exporter output on the log writer, stdout carries the
// command results only.
func (c *cli) initMetrics(lc fx.Lifecycle, cfg *config, logger xlog.XLogger) error {
	kind := observability.ExporterKind(strings.ToLower(cfg.Metrics.Exporter))
	shutdown, err := observability.InitMetricsExporter(kind,
		observability.WithStdoutOptions(stdoutmetric.WithWriter(c.logOut)),
		observability.WithPrometheusWriter(c.logOut),
	)
	if err != nil {
		return err
	}
	lc.Append(fx.StopHook(shutdown))
	if kind == observability.ExporterNone || kind == "" {
		return nil
	}
	logger.Info("metrics exporter installed", zap.String("exporter", string(kind)))
	return observability.InitAppStats(appName)
}

// runWith executes work as the start hook of a short lived fx app. D is an
// fx.In parameter struct naming what the command needs, only those
// providers are constructed.
func runWith[D any](c *cli, ctx context.Context, work func(ctx context.Context, deps D) error) error {
	app := fx.New(
		fx.Supply(c.cfg),
		fx.Provide(
			c.newLogger,
			newMemoStore,
		),
		fx.WithLogger(func(logger xlog.XLogger) fxevent.Logger {
			return xlog.NewFxXLogger(logger)
		}),
		fx.Invoke(c.initMetrics),
		fx.Invoke(func(lc fx.Lifecycle, deps D) {
			lc.Append(fx.StartHook(func(ctx context.Context) error {
				return work(ctx, deps)
			}))
		}),
	)
	if err := app.Err(); err != nil {
		return err
	}
	if err := app.Start(ctx); err != nil {
		return err
	}
	return app.Stop(ctx)
}

type loggerDeps struct {
	fx.In

	Config *config
	Logger xlog.XLogger
}

type coinsDeps struct {
	fx.In

	Config *config
	Logger xlog.XLogger
	Store  coins.MemoStore
}
