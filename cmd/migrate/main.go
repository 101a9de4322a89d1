// Command migrate applies or reverts schema revisions.
//
//	migrate [--config-dir configs] upgrade
//	migrate [--config-dir configs] downgrade [--steps 1]
//	migrate [--config-dir configs] current
package main

import (
	"context"
	"fmt"
	"os"

	"blog_api/internal/config"
	"blog_api/internal/logger"
	"blog_api/internal/migrations"
	"blog_api/internal/repository/db"

	"github.com/spf13/pflag"
)

func main() {
	configDir := pflag.String("config-dir", "configs", "directory holding config.yml")
	steps := pflag.Int("steps", 1, "number of revisions to revert on downgrade")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: migrate [flags] upgrade|downgrade|current\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configDir)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.Log.Level).Named("migrate")
	defer func() { _ = log.Sync() }()

	gdb, err := db.Open(cfg.DB, logger.NewGormLogger(log, cfg.Log.Level, cfg.DB.SlowThreshold))
	if err != nil {
		log.Fatalw("failed to open database", "driver", cfg.DB.Driver, "err", err)
	}
	defer func() { _ = db.Close(gdb) }()

	if err := run(context.Background(), migrations.New(gdb, log), pflag.Arg(0), *steps, log); err != nil {
		log.Errorw("migration failed", "command", pflag.Arg(0), "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, m *migrations.Migrator, command string, steps int, log *logger.Logger) error {
	switch command {
	case "upgrade":
		n, err := m.Upgrade(ctx)
		if err != nil {
			return err
		}
		log.Infow("upgrade complete", "applied", n)
	case "downgrade":
		n, err := m.Downgrade(ctx, steps)
		if err != nil {
			return err
		}
		log.Infow("downgrade complete", "reverted", n)
	case "current":
		rev, err := m.Current(ctx)
		if err != nil {
			return err
		}
		if rev == "" {
			rev = "<base>"
		}
		fmt.Println(rev)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
