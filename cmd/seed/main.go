package main

import (
	"context"
	"errors"
	"flag"

	"tuniskill/internal/config"
	"tuniskill/internal/db"
	apperrors "tuniskill/internal/errors"
	"tuniskill/internal/fixture"
	"tuniskill/internal/logger"
)

func main() {
	force := flag.Bool("force", false, "load even if the store already has rows (fails on duplicate slugs/emails)")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("starting seed script")

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}
	log.Info("connected to database", "driver", cfg.DBDriver)

	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("failed to run migrations", "error", err)
	}
	log.Info("database migrations completed")

	loader := fixture.NewLoader(gormDB)
	ctx := context.Background()

	var res *fixture.Result
	if *force {
		res, err = loader.Load(ctx)
	} else {
		res, err = loader.LoadIfEmpty(ctx)
	}
	if errors.Is(err, apperrors.ErrStoreNotEmpty) {
		log.Warn("store already has data, nothing loaded (use -force to try anyway)")
		return
	}
	if err != nil {
		log.Fatal("failed to load fixtures", "error", err)
	}

	log.Info("fixtures loaded successfully",
		"categories", res.Categories,
		"users", res.Users,
		"courses", res.Courses,
		"password", fixture.DefaultPassword,
	)
}
