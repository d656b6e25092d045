package main

import (
	"context"
	"database/sql"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"hostbot/internal/adapters/inbox"
	"hostbot/internal/adapters/observability"
	"hostbot/internal/app"
	"hostbot/internal/shared"
	mysqlrepo "hostbot/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "hostbot-responder")

	log.Info().
		Str("base", cfg.InboxBase).
		Int("workers", cfg.ResponderWorkers).
		Msg("responder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	client, err := inbox.New(cfg.InboxBase, cfg.InboxKey, cfg.InboxRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize inbox client")
	}

	auto := app.NewAutomationService(mysqlrepo.New(db))
	svc := app.NewResponderService(client, auto)

	sum, err := svc.ProcessInbox(ctx, cfg.ResponderWorkers)
	if err != nil {
		log.Fatal().Err(err).Msg("inbox pass failed")
	}
	log.Info().
		Int("fetched", sum.Fetched).
		Int("replied", sum.Replied).
		Int("skipped", sum.Skipped).
		Int("failed", sum.Failed).
		Msg("inbox pass completed")
}
