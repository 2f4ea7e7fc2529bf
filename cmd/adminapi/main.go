// Admin API - read-only HTTP reporting over the user registry.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/dmitrijs2005/drishya/internal/admin"
	"github.com/dmitrijs2005/drishya/internal/buildinfo"
	"github.com/dmitrijs2005/drishya/internal/config"
	"github.com/dmitrijs2005/drishya/internal/kvstore"
	"github.com/dmitrijs2005/drishya/internal/logging"
	"github.com/dmitrijs2005/drishya/internal/session"
	"github.com/dmitrijs2005/drishya/internal/users"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigs
		cancel()
	}()

	cfg := config.LoadConfig()
	logger := logging.NewJSONLogger(os.Stdout)
	clock := clockwork.NewRealClock()

	var store kvstore.Store
	if cfg.DatabaseDSN != "" {
		db, err := kvstore.OpenPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			log.Fatalf("db init error: %v", err)
		}
		defer db.Close()
		store = kvstore.NewPostgresStore(db)
	} else {
		db, err := kvstore.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			log.Fatalf("db init error: %v", err)
		}
		defer db.Close()
		store = kvstore.NewSQLiteStore(db)
	}

	sess := session.NewManager(store, cfg.SecretKey, cfg.SessionValidity)
	userService := users.NewService(store, sess, clock, logger)
	if err := userService.Restore(ctx); err != nil {
		logger.Warn(ctx, "registry restore failed", "error", err)
	}

	srv := admin.NewServer(cfg.AdminAddr, admin.NewHandlers(userService, logger), logger)
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("admin api error: %v", err)
	}
}
