package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/dmarkovic/shiftbot/internal/config"
	"github.com/dmarkovic/shiftbot/internal/database"
	"github.com/dmarkovic/shiftbot/internal/domain/service"
	"github.com/dmarkovic/shiftbot/internal/handlers"
	"github.com/dmarkovic/shiftbot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("migrations completed")

	slackClient := slack.New(cfg.SlackBotToken)

	dm := database.NewInstance(db)
	services := service.NewInstance(dm, slackClient, logger, cfg.SlackTeamID)

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	if err := services.Board.Refresh(context.Background()); err != nil {
		logger.Warn("initial board refresh failed", zap.Error(err))
	}

	handler := handlers.New(slackClient, services.Shift, services.Board, services.Scheduler, cfg.SlackSigningSecret, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/slack/interactions", handler.HandleInteraction)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	return logger
}
