package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hanoutdz/landingapi/internal/api"
	"github.com/hanoutdz/landingapi/internal/api/handlers"
	"github.com/hanoutdz/landingapi/internal/config"
	"github.com/hanoutdz/landingapi/internal/mailer"
	"github.com/hanoutdz/landingapi/internal/service"
	"github.com/hanoutdz/landingapi/internal/sheets"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Spreadsheet collaborator (durable order record)
	var appender service.SheetAppender
	var probe handlers.SheetsProbe
	if cfg.Sheets.Enabled {
		client, err := sheets.NewClient(ctx, sheets.Config{
			SheetID:         cfg.Sheets.SheetID,
			CredentialsJSON: []byte(cfg.Sheets.CredentialsJSON),
		}, logger)
		if err != nil {
			logger.Fatal("Failed to create sheets client", zap.Error(err))
		}
		appender = client
		probe = client
	}

	// Email collaborator (best-effort merchant notification)
	var notifier service.Notifier
	if cfg.SMTP.Enabled {
		notifier = mailer.New(mailer.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		}, logger)
	}

	pipeline := service.NewPipeline(service.PipelineConfig{
		PersistenceEnabled:    cfg.Sheets.Enabled,
		NotificationEnabled:   cfg.SMTP.Enabled,
		NotificationRecipient: cfg.SMTP.Recipient,
		RetryAttempts:         cfg.Pipeline.RetryAttempts,
		Timeout:               cfg.Pipeline.Timeout,
		RetryDelay:            cfg.Pipeline.RetryDelay,
	}, appender, notifier, logger)

	router := api.NewRouter(cfg, pipeline, probe, logger)

	logger.Info("Starting server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.Bool("sheets_enabled", cfg.Sheets.Enabled),
		zap.Bool("smtp_enabled", cfg.SMTP.Enabled),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	var zcfg zap.Config
	if cfg.Environment == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
