package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"neurosync/internal/analytics"
	"neurosync/internal/booking"
	"neurosync/internal/chat"
	"neurosync/internal/community"
	"neurosync/internal/config"
	"neurosync/internal/email"
	"neurosync/internal/jobs"
	"neurosync/internal/logging"
	"neurosync/internal/metrics"
	"neurosync/internal/resources"
	"neurosync/internal/server"
	"neurosync/internal/triage"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.IsDev())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Load optional catalog file
	catalogCfg, err := config.LoadYAMLConfig()
	if err != nil {
		logger.Fatal("failed to load config file", zap.Error(err))
	}
	if catalogCfg != nil {
		logger.Info("loaded catalog from config file",
			zap.Int("counselors", len(catalogCfg.CounselorList())),
			zap.Int("resources", len(catalogCfg.ResourceList())),
			zap.Int("support_groups", len(catalogCfg.SupportGroupList())))
	}

	// Metrics
	tally := analytics.NewTally()
	metrics.Init(tally)

	// Domain services
	startedAt := time.Now()
	classifier := triage.Default()

	catalog, err := resources.NewCatalog(catalogCfg.ResourceList())
	if err != nil {
		logger.Fatal("invalid resource catalog", zap.Error(err))
	}

	// Background resource link checks
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.LinkCheckInterval > 0 {
		go jobs.NewLinkChecker(catalog, cfg.LinkCheckInterval, logger).Start(ctx)
	}

	board := community.NewBoard(nil, catalogCfg.SupportGroupList(), classifier, startedAt)
	board.OnClassify(metrics.RecordClassification)

	assistant := chat.NewAssistant(classifier,
		chat.WithMaxMessages(cfg.ChatMaxMessages),
		chat.WithObserver(metrics.RecordClassification),
	)

	srv := server.New(cfg, logger)
	srv.RegisterRoutes(server.Services{
		Classifier: classifier,
		Assistant:  assistant,
		Directory:  booking.NewDirectory(catalogCfg.CounselorList(), catalogCfg.TimeSlotList()),
		Board:      board,
		Catalog:    catalog,
		Tally:      tally,
		Notifier:   email.NewNotifier(cfg, logger),
		StartedAt:  startedAt,
		Observe:    metrics.RecordClassification,
	})

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	cancel()
	if err := srv.Shutdown(); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}
