package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httpadapter "profile-engine/internal/adapter/http"
	repo "profile-engine/internal/adapter/repository"
	"profile-engine/internal/config"
	"profile-engine/internal/usecase"
	infra "profile-engine/pkg/infrastructure"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load()
	ctx := context.Background()

	// blob store: postgres when configured, JSON files otherwise
	var blobs repo.BlobStore
	var watcher *infra.BlobWatcher
	if cfg.Share.DatabaseURL != "" {
		pool, err := infra.NewSharePool(ctx, cfg.Share.DatabaseURL)
		if err != nil {
			logger.Fatal("share DB not available", zap.Error(err))
		}
		defer pool.Close()
		pg := repo.NewPGStore(pool)
		if err := pg.Bootstrap(ctx); err != nil {
			logger.Fatal("share DB bootstrap failed", zap.Error(err))
		}
		blobs = pg
	} else {
		fs := repo.NewFileStore(cfg.Share.StoreDir)
		blobs = fs
		if err := os.MkdirAll(cfg.Share.StoreDir, 0o755); err != nil {
			logger.Fatal("share store dir", zap.Error(err))
		}
	}

	store := usecase.NewStore()
	editor := usecase.NewEditor(store, logger)
	htmlRenderer := usecase.NewHTMLRenderer(cfg.Server.TemplatesDir)
	pdfRenderer := infra.NewChromedpRenderer(cfg.Export.ChromePath)
	processor := usecase.NewProcessor(pdfRenderer, htmlRenderer, cfg.Export.Timeout, logger)
	registry := repo.NewShareRegistry(blobs, cfg.Server.BaseURL, logger)
	prefs := repo.NewPrefsRepo(blobs)

	// when blobs live on disk, pick up writes from other processes
	if fs, ok := blobs.(*repo.FileStore); ok {
		watcher, err = infra.NewBlobWatcher(fs.Path(repo.KeySharedPortfolios), registry.Invalidate, logger)
		if err != nil {
			logger.Warn("blob watcher unavailable", zap.Error(err))
		} else {
			watcher.Start()
			defer watcher.Stop()
		}
	}

	app := fiber.New()
	h := httpadapter.NewHandler(store, editor, processor, registry, prefs, htmlRenderer, cfg.Server.TemplatesDir, logger)
	h.Register(app)

	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()
	logger.Info("listening", zap.String("port", cfg.Server.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
