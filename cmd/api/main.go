package main

// @title Travel Agency API
// @version 1.0.0
// @description Сервис оформления туристических заявок: клиенты, туры, заявки с туристами и животными, обязательные документы и их проверка, расчёт стоимости.
// @description
// @description Основные возможности:
// @description - Анкеты клиентов с проверкой ФИО и адресов
// @description - Туры и способы проезда
// @description - Заявки: туристы, животные, класс проезда, статус
// @description - Автоматический перечень обязательных документов и предупреждения
// @description - Сохранение снапшота в файл или redis

// @contact.name API Support
// @contact.email support@travel-agency.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/travel-agency/docs/swagger"
	"github.com/travel-agency/internal/config"
	httpDelivery "github.com/travel-agency/internal/delivery/http"
	"github.com/travel-agency/internal/delivery/http/handler"
	"github.com/travel-agency/internal/domain/repository"
	"github.com/travel-agency/internal/pkg/errors"
	"github.com/travel-agency/internal/pkg/logger"
	"github.com/travel-agency/internal/repository/cache"
	"github.com/travel-agency/internal/repository/snapshot"
	"github.com/travel-agency/internal/usecase"
	"github.com/travel-agency/internal/worker"
	"github.com/travel-agency/internal/worker/autosave"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Travel Agency")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("snapshot_backend", cfg.Snapshot.Backend),
	)

	// 3. Snapshot storage
	var snapshotRepo repository.SnapshotRepository
	switch cfg.Snapshot.Backend {
	case config.SnapshotBackendRedis:
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		healthCtx, healthCancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisClient.Health(healthCtx)
		healthCancel()
		if err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		snapshotRepo = cache.NewSnapshotRepository(redisClient, cfg.Snapshot.RedisKey)
	default:
		snapshotRepo = snapshot.NewFileRepository(cfg.Snapshot.Path, log)
	}

	// 4. Use case and initial state
	agencyUC := usecase.NewAgencyUseCase(snapshotRepo, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := agencyUC.Load(ctx); err != nil {
		if !errors.Is(err, errors.ErrSnapshotNotFound) {
			cancel()
			log.Fatal("Failed to load snapshot", zap.Error(err))
		}
		log.Info("No snapshot found, starting with empty agency")
	}
	cancel()

	// 5. Autosave
	var workers *worker.WorkerManager
	if cfg.Autosave.Enabled {
		workers = worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)
		workers.Register(autosave.NewAutosaveWorker(agencyUC, cfg.Autosave.Interval, log))
		if err := workers.Start(context.Background()); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

	// 6. Initialize HTTP Handlers
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewClientHandler(agencyUC, log),
		handler.NewTourHandler(agencyUC, log),
		handler.NewBookingHandler(agencyUC, log),
		handler.NewDocumentHandler(agencyUC, log),
		handler.NewSnapshotHandler(agencyUC, log),
	)

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// воркер автосохранения сам делает финальную запись при остановке
	if workers != nil {
		if err := workers.Stop(); err != nil {
			log.Error("Workers shutdown error", zap.Error(err))
		}
	} else if saved, err := agencyUC.SaveIfChanged(ctx); err != nil {
		log.Error("Final save failed", zap.Error(err))
	} else if saved {
		log.Info("Unsaved changes written")
	}

	log.Info("Server stopped successfully")
}
