// Команда audit загружает снапшот и печатает предупреждения по каждой заявке:
// недостающие проверенные документы и проблемы с данными туристов.
// Код выхода 1, если есть хотя бы одна неполная заявка.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/travel-agency/internal/config"
	"github.com/travel-agency/internal/domain"
	"github.com/travel-agency/internal/domain/repository"
	"github.com/travel-agency/internal/pkg/logger"
	"github.com/travel-agency/internal/repository/cache"
	"github.com/travel-agency/internal/repository/snapshot"
)

func main() {
	path := flag.String("file", "", "путь к файлу снапшота (по умолчанию из конфигурации)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log = log.With(zap.String("run_id", uuid.NewString()))

	var repo repository.SnapshotRepository
	switch {
	case *path != "":
		repo = snapshot.NewFileRepository(*path, log)
	case cfg.Snapshot.Backend == config.SnapshotBackendRedis:
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		repo = cache.NewSnapshotRepository(redisClient, cfg.Snapshot.RedisKey)
	default:
		repo = snapshot.NewFileRepository(cfg.Snapshot.Path, log)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	data, err := repo.Load(ctx)
	if err != nil {
		log.Fatal("Failed to load snapshot", zap.Error(err))
	}

	agency, report, err := snapshot.Decode(data)
	if err != nil {
		log.Fatal("Snapshot is invalid", zap.Error(err))
	}
	for _, id := range report.SkippedBookings {
		log.Warn("Booking skipped: client or tour is missing", zap.Int64("booking_id", id))
	}

	incomplete := printReport(agency)

	log.Info("Audit finished",
		zap.Int("bookings", len(agency.Bookings())),
		zap.Int("incomplete", incomplete),
	)
	if incomplete > 0 {
		os.Exit(1)
	}
}

func printReport(agency *domain.Agency) int {
	incomplete := 0
	for _, b := range agency.Bookings() {
		clientName := "?"
		if c := agency.ClientByID(b.ClientID()); c != nil {
			clientName = c.FullName()
		}
		tourName := "?"
		if t := b.Tour(); t != nil {
			tourName = t.Name
		}

		fmt.Printf("Booking #%d  %s  %s  [%s]  %.2f\n", b.ID(), clientName, tourName, b.Status(), b.TotalCost())

		warnings := append(b.DocumentWarnings(), b.ValidationWarnings()...)
		if len(warnings) == 0 {
			fmt.Println("  OK")
			continue
		}
		incomplete++
		for _, w := range warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
	return incomplete
}
