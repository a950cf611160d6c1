package autosave

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/travel-agency/internal/worker"
)

// saveTimeout - ограничение на одну запись снапшота
const saveTimeout = 30 * time.Second

// Saver - то, что умеет сохранять изменения (AgencyUseCase)
type Saver interface {
	SaveIfChanged(ctx context.Context) (bool, error)
}

// AutosaveWorker периодически сохраняет снапшот, если данные изменились.
// При остановке делает последнюю попытку сохранения.
type AutosaveWorker struct {
	*worker.BaseWorker
	saver Saver
}

// NewAutosaveWorker создает новый AutosaveWorker
func NewAutosaveWorker(saver Saver, interval time.Duration, logger *zap.Logger) *AutosaveWorker {
	return &AutosaveWorker{
		BaseWorker: worker.NewBaseWorker("autosave", interval, logger),
		saver:      saver,
	}
}

// Start запускает воркер
func (w *AutosaveWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting AutosaveWorker", zap.Duration("interval", w.Interval()))

	ticker := time.NewTicker(w.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			w.save(context.Background())
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			// контекст уже отменён, последняя запись идёт с отдельным таймаутом
			w.save(context.Background())
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.C:
			w.save(ctx)
		}
	}
}

func (w *AutosaveWorker) save(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, saveTimeout)
	defer cancel()

	saved, err := w.saver.SaveIfChanged(ctx)
	if err != nil {
		w.Logger().Error("Autosave failed", zap.Error(err))
		return
	}
	if saved {
		w.Logger().Debug("Autosave completed")
	}
}
