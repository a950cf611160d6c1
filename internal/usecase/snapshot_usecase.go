package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/travel-agency/internal/pkg/errors"
	"github.com/travel-agency/internal/repository/snapshot"
	"github.com/travel-agency/internal/usecase/dto"
)

func (uc *AgencyUseCase) snapshotResponse(size int) *dto.SnapshotResponse {
	return &dto.SnapshotResponse{
		Revision: uc.revision,
		Clients:  len(uc.agency.Clients()),
		Tours:    len(uc.agency.Tours()),
		Bookings: len(uc.agency.Bookings()),
		Bytes:    size,
	}
}

// Save - запись текущего состояния в хранилище
func (uc *AgencyUseCase) Save(ctx context.Context) (*dto.SnapshotResponse, error) {
	uc.saveMu.Lock()
	defer uc.saveMu.Unlock()

	uc.mu.Lock()
	data, err := snapshot.Encode(uc.agency)
	revision := uc.revision
	resp := uc.snapshotResponse(len(data))
	uc.mu.Unlock()

	if err != nil {
		uc.logger.Error("Failed to encode snapshot", zap.Error(err))
		return nil, err
	}

	if err := uc.repo.Save(ctx, data); err != nil {
		uc.logger.Error("Failed to save snapshot",
			zap.Uint64("revision", revision),
			zap.Error(err),
		)
		return nil, err
	}

	uc.mu.Lock()
	uc.savedRevision = revision
	uc.mu.Unlock()

	uc.logger.Info("Snapshot saved",
		zap.Uint64("revision", revision),
		zap.Int("bytes", len(data)),
	)
	return resp, nil
}

// SaveIfChanged - запись только при наличии несохранённых изменений
func (uc *AgencyUseCase) SaveIfChanged(ctx context.Context) (bool, error) {
	if !uc.Dirty() {
		return false, nil
	}
	if _, err := uc.Save(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Load - чтение снапшота из хранилища. При любой ошибке текущее состояние не меняется.
func (uc *AgencyUseCase) Load(ctx context.Context) (*dto.SnapshotResponse, error) {
	data, err := uc.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, errors.ErrSnapshotNotFound) {
			uc.logger.Error("Failed to load snapshot", zap.Error(err))
		}
		return nil, err
	}

	resp, err := uc.replace(data, true)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Snapshot loaded",
		zap.Uint64("revision", resp.Revision),
		zap.Int("clients", resp.Clients),
		zap.Int("tours", resp.Tours),
		zap.Int("bookings", resp.Bookings),
	)
	return resp, nil
}

// Export - текущее состояние в формате снапшота
func (uc *AgencyUseCase) Export() ([]byte, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return snapshot.Encode(uc.agency)
}

// Import - замена состояния присланным снапшотом; изменения считаются несохранёнными
func (uc *AgencyUseCase) Import(data []byte) (*dto.SnapshotResponse, error) {
	resp, err := uc.replace(data, false)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Snapshot imported",
		zap.Uint64("revision", resp.Revision),
		zap.Int("bookings", resp.Bookings),
	)
	return resp, nil
}

func (uc *AgencyUseCase) replace(data []byte, saved bool) (*dto.SnapshotResponse, error) {
	agency, report, err := snapshot.Decode(data)
	if err != nil {
		uc.logger.Warn("Snapshot rejected", zap.Error(err))
		return nil, err
	}

	for _, id := range report.SkippedBookings {
		uc.logger.Warn("Booking skipped: client or tour is missing", zap.Int64("booking_id", id))
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.agency = agency
	uc.touch()
	if saved {
		uc.savedRevision = uc.revision
	}

	resp := uc.snapshotResponse(len(data))
	resp.SkippedBookings = report.SkippedBookings
	return resp, nil
}
