package snapshot

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/travel-agency/internal/domain/repository"
	"github.com/travel-agency/internal/pkg/errors"
)

type fileRepository struct {
	path   string
	logger *zap.Logger
}

// NewFileRepository - снапшот в локальном файле. Запись атомарная: временный файл + rename.
func NewFileRepository(path string, logger *zap.Logger) repository.SnapshotRepository {
	return &fileRepository{
		path:   path,
		logger: logger,
	}
}

func (r *fileRepository) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return r.ioError("failed to create snapshot directory", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return r.ioError("failed to create temporary file", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return r.ioError("failed to write snapshot", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return r.ioError("failed to sync snapshot", err)
	}
	if err := tmp.Close(); err != nil {
		return r.ioError("failed to close snapshot", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return r.ioError("failed to replace snapshot", err)
	}

	r.logger.Debug("Snapshot saved", zap.String("path", r.path), zap.Int("bytes", len(data)))
	return nil
}

func (r *fileRepository) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.ErrSnapshotNotFound.WithMessage("snapshot file %s not found", r.path)
	}
	if err != nil {
		return nil, r.ioError("cannot open file", err)
	}

	r.logger.Debug("Snapshot loaded", zap.String("path", r.path), zap.Int("bytes", len(data)))
	return data, nil
}

func (r *fileRepository) ioError(message string, err error) error {
	r.logger.Error("Snapshot file error",
		zap.String("path", r.path),
		zap.String("operation", message),
		zap.Error(err),
	)
	return errors.ErrSnapshotIO.WithMessage("%s: %s", message, r.path).Wrap(err)
}
