package cache

import (
	"context"
	stderrors "errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/travel-agency/internal/domain/repository"
	"github.com/travel-agency/internal/pkg/errors"
)

// historySize - сколько предыдущих снапшотов хранится в списке <key>:history
const historySize = 5

type snapshotRepository struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

// NewSnapshotRepository - снапшот хранится целиком в одном ключе redis
func NewSnapshotRepository(r *Redis, key string) repository.SnapshotRepository {
	return newSnapshotRepository(r.Client(), key, r.logger)
}

func newSnapshotRepository(client *redis.Client, key string, logger *zap.Logger) *snapshotRepository {
	return &snapshotRepository{
		client: client,
		key:    key,
		logger: logger,
	}
}

func (r *snapshotRepository) historyKey() string {
	return r.key + ":history"
}

// Save записывает снапшот и кладёт его копию в ограниченную историю одной транзакцией
func (r *snapshotRepository) Save(ctx context.Context, data []byte) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key, data, 0)
		pipe.LPush(ctx, r.historyKey(), data)
		pipe.LTrim(ctx, r.historyKey(), 0, historySize-1)
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to save snapshot", zap.String("key", r.key), zap.Error(err))
		return errors.ErrSnapshotIO.WithMessage("redis save failed: %v", err).Wrap(err)
	}

	r.logger.Debug("Snapshot saved", zap.String("key", r.key), zap.Int("bytes", len(data)))
	return nil
}

func (r *snapshotRepository) Load(ctx context.Context) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, errors.ErrSnapshotNotFound.WithMessage("snapshot key %s not found", r.key)
	}
	if err != nil {
		r.logger.Error("Failed to load snapshot", zap.String("key", r.key), zap.Error(err))
		return nil, errors.ErrSnapshotIO.WithMessage("redis load failed: %v", err).Wrap(err)
	}

	r.logger.Debug("Snapshot loaded", zap.String("key", r.key), zap.Int("bytes", len(val)))
	return val, nil
}
