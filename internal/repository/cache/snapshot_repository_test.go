package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/travel-agency/internal/pkg/errors"
)

// getTestRedisClient - клиент к локальному redis, тест пропускается если redis недоступен
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("Redis not available for integration tests: %v", err)
	}
	return client
}

func TestSnapshotRepository_SaveLoad(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	key := "test:agency:" + uuid.NewString()
	repo := newSnapshotRepository(client, key, zap.NewNop())
	ctx := context.Background()
	defer client.Del(ctx, key, repo.historyKey())

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, errors.ErrSnapshotNotFound)

	for i := 0; i < historySize+2; i++ {
		require.NoError(t, repo.Save(ctx, []byte(`{"clients": []}`)))
	}
	require.NoError(t, repo.Save(ctx, []byte(`{"tours": []}`)))

	data, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"tours": []}`, string(data))

	n, err := client.LLen(ctx, repo.historyKey()).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(historySize), n)
}

func TestSnapshotRepository_Unavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	repo := newSnapshotRepository(client, "test:agency", zap.NewNop())
	ctx := context.Background()

	assert.ErrorIs(t, repo.Save(ctx, []byte(`{}`)), errors.ErrSnapshotIO)
	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, errors.ErrSnapshotIO)
}
