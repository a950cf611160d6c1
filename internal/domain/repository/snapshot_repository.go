package repository

import "context"

// SnapshotRepository определяет хранилище снапшота агентства.
// Данные передаются уже закодированными, формат задаёт кодек.
type SnapshotRepository interface {
	// Save перезаписывает снапшот целиком
	Save(ctx context.Context, data []byte) error

	// Load возвращает последний сохранённый снапшот или errors.ErrSnapshotNotFound
	Load(ctx context.Context) ([]byte, error)
}
