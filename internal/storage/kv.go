package storage

import (
	"context"
	"errors"
)

// ErrNotFound возвращается бэкендом, если по ключу ничего не сохранено
var ErrNotFound = errors.New("storage: key not found")

// KV — долговременное key-value хранилище снапшотов коллекций.
// Get и Set синхронные; по одному ключу на коллекцию.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}
