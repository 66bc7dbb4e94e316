package sqlitekv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"weldtrack-golang/internal/storage"

	_ "modernc.org/sqlite"
)

// Storage — локальный файл sqlite со снапшотами коллекций.
// Бэкенд по умолчанию: одна машина, никакой сети.
type Storage struct {
	db *sql.DB
}

func New(path string) (*Storage, error) {
	const op = "storage.sqlitekv.New"

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// запись снапшота должна завершиться до возврата мутации
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		return nil, fmt.Errorf("%s: pragma: %w", op, err)
	}
	if _, err := db.Exec(`PRAGMA synchronous=FULL`); err != nil {
		return nil, fmt.Errorf("%s: pragma: %w", op, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS weldtrack_state (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка создания таблицы состояния: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	const op = "storage.sqlitekv.Get"

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT v FROM weldtrack_state WHERE k = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%s: ошибка чтения снапшота %s: %w", op, key, err)
	}

	return value, nil
}

func (s *Storage) Set(ctx context.Context, key string, value string) error {
	const op = "storage.sqlitekv.Set"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO weldtrack_state (k, v) VALUES (?, ?)
		ON CONFLICT(k) DO UPDATE SET v = excluded.v
	`, key, value)
	if err != nil {
		return fmt.Errorf("%s: ошибка записи снапшота %s: %w", op, key, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
