package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"weldtrack-golang/internal/config"
	"weldtrack-golang/internal/storage"

	_ "github.com/go-sql-driver/mysql"
)

// Storage — снапшоты коллекций в общей MySQL, по строке на коллекцию.
// Вариант для цеха, где несколько машин ходят в одну базу.
type Storage struct {
	db *sql.DB
}

func New(cfg config.Config) (*Storage, error) {
	const op = "storage.mysql.New"

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=%v",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.ParseTime,
	)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS weldtrack_state (
			k VARCHAR(64) PRIMARY KEY,
			v MEDIUMTEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка создания таблицы состояния: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	const op = "storage.mysql.Get"

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
	const op = "storage.mysql.Set"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO weldtrack_state (k, v) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE v = VALUES(v)
	`, key, value)
	if err != nil {
		return fmt.Errorf("%s: ошибка записи снапшота %s: %w", op, key, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
