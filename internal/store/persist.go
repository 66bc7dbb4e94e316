package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"weldtrack-golang/internal/storage"

	"golang.org/x/sync/errgroup"
)

// Ключи снапшотов в долговременном хранилище, по одному на коллекцию
const (
	keyRates   = "weldtrack-rates"
	keyPlan    = "weldtrack-plan"
	keyWelders = "weldtrack-welders"
)

// migrateWelders добивает поля, которых не было в старых снапшотах.
// Идемпотентна, по уже мигрированным данным проходит без изменений.
func migrateWelders(welders []storage.Welder) []storage.Welder {
	out := make([]storage.Welder, len(welders))
	for i, w := range welders {
		if w.Entries == nil {
			w.Entries = []storage.WCEntry{}
		}
		if w.Overtime == nil {
			w.Overtime = make(map[string]float64)
		}
		if w.ManualOvertimeOverrides == nil {
			w.ManualOvertimeOverrides = make(map[string]bool)
		}
		out[i] = w
	}
	return out
}

// load читает три снапшота параллельно. Битый или отсутствующий снапшот —
// коллекция остаётся пустой, старт продолжается.
func (s *Store) load() {
	if s.kv == nil {
		return
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		loadCollection(ctx, s.kv, s.log, keyRates, &s.rates)
		return nil
	})
	g.Go(func() error {
		loadCollection(ctx, s.kv, s.log, keyPlan, &s.planItems)
		return nil
	})
	g.Go(func() error {
		loadCollection(ctx, s.kv, s.log, keyWelders, &s.welders)
		return nil
	})
	_ = g.Wait()

	s.welders = migrateWelders(s.welders)
}

func loadCollection[T any](ctx context.Context, kv storage.KV, log *slog.Logger, key string, dst *[]T) {
	const op = "store.loadCollection"

	raw, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error("ошибка чтения снапшота", slog.String("op", op), slog.String("key", key), slog.String("error", err.Error()))
		}
		return
	}

	var parsed []T
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		// падать нельзя — коллекция стартует пустой
		log.Error("битый снапшот, коллекция сброшена", slog.String("op", op), slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if parsed == nil {
		parsed = []T{}
	}

	*dst = parsed
}

// persist пишет снапшот коллекции синхронно, в рамках вызова мутации
func (s *Store) persist(key string, v any) {
	if s.kv == nil {
		return
	}
	const op = "store.persist"

	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error("ошибка сериализации снапшота", slog.String("op", op), slog.String("key", key), slog.String("error", err.Error()))
		return
	}

	if err := s.kv.Set(context.Background(), key, string(data)); err != nil {
		s.log.Error("ошибка записи снапшота", slog.String("op", op), slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (s *Store) persistRates()   { s.persist(keyRates, s.rates) }
func (s *Store) persistPlan()    { s.persist(keyPlan, s.planItems) }
func (s *Store) persistWelders() { s.persist(keyWelders, s.welders) }
