package store

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"weldtrack-golang/internal/service"
	"weldtrack-golang/internal/storage"

	"github.com/google/uuid"
)

// Store — единственный владелец состояния: ставки, план, сварщики.
// Все мутации идут через его методы и выполняются под одним мьютексом,
// наружу отдаются только копии.
type Store struct {
	mu        sync.Mutex
	rates     []storage.Rate
	planItems []storage.PlanItem
	welders   []storage.Welder

	kv  storage.KV // nil — работаем чисто в памяти, без персистентности
	log *slog.Logger

	now   func() time.Time
	newID func() string
}

type Option func(*Store)

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator подменяет генератор идентификаторов (для тестов)
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New создаёт стор и загружает снапшоты коллекций из kv.
// Битые данные в отдельной коллекции не валят старт — коллекция
// просто остаётся пустой.
func New(kv storage.KV, log *slog.Logger, opts ...Option) *Store {
	s := &Store{
		rates:     []storage.Rate{},
		planItems: []storage.PlanItem{},
		welders:   []storage.Welder{},
		kv:        kv,
		log:       log,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.load()

	return s
}

// Rates — снапшот ставок
func (s *Store) Rates() []storage.Rate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRates(s.rates)
}

// PlanItems — снапшот плана. Completed/Locked актуальны: стор пересчитывает
// их после каждой мутации записей.
func (s *Store) PlanItems() []storage.PlanItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyPlanItems(s.planItems)
}

// UnlockedPlanItems — открытые позиции плана (подсказки в рабочей карте)
func (s *Store) UnlockedPlanItems() []storage.PlanItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlocked := make([]storage.PlanItem, 0)
	for _, p := range s.planItems {
		if !p.Locked {
			unlocked = append(unlocked, p)
		}
	}
	return unlocked
}

// Welders — снапшот сварщиков вместе с рабочими картами
func (s *Store) Welders() []storage.Welder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyWelders(s.welders)
}

// WelderByID возвращает копию сварщика, ok=false если такого нет
func (s *Store) WelderByID(id string) (storage.Welder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.welders {
		if w.ID == id {
			return copyWelder(w), true
		}
	}
	return storage.Welder{}, false
}

// ArticlesWithRates — отсортированные артикулы, у которых есть ставка
func (s *Store) ArticlesWithRates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles := make([]string, 0, len(s.rates))
	for _, r := range s.rates {
		articles = append(articles, r.Article)
	}
	sort.Strings(articles)
	return articles
}

// ArticlesWithPlan — отсортированные артикулы, по которым есть план
func (s *Store) ArticlesWithPlan() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles := make([]string, 0, len(s.planItems))
	for _, p := range s.planItems {
		articles = append(articles, p.Article)
	}
	sort.Strings(articles)
	return articles
}

// SyncPlanCompleted — явный пересчёт completed/locked по всему плану.
// Можно звать в любой момент, результат идемпотентен.
func (s *Store) SyncPlanCompleted() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.syncPlanLocked()
	s.persistPlan()
}

// ClearAll полностью очищает все коллекции
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rates = []storage.Rate{}
	s.planItems = []storage.PlanItem{}
	s.welders = []storage.Welder{}

	s.persistRates()
	s.persistPlan()
	s.persistWelders()
}

// syncPlanLocked пересчитывает план из записей сварщиков; мьютекс уже взят
func (s *Store) syncPlanLocked() {
	s.planItems = service.RecalcPlanCompleted(s.planItems, s.welders)
}

// refreshOvertimeLocked пересчитывает переработку сварщика за дату,
// если она не зафиксирована вручную
func (s *Store) refreshOvertimeLocked(w *storage.Welder, date string) {
	if w.ManualOvertimeOverrides[date] {
		return
	}
	if w.Overtime == nil {
		w.Overtime = make(map[string]float64)
	}
	w.Overtime[date] = service.ComputeOvertime(w.Entries, s.rates, date)
}

func copyRates(rates []storage.Rate) []storage.Rate {
	out := make([]storage.Rate, len(rates))
	copy(out, rates)
	return out
}

func copyPlanItems(items []storage.PlanItem) []storage.PlanItem {
	out := make([]storage.PlanItem, len(items))
	copy(out, items)
	return out
}

func copyWelder(w storage.Welder) storage.Welder {
	out := w
	out.Entries = make([]storage.WCEntry, len(w.Entries))
	copy(out.Entries, w.Entries)
	out.Overtime = make(map[string]float64, len(w.Overtime))
	for k, v := range w.Overtime {
		out.Overtime[k] = v
	}
	out.ManualOvertimeOverrides = make(map[string]bool, len(w.ManualOvertimeOverrides))
	for k, v := range w.ManualOvertimeOverrides {
		out.ManualOvertimeOverrides[k] = v
	}
	return out
}

func copyWelders(welders []storage.Welder) []storage.Welder {
	out := make([]storage.Welder, len(welders))
	for i, w := range welders {
		out[i] = copyWelder(w)
	}
	return out
}
