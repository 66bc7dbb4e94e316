package store

import (
	"weldtrack-golang/internal/service"
	"weldtrack-golang/internal/storage"
)

// AddPlanItem добавляет позицию плана. false — нет ставки на артикул
// или позиция по нему уже существует.
func (s *Store) AddPlanItem(article string, target float64) bool {
	normalized := service.NormalizeArticle(article)

	s.mu.Lock()
	defer s.mu.Unlock()

	hasRate := false
	for _, r := range s.rates {
		if r.Article == normalized {
			hasRate = true
			break
		}
	}
	if !hasRate {
		return false
	}

	for _, p := range s.planItems {
		if p.Article == normalized {
			return false
		}
	}

	s.planItems = append([]storage.PlanItem{{
		ID:        s.newID(),
		Article:   normalized,
		Target:    target,
		Completed: 0,
		Locked:    false,
	}}, s.planItems...)

	// свежесозданная позиция могла сразу закрыться старыми записями
	s.syncPlanLocked()

	s.persistPlan()
	return true
}

// UpdatePlanItem задаёт новый план, пересчитывает locked и поднимает
// позицию наверх. Неизвестный id — no-op.
func (s *Store) UpdatePlanItem(id string, target float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.planItems {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	item := s.planItems[idx]
	item.Target = target
	item.Locked = item.Completed >= target

	rest := make([]storage.PlanItem, 0, len(s.planItems))
	for _, p := range s.planItems {
		if p.ID != id {
			rest = append(rest, p)
		}
	}
	s.planItems = append([]storage.PlanItem{item}, rest...)

	s.persistPlan()
}

// DeletePlanItem удаляет позицию плана; записи сварщиков не трогает
func (s *Store) DeletePlanItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]storage.PlanItem, 0, len(s.planItems))
	for _, p := range s.planItems {
		if p.ID != id {
			items = append(items, p)
		}
	}
	s.planItems = items

	s.persistPlan()
}
