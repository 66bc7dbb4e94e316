package store

import (
	"weldtrack-golang/internal/service"
	"weldtrack-golang/internal/storage"
)

// AddRate добавляет ставку. false — такой артикул уже есть.
func (s *Store) AddRate(article string, norm float64) bool {
	normalized := service.NormalizeArticle(article)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rates {
		if r.Article == normalized {
			return false
		}
	}

	s.rates = append([]storage.Rate{{
		ID:      s.newID(),
		Article: normalized,
		Norm:    norm,
	}}, s.rates...)

	s.persistRates()
	return true
}

// UpdateRate меняет артикул/норму ставки и поднимает её наверх.
// false — ставки с таким id нет или артикул занят другой ставкой.
func (s *Store) UpdateRate(id string, article string, norm float64) bool {
	normalized := service.NormalizeArticle(article)

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, r := range s.rates {
		if r.ID == id {
			found = true
		} else if r.Article == normalized {
			// конфликт с чужим артикулом
			return false
		}
	}
	if !found {
		return false
	}

	rest := make([]storage.Rate, 0, len(s.rates))
	for _, r := range s.rates {
		if r.ID != id {
			rest = append(rest, r)
		}
	}
	s.rates = append([]storage.Rate{{ID: id, Article: normalized, Norm: norm}}, rest...)

	s.persistRates()
	return true
}

// DeleteRate удаляет ставку и каскадом все позиции плана с её артикулом.
// Записи сварщиков по этому артикулу остаются как история — они просто
// перестают попадать в агрегаты.
func (s *Store) DeleteRate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var article string
	found := false
	for _, r := range s.rates {
		if r.ID == id {
			article = r.Article
			found = true
			break
		}
	}
	if !found {
		return
	}

	rates := make([]storage.Rate, 0, len(s.rates))
	for _, r := range s.rates {
		if r.ID != id {
			rates = append(rates, r)
		}
	}
	s.rates = rates

	planItems := make([]storage.PlanItem, 0, len(s.planItems))
	for _, p := range s.planItems {
		if p.Article != article {
			planItems = append(planItems, p)
		}
	}
	s.planItems = planItems

	s.syncPlanLocked()

	s.persistRates()
	s.persistPlan()
}
