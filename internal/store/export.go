package store

import (
	"strings"
	"time"

	"weldtrack-golang/internal/storage"
)

// Export собирает документ со всем состоянием. Состояние не меняет.
func (s *Store) Export() storage.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return storage.AppState{
		Welders:    copyWelders(s.welders),
		Rates:      copyRates(s.rates),
		PlanItems:  copyPlanItems(s.planItems),
		ExportDate: s.now().UTC().Format(time.RFC3339),
		Version:    storage.ExportVersion,
	}
}

// Import вливает внешний снапшот в текущее состояние. Всегда слияние,
// никогда не замена: существующие ставки, позиции плана и записи не
// перезаписываются и не удаляются.
func (s *Store) Import(data storage.AppState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// ставки — только новые артикулы
	existingRateArticles := make(map[string]bool, len(s.rates))
	for _, r := range s.rates {
		existingRateArticles[r.Article] = true
	}
	for _, r := range data.Rates {
		if !existingRateArticles[r.Article] {
			s.rates = append(s.rates, r)
		}
	}

	// план — только новые артикулы
	existingPlanArticles := make(map[string]bool, len(s.planItems))
	for _, p := range s.planItems {
		existingPlanArticles[p.Article] = true
	}
	for _, p := range data.PlanItems {
		if !existingPlanArticles[p.Article] {
			s.planItems = append(s.planItems, p)
		}
	}

	// сварщики — матчим по фамилии без учёта регистра
	byLastName := make(map[string]int, len(s.welders))
	for i, w := range s.welders {
		byLastName[strings.ToLower(w.LastName)] = i
	}

	for _, imported := range migrateWelders(data.Welders) {
		idx, ok := byLastName[strings.ToLower(imported.LastName)]
		if !ok {
			s.welders = append(s.welders, imported)
			continue
		}
		existing := &s.welders[idx]

		// записи — докидываем только новые id
		existingEntryIDs := make(map[string]bool, len(existing.Entries))
		for _, e := range existing.Entries {
			existingEntryIDs[e.ID] = true
		}
		for _, e := range imported.Entries {
			if !existingEntryIDs[e.ID] {
				existing.Entries = append(existing.Entries, e)
			}
		}

		// переработка — только даты, которых ещё нет
		for date, hours := range imported.Overtime {
			if _, exists := existing.Overtime[date]; !exists {
				existing.Overtime[date] = hours
			}
		}

		// ручные фиксации — входящие побеждают
		for date, flag := range imported.ManualOvertimeOverrides {
			existing.ManualOvertimeOverrides[date] = flag
		}
	}

	s.syncPlanLocked()

	s.persistRates()
	s.persistPlan()
	s.persistWelders()
}
