package store

import (
	"strings"

	"weldtrack-golang/internal/service"
	"weldtrack-golang/internal/storage"
)

// AddWelder добавляет сварщика. false — фамилия уже занята
// (сравнение без учёта регистра).
func (s *Store) AddWelder(lastName string) bool {
	capitalized := service.CapitalizeLastName(lastName)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.welders {
		if strings.EqualFold(w.LastName, capitalized) {
			return false
		}
	}

	s.welders = append([]storage.Welder{{
		ID:                      s.newID(),
		LastName:                capitalized,
		Entries:                 []storage.WCEntry{},
		Overtime:                map[string]float64{},
		ManualOvertimeOverrides: map[string]bool{},
	}}, s.welders...)

	s.persistWelders()
	return true
}

// DeleteWelder удаляет сварщика и убирает его вклад из плана
func (s *Store) DeleteWelder(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	welders := make([]storage.Welder, 0, len(s.welders))
	for _, w := range s.welders {
		if w.ID != id {
			welders = append(welders, w)
		}
	}
	s.welders = welders

	s.syncPlanLocked()

	s.persistWelders()
	s.persistPlan()
}

// AddWCEntry вносит работу в карту сварщика. Запись с тем же артикулом и
// датой не дублируется — количество суммируется; это разрешено и для
// закрытой позиции плана (корректировка уже внесённого). Новая запись по
// закрытой позиции отклоняется.
func (s *Store) AddWCEntry(welderID string, article string, quantity float64, date string) bool {
	normalized := service.NormalizeArticle(article)

	s.mu.Lock()
	defer s.mu.Unlock()

	var planItem *storage.PlanItem
	for i := range s.planItems {
		if s.planItems[i].Article == normalized {
			planItem = &s.planItems[i]
			break
		}
	}
	if planItem == nil {
		return false
	}

	widx := -1
	for i := range s.welders {
		if s.welders[i].ID == welderID {
			widx = i
			break
		}
	}
	if widx == -1 {
		return false
	}
	w := &s.welders[widx]

	eidx := -1
	for i, e := range w.Entries {
		if e.Article == normalized && e.Date == date {
			eidx = i
			break
		}
	}

	if eidx != -1 {
		// суммируем в существующую запись
		w.Entries[eidx].Quantity += quantity
		w.Entries[eidx].UpdatedAt = s.now().UnixMilli()
	} else {
		if planItem.Locked {
			return false
		}
		w.Entries = append([]storage.WCEntry{{
			ID:        s.newID(),
			Article:   normalized,
			Quantity:  quantity,
			Date:      date,
			UpdatedAt: s.now().UnixMilli(),
		}}, w.Entries...)
	}

	s.refreshOvertimeLocked(w, date)
	s.syncPlanLocked()

	s.persistWelders()
	s.persistPlan()
	return true
}

// UpdateWCEntry заменяет количество в записи и поднимает её наверх карты.
// Неизвестный сварщик или запись — no-op.
func (s *Store) UpdateWCEntry(welderID string, entryID string, quantity float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	widx := -1
	for i := range s.welders {
		if s.welders[i].ID == welderID {
			widx = i
			break
		}
	}
	if widx == -1 {
		return
	}
	w := &s.welders[widx]

	eidx := -1
	for i, e := range w.Entries {
		if e.ID == entryID {
			eidx = i
			break
		}
	}
	if eidx == -1 {
		return
	}

	entry := w.Entries[eidx]
	entry.Quantity = quantity
	entry.UpdatedAt = s.now().UnixMilli()

	rest := make([]storage.WCEntry, 0, len(w.Entries))
	for _, e := range w.Entries {
		if e.ID != entryID {
			rest = append(rest, e)
		}
	}
	w.Entries = append([]storage.WCEntry{entry}, rest...)

	s.refreshOvertimeLocked(w, entry.Date)
	s.syncPlanLocked()

	s.persistWelders()
	s.persistPlan()
}

// DeleteWCEntry удаляет запись из карты сварщика
func (s *Store) DeleteWCEntry(welderID string, entryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	widx := -1
	for i := range s.welders {
		if s.welders[i].ID == welderID {
			widx = i
			break
		}
	}
	if widx == -1 {
		return
	}
	w := &s.welders[widx]

	var date string
	found := false
	for _, e := range w.Entries {
		if e.ID == entryID {
			date = e.Date
			found = true
			break
		}
	}
	if !found {
		return
	}

	entries := make([]storage.WCEntry, 0, len(w.Entries))
	for _, e := range w.Entries {
		if e.ID != entryID {
			entries = append(entries, e)
		}
	}
	w.Entries = entries

	s.refreshOvertimeLocked(w, date)
	s.syncPlanLocked()

	s.persistWelders()
	s.persistPlan()
}

// SetManualOvertime фиксирует переработку за дату вручную: автопересчёт
// по этой дате выключается до явного сброса
func (s *Store) SetManualOvertime(welderID string, date string, hours float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.welders {
		w := &s.welders[i]
		if w.ID != welderID {
			continue
		}
		if w.Overtime == nil {
			w.Overtime = make(map[string]float64)
		}
		if w.ManualOvertimeOverrides == nil {
			w.ManualOvertimeOverrides = make(map[string]bool)
		}
		w.Overtime[date] = hours
		w.ManualOvertimeOverrides[date] = true

		s.persistWelders()
		return
	}
}

// ResetOvertimeOverride снимает ручную фиксацию и сразу пересчитывает
// переработку за дату из текущих записей
func (s *Store) ResetOvertimeOverride(welderID string, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.welders {
		w := &s.welders[i]
		if w.ID != welderID {
			continue
		}
		delete(w.ManualOvertimeOverrides, date)
		s.refreshOvertimeLocked(w, date)

		s.persistWelders()
		return
	}
}
