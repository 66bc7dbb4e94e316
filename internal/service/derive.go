package service

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"weldtrack-golang/internal/storage"
)

// WorkDayHours — нормальная продолжительность смены; всё сверх — переработка
const WorkDayHours = 8.0

var articleRe = regexp.MustCompile(`^[A-Z0-9]+$`)

// NormalizeArticle приводит артикул к каноническому виду: убирает все пробелы,
// поднимает регистр. "xt 4 4" -> "XT44"
func NormalizeArticle(input string) string {
	return strings.ToUpper(strings.Join(strings.Fields(input), ""))
}

// IsValidArticle проверяет, что после нормализации артикул непустой и состоит
// только из латинских букв и цифр
func IsValidArticle(article string) bool {
	normalized := NormalizeArticle(article)
	return normalized != "" && articleRe.MatchString(normalized)
}

// CapitalizeLastName — фамилия с большой буквы, остальное строчными, без пробелов по краям
func CapitalizeLastName(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return trimmed
	}
	runes := []rune(strings.ToLower(trimmed))
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}

// TotalHours считает нормо-часы сварщика за дату: norm * quantity по всем
// записям этой даты. Записи без ставки вклада не дают — это не ошибка.
func TotalHours(entries []storage.WCEntry, rates []storage.Rate, date string) float64 {
	var total float64
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		for _, r := range rates {
			if r.Article == e.Article {
				total += r.Norm * e.Quantity
				break
			}
		}
	}
	return total
}

// ComputeOvertime — переработка за дату: max(0, нормо-часы - 8)
func ComputeOvertime(entries []storage.WCEntry, rates []storage.Rate, date string) float64 {
	overtime := TotalHours(entries, rates, date) - WorkDayHours
	if overtime < 0 {
		return 0
	}
	return overtime
}

// RecalcPlanCompleted пересчитывает completed/locked по всем позициям плана,
// суммируя записи всех сварщиков. Возвращает новый срез, вход не трогает.
func RecalcPlanCompleted(planItems []storage.PlanItem, welders []storage.Welder) []storage.PlanItem {
	result := make([]storage.PlanItem, len(planItems))
	for i, item := range planItems {
		var completed float64
		for _, w := range welders {
			for _, e := range w.Entries {
				if e.Article == item.Article {
					completed += e.Quantity
				}
			}
		}
		item.Completed = completed
		item.Locked = completed >= item.Target
		result[i] = item
	}
	return result
}

// FormatQty — количество всегда с двумя знаками: 1.3 -> "1.30"
func FormatQty(n float64) string {
	return strconv.FormatFloat(n, 'f', 2, 64)
}

// summaryByArticle агрегирует количество по артикулам и собирает строку вида
// "XT44 6.00 шт; XT55 3.00 шт"
func summaryByArticle(entries []storage.WCEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totals := make(map[string]float64)
	for _, e := range entries {
		totals[e.Article] += e.Quantity
	}

	articles := make([]string, 0, len(totals))
	for a := range totals {
		articles = append(articles, a)
	}
	sort.Strings(articles)

	parts := make([]string, 0, len(articles))
	for _, a := range articles {
		parts = append(parts, a+" "+FormatQty(totals[a])+" шт")
	}
	return strings.Join(parts, "; ")
}

// TodaySummary — сводка сварщика за дату для инфопанели
func TodaySummary(welder storage.Welder, today string) string {
	var dayEntries []storage.WCEntry
	for _, e := range welder.Entries {
		if e.Date == today {
			dayEntries = append(dayEntries, e)
		}
	}
	return summaryByArticle(dayEntries)
}

// AllTimeSummary — сводка сварщика за всё время
func AllTimeSummary(welder storage.Welder) string {
	return summaryByArticle(welder.Entries)
}

// WelderProgressByArticle — вклад каждого сварщика по артикулу, отсортирован по фамилии.
// Сварщики без записей по артикулу не попадают в список.
func WelderProgressByArticle(article string, welders []storage.Welder) []storage.WelderProgress {
	progress := make([]storage.WelderProgress, 0)
	for _, w := range welders {
		var total float64
		for _, e := range w.Entries {
			if e.Article == article {
				total += e.Quantity
			}
		}
		if total > 0 {
			progress = append(progress, storage.WelderProgress{
				LastName: w.LastName,
				Quantity: total,
			})
		}
	}
	sort.Slice(progress, func(i, j int) bool {
		return progress[i].LastName < progress[j].LastName
	})
	return progress
}

// OvertimeDates — даты с ненулевой переработкой, свежие сначала
func OvertimeDates(welder storage.Welder) []string {
	dates := make([]string, 0, len(welder.Overtime))
	for date, hours := range welder.Overtime {
		if hours > 0 {
			dates = append(dates, date)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}
