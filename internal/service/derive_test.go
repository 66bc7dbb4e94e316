package service

import (
	"testing"
	"weldtrack-golang/internal/storage"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeArticle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"xt 44", "XT44"},
		{"  Xt44  ", "XT44"},
		{"xt 4 4", "XT44"},
		{"XT44", "XT44"},
		{"", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeArticle(c.in), "вход: %q", c.in)
	}
}

func TestIsValidArticle(t *testing.T) {
	assert.True(t, IsValidArticle("xt 44"))
	assert.True(t, IsValidArticle("A1"))
	assert.False(t, IsValidArticle(""))
	assert.False(t, IsValidArticle("   "))
	assert.False(t, IsValidArticle("XT-44"))
	assert.False(t, IsValidArticle("ХТ44")) // кириллица не проходит
}

func TestCapitalizeLastName(t *testing.T) {
	assert.Equal(t, "Иванов", CapitalizeLastName("  иВАНОВ "))
	assert.Equal(t, "Smith", CapitalizeLastName("smith"))
	assert.Equal(t, "", CapitalizeLastName("   "))
}

func newEntry(article string, qty float64, date string) storage.WCEntry {
	return storage.WCEntry{ID: "e-" + article + date, Article: article, Quantity: qty, Date: date}
}

func TestComputeOvertime(t *testing.T) {
	rates := []storage.Rate{
		{ID: "r1", Article: "XT44", Norm: 1.5},
		{ID: "r2", Article: "XT55", Norm: 2.0},
	}
	entries := []storage.WCEntry{
		newEntry("XT44", 6, "2024-01-01"), // 9 часов
		newEntry("XT55", 1, "2024-01-02"), // другая дата, не считается
	}

	// 9 - 8 = 1
	assert.InDelta(t, 1.0, ComputeOvertime(entries, rates, "2024-01-01"), 1e-9)

	// меньше 8 часов — переработки нет
	assert.Zero(t, ComputeOvertime(entries, rates, "2024-01-02"))

	// записей нет вообще
	assert.Zero(t, ComputeOvertime(entries, rates, "2024-01-03"))
}

func TestComputeOvertime_UnknownArticleIgnored(t *testing.T) {
	rates := []storage.Rate{{ID: "r1", Article: "XT44", Norm: 3.0}}
	entries := []storage.WCEntry{
		newEntry("XT44", 3, "2024-01-01"),   // 9 часов
		newEntry("NOPE99", 5, "2024-01-01"), // ставки нет — вклад 0, не ошибка
	}

	assert.InDelta(t, 1.0, ComputeOvertime(entries, rates, "2024-01-01"), 1e-9)
}

func TestRecalcPlanCompleted(t *testing.T) {
	plan := []storage.PlanItem{
		{ID: "p1", Article: "XT44", Target: 10},
		{ID: "p2", Article: "XT55", Target: 3},
	}
	welders := []storage.Welder{
		{ID: "w1", LastName: "Иванов", Entries: []storage.WCEntry{
			newEntry("XT44", 4, "2024-01-01"),
			newEntry("XT55", 3, "2024-01-01"),
		}},
		{ID: "w2", LastName: "Петров", Entries: []storage.WCEntry{
			newEntry("XT44", 2, "2024-01-02"),
		}},
	}

	got := RecalcPlanCompleted(plan, welders)

	assert.InDelta(t, 6.0, got[0].Completed, 1e-9)
	assert.False(t, got[0].Locked)
	assert.InDelta(t, 3.0, got[1].Completed, 1e-9)
	assert.True(t, got[1].Locked)

	// вход не изменился
	assert.Zero(t, plan[0].Completed)
}

func TestRecalcPlanCompleted_Idempotent(t *testing.T) {
	plan := []storage.PlanItem{{ID: "p1", Article: "XT44", Target: 5}}
	welders := []storage.Welder{
		{ID: "w1", Entries: []storage.WCEntry{newEntry("XT44", 5, "2024-01-01")}},
	}

	once := RecalcPlanCompleted(plan, welders)
	twice := RecalcPlanCompleted(once, welders)

	assert.Equal(t, once, twice)
}

func TestSummaries(t *testing.T) {
	w := storage.Welder{
		LastName: "Иванов",
		Entries: []storage.WCEntry{
			{ID: "1", Article: "XT66", Quantity: 1.3, Date: "2024-02-01"},
			{ID: "2", Article: "XT22", Quantity: 0.4, Date: "2024-02-01"},
			{ID: "3", Article: "XT66", Quantity: 2, Date: "2024-01-15"},
		},
	}

	assert.Equal(t, "XT22 0.40 шт; XT66 1.30 шт", TodaySummary(w, "2024-02-01"))
	assert.Equal(t, "XT22 0.40 шт; XT66 3.30 шт", AllTimeSummary(w))
	assert.Equal(t, "", TodaySummary(w, "2024-03-01"))
}

func TestWelderProgressByArticle(t *testing.T) {
	welders := []storage.Welder{
		{LastName: "Петров", Entries: []storage.WCEntry{newEntry("XT44", 2, "2024-01-01")}},
		{LastName: "Иванов", Entries: []storage.WCEntry{newEntry("XT44", 4, "2024-01-01")}},
		{LastName: "Сидоров", Entries: []storage.WCEntry{newEntry("XT55", 1, "2024-01-01")}},
	}

	got := WelderProgressByArticle("XT44", welders)

	assert.Len(t, got, 2)
	// сортировка по фамилии
	assert.Equal(t, "Иванов", got[0].LastName)
	assert.InDelta(t, 4.0, got[0].Quantity, 1e-9)
	assert.Equal(t, "Петров", got[1].LastName)
}

func TestOvertimeDates(t *testing.T) {
	w := storage.Welder{
		Overtime: map[string]float64{
			"2024-01-01": 1,
			"2024-01-05": 0, // нулевые не показываем
			"2024-02-01": 2.5,
		},
	}

	assert.Equal(t, []string{"2024-02-01", "2024-01-01"}, OvertimeDates(w))
}
