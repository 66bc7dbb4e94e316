package storage

// WCEntry — одна запись в рабочей карте сварщика
type WCEntry struct {
	ID        string  `json:"id"`
	Article   string  `json:"article"` // должен существовать в плане
	Quantity  float64 `json:"quantity"`
	Date      string  `json:"date"`      // "YYYY-MM-DD"
	UpdatedAt int64   `json:"updatedAt"` // unix millis, для сортировки (свежие сверху)
}

// Welder — сварщик с рабочей картой
type Welder struct {
	ID       string    `json:"id"`
	LastName string    `json:"lastName"`
	Entries  []WCEntry `json:"entries"`
	// ключ — дата "YYYY-MM-DD", значение — часы переработки
	Overtime map[string]float64 `json:"overtime"`
	// даты, где переработка выставлена вручную и не пересчитывается
	ManualOvertimeOverrides map[string]bool `json:"manualOvertimeOverrides"`
}

// WelderProgress — вклад сварщика по одному артикулу (инфопанель рабочей карты)
type WelderProgress struct {
	LastName string  `json:"lastName"`
	Quantity float64 `json:"quantity"`
}
