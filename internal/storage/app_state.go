package storage

// AppState — документ экспорта/импорта всего состояния
type AppState struct {
	Welders    []Welder   `json:"welders"`
	Rates      []Rate     `json:"rates"`
	PlanItems  []PlanItem `json:"planItems"`
	ExportDate string     `json:"exportDate"` // ISO-8601
	Version    string     `json:"version"`
}

// ExportVersion — версия формата документа экспорта
const ExportVersion = "1.0.0"
