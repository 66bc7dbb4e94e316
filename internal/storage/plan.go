package storage

// PlanItem — плановое задание по одному артикулу.
// Completed и Locked никогда не задаются снаружи — только пересчётом.
type PlanItem struct {
	ID        string  `json:"id"`
	Article   string  `json:"article"` // должен существовать в ставках
	Target    float64 `json:"target"`  // план, шт
	Completed float64 `json:"completed"`
	Locked    bool    `json:"locked"` // true когда completed >= target
}
