package storage

// Rate — норма времени на единицу артикула
type Rate struct {
	ID      string  `json:"id"`
	Article string  `json:"article"` // всегда ВЕРХНИЙ регистр, только буквы и цифры
	Norm    float64 `json:"norm"`    // часов на 1 шт
}
