package update

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"weldtrack-golang/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type RateUpdater interface {
	UpdateRate(id string, article string, norm float64) bool
}

func UpdateRate(log *slog.Logger, rates RateUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rates.UpdateRate"

		id := chi.URLParam(r, "id")

		var req struct {
			Article string  `json:"article"`
			Norm    float64 `json:"norm"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if !service.IsValidArticle(req.Article) || req.Norm <= 0 {
			http.Error(w, "Некорректные данные ставки", http.StatusBadRequest)
			return
		}

		if !rates.UpdateRate(id, req.Article, req.Norm) {
			log.Warn("Обновление ставки отклонено", slog.String("op", op), slog.String("id", id))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, map[string]string{"status": "error", "message": "ставка не найдена или артикул занят"})
			return
		}

		render.JSON(w, r, map[string]string{"status": "success"})
	}
}
