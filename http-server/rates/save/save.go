package save

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"weldtrack-golang/internal/service"

	"github.com/go-chi/render"
)

type RateSaver interface {
	AddRate(article string, norm float64) bool
}

func SaveRate(log *slog.Logger, rates RateSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rates.SaveRate"

		var req struct {
			Article string  `json:"article"`
			Norm    float64 `json:"norm"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if !service.IsValidArticle(req.Article) {
			http.Error(w, "Некорректный артикул", http.StatusBadRequest)
			return
		}
		if req.Norm <= 0 {
			http.Error(w, "Норма должна быть больше нуля", http.StatusBadRequest)
			return
		}

		if !rates.AddRate(req.Article, req.Norm) {
			log.Warn("Ставка с таким артикулом уже есть", slog.String("op", op), slog.String("article", req.Article))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, map[string]string{"status": "error", "message": "артикул уже существует"})
			return
		}

		render.JSON(w, r, map[string]string{"status": "success"})
	}
}
