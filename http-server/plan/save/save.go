package save

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"weldtrack-golang/internal/service"

	"github.com/go-chi/render"
)

type PlanSaver interface {
	AddPlanItem(article string, target float64) bool
}

func SavePlanItem(log *slog.Logger, plan PlanSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.SavePlanItem"

		var req struct {
			Article string  `json:"article"`
			Target  float64 `json:"target"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if !service.IsValidArticle(req.Article) || req.Target <= 0 {
			http.Error(w, "Некорректные данные позиции плана", http.StatusBadRequest)
			return
		}

		if !plan.AddPlanItem(req.Article, req.Target) {
			log.Warn("Позиция плана отклонена", slog.String("op", op), slog.String("article", req.Article))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, map[string]string{"status": "error", "message": "нет ставки на артикул или позиция уже есть"})
			return
		}

		render.JSON(w, r, map[string]string{"status": "success"})
	}
}
