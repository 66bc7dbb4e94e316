package update

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type PlanUpdater interface {
	UpdatePlanItem(id string, target float64)
	DeletePlanItem(id string)
}

func UpdatePlanItem(log *slog.Logger, plan PlanUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req struct {
			Target float64 `json:"target"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Target <= 0 {
			http.Error(w, "План должен быть больше нуля", http.StatusBadRequest)
			return
		}

		plan.UpdatePlanItem(id, req.Target)
		render.JSON(w, r, map[string]string{"status": "success"})
	}
}

func DeletePlanItem(log *slog.Logger, plan PlanUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan.DeletePlanItem(chi.URLParam(r, "id"))
		render.JSON(w, r, map[string]string{"status": "success"})
	}
}
