package get

import (
	"log/slog"
	"net/http"

	"weldtrack-golang/internal/storage"

	"github.com/go-chi/render"
)

type PlanProvider interface {
	PlanItems() []storage.PlanItem
	UnlockedPlanItems() []storage.PlanItem
	ArticlesWithPlan() []string
}

// GetPlan отдаёт план с актуальными completed/locked
func GetPlan(log *slog.Logger, plan PlanProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, plan.PlanItems())
	}
}

// GetUnlockedPlan — открытые позиции для подсказок в рабочей карте
func GetUnlockedPlan(log *slog.Logger, plan PlanProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, plan.UnlockedPlanItems())
	}
}

// GetPlanArticles — артикулы с планом
func GetPlanArticles(log *slog.Logger, plan PlanProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, plan.ArticlesWithPlan())
	}
}
