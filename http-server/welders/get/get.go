package get

import (
	"log/slog"
	"net/http"
	"time"

	"weldtrack-golang/internal/service"
	"weldtrack-golang/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type WelderProvider interface {
	Welders() []storage.Welder
	WelderByID(id string) (storage.Welder, bool)
}

// GetWelders отдаёт всех сварщиков вместе с рабочими картами
func GetWelders(log *slog.Logger, welders WelderProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, welders.Welders())
	}
}

// GetWelderProgress — вклад сварщиков по артикулу (инфопанель плана)
func GetWelderProgress(log *slog.Logger, welders WelderProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		article := service.NormalizeArticle(r.URL.Query().Get("article"))
		if article == "" {
			http.Error(w, "Не указан артикул", http.StatusBadRequest)
			return
		}

		render.JSON(w, r, service.WelderProgressByArticle(article, welders.Welders()))
	}
}

// GetWelderSummary — сводка по одному сварщику: за сегодня, за всё время,
// даты с переработкой
func GetWelderSummary(log *slog.Logger, welders WelderProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.welders.GetWelderSummary"

		id := chi.URLParam(r, "id")
		welder, ok := welders.WelderByID(id)
		if !ok {
			log.Warn("Сварщик не найден", slog.String("op", op), slog.String("id", id))
			http.Error(w, "Сварщик не найден", http.StatusNotFound)
			return
		}

		date := r.URL.Query().Get("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		render.JSON(w, r, map[string]interface{}{
			"lastName":      welder.LastName,
			"todaySummary":  service.TodaySummary(welder, date),
			"allTime":       service.AllTimeSummary(welder),
			"overtimeDates": service.OvertimeDates(welder),
		})
	}
}
