package save

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"weldtrack-golang/internal/storage"

	"github.com/go-chi/render"
)

type Importer interface {
	Import(data storage.AppState)
	ClearAll()
}

// ImportData вливает снапшот в текущее состояние. Всегда слияние:
// существующие данные не перезаписываются и не удаляются.
func ImportData(log *slog.Logger, store Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.transfer.ImportData"

		var data storage.AppState
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		store.Import(data)

		log.Info("Импорт выполнен", slog.String("op", op),
			slog.Int("rates", len(data.Rates)),
			slog.Int("planItems", len(data.PlanItems)),
			slog.Int("welders", len(data.Welders)),
		)

		render.JSON(w, r, map[string]string{"status": "success"})
	}
}

// ClearAllData полностью очищает состояние. Только для админа.
func ClearAllData(log *slog.Logger, store Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.transfer.ClearAllData"

		store.ClearAll()
		log.Warn("Все данные очищены", slog.String("op", op))

		render.JSON(w, r, map[string]string{"status": "success"})
	}
}
