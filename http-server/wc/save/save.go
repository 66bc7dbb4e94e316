package save

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"weldtrack-golang/internal/service"

	"github.com/go-chi/render"
)

type EntrySaver interface {
	AddWCEntry(welderID string, article string, quantity float64, date string) bool
}

// SaveWCEntry вносит работу в карту. Дата по умолчанию — сегодня.
func SaveWCEntry(log *slog.Logger, entries EntrySaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wc.SaveWCEntry"

		var req struct {
			WelderID string  `json:"welderId"`
			Article  string  `json:"article"`
			Quantity float64 `json:"quantity"`
			Date     string  `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.WelderID == "" || !service.IsValidArticle(req.Article) || req.Quantity <= 0 {
			http.Error(w, "Некорректные данные записи", http.StatusBadRequest)
			return
		}

		date := req.Date
		if date == "" {
			date = time.Now().Format("2006-01-02")
		} else if _, err := time.Parse("2006-01-02", date); err != nil {
			http.Error(w, "Некорректная дата, ожидается YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		if !entries.AddWCEntry(req.WelderID, req.Article, req.Quantity, date) {
			log.Warn("Запись отклонена", slog.String("op", op),
				slog.String("welderId", req.WelderID), slog.String("article", req.Article))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, map[string]string{"status": "error", "message": "нет плана по артикулу, сварщик неизвестен или позиция закрыта"})
			return
		}

		render.JSON(w, r, map[string]string{"status": "success"})
	}
}
