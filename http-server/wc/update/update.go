package update

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type EntryUpdater interface {
	UpdateWCEntry(welderID string, entryID string, quantity float64)
	DeleteWCEntry(welderID string, entryID string)
}

// UpdateWCEntry меняет количество в существующей записи — это разрешено
// и по закрытым позициям плана
func UpdateWCEntry(log *slog.Logger, entries EntryUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			WelderID string  `json:"welderId"`
			EntryID  string  `json:"entryId"`
			Quantity float64 `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.WelderID == "" || req.EntryID == "" || req.Quantity <= 0 {
			http.Error(w, "Некорректные данные записи", http.StatusBadRequest)
			return
		}

		entries.UpdateWCEntry(req.WelderID, req.EntryID, req.Quantity)
		render.JSON(w, r, map[string]string{"status": "success"})
	}
}

func DeleteWCEntry(log *slog.Logger, entries EntryUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			WelderID string `json:"welderId"`
			EntryID  string `json:"entryId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		entries.DeleteWCEntry(req.WelderID, req.EntryID)
		render.JSON(w, r, map[string]string{"status": "success"})
	}
}
