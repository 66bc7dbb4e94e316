package delete

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type RateDeleter interface {
	DeleteRate(id string)
}

// DeleteRate удаляет ставку; позиции плана по её артикулу уходят каскадом
func DeleteRate(log *slog.Logger, rates RateDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rates.DeleteRate(chi.URLParam(r, "id"))
		render.JSON(w, r, map[string]string{"status": "success"})
	}
}
