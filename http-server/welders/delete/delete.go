package delete

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type WelderDeleter interface {
	DeleteWelder(id string)
}

// DeleteWelder удаляет сварщика; его вклад уходит из плана
func DeleteWelder(log *slog.Logger, welders WelderDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		welders.DeleteWelder(chi.URLParam(r, "id"))
		render.JSON(w, r, map[string]string{"status": "success"})
	}
}
