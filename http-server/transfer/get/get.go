package get

import (
	"log/slog"
	"net/http"

	"weldtrack-golang/internal/storage"

	"github.com/go-chi/render"
)

type Exporter interface {
	Export() storage.AppState
}

// ExportData отдаёт снапшот всего состояния для переноса на другую машину
func ExportData(log *slog.Logger, store Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="weldtrack-export.json"`)
		render.JSON(w, r, store.Export())
	}
}
