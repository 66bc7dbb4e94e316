package save

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

type WelderSaver interface {
	AddWelder(lastName string) bool
}

func SaveWelder(log *slog.Logger, welders WelderSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.welders.SaveWelder"

		var req struct {
			LastName string `json:"lastName"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.LastName) == "" {
			http.Error(w, "Не указана фамилия", http.StatusBadRequest)
			return
		}

		if !welders.AddWelder(req.LastName) {
			log.Warn("Сварщик с такой фамилией уже есть", slog.String("op", op), slog.String("lastName", req.LastName))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, map[string]string{"status": "error", "message": "фамилия уже занята"})
			return
		}

		render.JSON(w, r, map[string]string{"status": "success"})
	}
}
