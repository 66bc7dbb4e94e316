package update

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type OvertimeUpdater interface {
	SetManualOvertime(welderID string, date string, hours float64)
	ResetOvertimeOverride(welderID string, date string)
}

// SetManualOvertime фиксирует переработку вручную; автопересчёт по этой
// дате выключается до сброса
func SetManualOvertime(log *slog.Logger, overtime OvertimeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			WelderID string  `json:"welderId"`
			Date     string  `json:"date"`
			Hours    float64 `json:"hours"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.WelderID == "" || req.Hours < 0 {
			http.Error(w, "Некорректные данные переработки", http.StatusBadRequest)
			return
		}
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			http.Error(w, "Некорректная дата, ожидается YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		overtime.SetManualOvertime(req.WelderID, req.Date, req.Hours)
		render.JSON(w, r, map[string]string{"status": "success"})
	}
}

// ResetOvertimeOverride снимает фиксацию и сразу пересчитывает значение
func ResetOvertimeOverride(log *slog.Logger, overtime OvertimeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			WelderID string `json:"welderId"`
			Date     string `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		overtime.ResetOvertimeOverride(req.WelderID, req.Date)
		render.JSON(w, r, map[string]string{"status": "success"})
	}
}
