package get

import (
	"log/slog"
	"net/http"
)

type ExcelGenerator interface {
	GenerateExcel() ([]byte, error)
}

// GenerateReportExcel — книга с планом и рабочими картами
func GenerateReportExcel(log *slog.Logger, gen ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GenerateReportExcel"

		data, err := gen.GenerateExcel()
		if err != nil {
			log.Error("Ошибка генерации отчета", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="weldtrack-report.xlsx"`)
		w.Write(data)
	}
}
