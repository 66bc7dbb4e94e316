package report

import (
	"fmt"

	"weldtrack-golang/internal/service"
	"weldtrack-golang/internal/storage"

	"github.com/xuri/excelize/v2"
)

type ReportStorage interface {
	Rates() []storage.Rate
	PlanItems() []storage.PlanItem
	Welders() []storage.Welder
}

type ReportService struct {
	storage ReportStorage
}

func NewReportService(storage ReportStorage) *ReportService {
	return &ReportService{storage: storage}
}

// GenerateExcel собирает книгу из двух листов: план и рабочие карты
func (g *ReportService) GenerateExcel() ([]byte, error) {
	rates := g.storage.Rates()
	planItems := g.storage.PlanItems()
	welders := g.storage.Welders()

	normByArticle := make(map[string]float64, len(rates))
	for _, r := range rates {
		normByArticle[r.Article] = r.Norm
	}

	f := excelize.NewFile()
	defer f.Close()

	// --- СТИЛИ ---
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	// 1. ЛИСТ ПЛАНА
	planSheet := "План"
	f.SetSheetName("Sheet1", planSheet)

	planHeaders := []string{"Артикул", "Н/час за шт", "План, шт", "Выполнено, шт", "Закрыт"}
	for i, name := range planHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(planSheet, cell, name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(planHeaders), 1)
	f.SetCellStyle(planSheet, "A1", lastCol, headerStyle)

	for i, p := range planItems {
		row := i + 2
		locked := ""
		if p.Locked {
			locked = "да"
		}
		values := []interface{}{p.Article, normByArticle[p.Article], p.Target, p.Completed, locked}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(planSheet, cell, v)
		}
	}

	// 2. ЛИСТ РАБОЧИХ КАРТ
	wcSheet := "Рабочие карты"
	if _, err := f.NewSheet(wcSheet); err != nil {
		return nil, fmt.Errorf("создание листа карт: %w", err)
	}

	wcHeaders := []string{"Сварщик", "Выработка за всё время", "Даты с переработкой, ч"}
	for i, name := range wcHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(wcSheet, cell, name)
	}
	lastCol, _ = excelize.CoordinatesToCellName(len(wcHeaders), 1)
	f.SetCellStyle(wcSheet, "A1", lastCol, headerStyle)

	for i, w := range welders {
		row := i + 2

		overtimeParts := ""
		for _, date := range service.OvertimeDates(w) {
			if overtimeParts != "" {
				overtimeParts += "; "
			}
			overtimeParts += fmt.Sprintf("%s — %s", date, service.FormatQty(w.Overtime[date]))
		}

		values := []interface{}{w.LastName, service.AllTimeSummary(w), overtimeParts}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(wcSheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("запись книги: %w", err)
	}

	return buf.Bytes(), nil
}
