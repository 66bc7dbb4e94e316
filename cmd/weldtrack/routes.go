package main

import (
	"log/slog"
	"net/http"

	getplan "weldtrack-golang/http-server/plan/get"
	saveplan "weldtrack-golang/http-server/plan/save"
	upplan "weldtrack-golang/http-server/plan/update"
	getrates "weldtrack-golang/http-server/rates/get"
	delrates "weldtrack-golang/http-server/rates/delete"
	saverates "weldtrack-golang/http-server/rates/save"
	uprates "weldtrack-golang/http-server/rates/update"
	getreport "weldtrack-golang/http-server/report/get"
	gettransfer "weldtrack-golang/http-server/transfer/get"
	savetransfer "weldtrack-golang/http-server/transfer/save"
	upovertime "weldtrack-golang/http-server/overtime/update"
	savewc "weldtrack-golang/http-server/wc/save"
	upwc "weldtrack-golang/http-server/wc/update"
	delwelders "weldtrack-golang/http-server/welders/delete"
	getwelders "weldtrack-golang/http-server/welders/get"
	savewelders "weldtrack-golang/http-server/welders/save"
	"weldtrack-golang/internal/config"
	"weldtrack-golang/internal/middleware/auth"
	"weldtrack-golang/internal/service/report"
	"weldtrack-golang/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func routes(cfg config.Config, log *slog.Logger, appStore *store.Store, reportService *report.ReportService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"}, // фронтенд
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// ставки
	router.Get("/api/rates", getrates.GetRates(log, appStore))
	router.Get("/api/rates/articles", getrates.GetRateArticles(log, appStore))
	router.Post("/api/rates", saverates.SaveRate(log, appStore))
	router.Put("/api/rates/{id}", uprates.UpdateRate(log, appStore))
	router.Delete("/api/rates/{id}", delrates.DeleteRate(log, appStore))

	// план
	router.Get("/api/plan", getplan.GetPlan(log, appStore))
	router.Get("/api/plan/unlocked", getplan.GetUnlockedPlan(log, appStore))
	router.Get("/api/plan/articles", getplan.GetPlanArticles(log, appStore))
	router.Post("/api/plan", saveplan.SavePlanItem(log, appStore))
	router.Put("/api/plan/{id}", upplan.UpdatePlanItem(log, appStore))
	router.Delete("/api/plan/{id}", upplan.DeletePlanItem(log, appStore))

	// сварщики
	router.Get("/api/welders", getwelders.GetWelders(log, appStore))
	router.Get("/api/welders/progress", getwelders.GetWelderProgress(log, appStore))
	router.Get("/api/welders/{id}/summary", getwelders.GetWelderSummary(log, appStore))
	router.Post("/api/welders", savewelders.SaveWelder(log, appStore))
	router.Delete("/api/welders/{id}", delwelders.DeleteWelder(log, appStore))

	// рабочие карты
	router.Post("/api/wc/entries", savewc.SaveWCEntry(log, appStore))
	router.Put("/api/wc/entries", upwc.UpdateWCEntry(log, appStore))
	router.Post("/api/wc/entries/delete", upwc.DeleteWCEntry(log, appStore))

	// переработка
	router.Put("/api/overtime/manual", upovertime.SetManualOvertime(log, appStore))
	router.Put("/api/overtime/reset", upovertime.ResetOvertimeOverride(log, appStore))

	// перенос данных и отчет
	router.Get("/api/export", gettransfer.ExportData(log, appStore))
	router.Get("/api/report/excel", getreport.GenerateReportExcel(log, reportService))

	// опасные операции — только под админским паролем
	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Post("/import", savetransfer.ImportData(log, appStore))
	adminRouter.Post("/clear", savetransfer.ClearAllData(log, appStore))

	router.Mount("/api/admin", adminRouter)

	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return router
}
