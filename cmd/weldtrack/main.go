package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"weldtrack-golang/internal/config"
	"weldtrack-golang/internal/service/report"
	"weldtrack-golang/internal/storage"
	"weldtrack-golang/internal/storage/mysql"
	"weldtrack-golang/internal/storage/sqlitekv"
	"weldtrack-golang/internal/store"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustConfig()

	log := setupLogger(cfg.Env)

	var kv storage.KV
	switch cfg.StorageDriver {
	case "sqlite":
		st, err := sqlitekv.New(cfg.SqlitePath)
		if err != nil {
			log.Error("failed to open sqlite", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer st.Close()
		kv = st
	case "mysql":
		st, err := mysql.New(*cfg)
		if err != nil {
			log.Error("failed to open db", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer st.Close()
		kv = st
	case "memory":
		// без персистентности: состояние живёт до перезапуска
		log.Warn("storage driver is memory, state will not survive restart")
	default:
		log.Error("unknown storage driver", slog.String("driver", cfg.StorageDriver))
		os.Exit(1)
	}

	appStore := store.New(kv, log)
	reportService := report.NewReportService(appStore)

	log.Info("server started", slog.String("address", cfg.Address), slog.String("storage", cfg.StorageDriver))

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, appStore, reportService),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("failed start server", slog.String("error", err.Error()))
	}

	log.Error("server stopped")
}

type dualHandler struct {
	coreHandler  slog.Handler
	errorHandler slog.Handler
}

func (h *dualHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.coreHandler.Enabled(ctx, lvl) || h.errorHandler.Enabled(ctx, lvl)
}

func (h *dualHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error

	// Всегда пишем в основной вывод (stdout)
	if h.coreHandler.Enabled(ctx, r.Level) {
		err = h.coreHandler.Handle(ctx, r)
		if err != nil {
			return err
		}
	}

	// Если это ошибка — пишем в файл
	if r.Level >= slog.LevelError && h.errorHandler.Enabled(ctx, r.Level) {
		cloned := r.Clone()
		_ = h.errorHandler.Handle(ctx, cloned)
	}

	return err
}

func (h *dualHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithAttrs(attrs),
		errorHandler: h.errorHandler.WithAttrs(attrs),
	}
}

func (h *dualHandler) WithGroup(name string) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithGroup(name),
		errorHandler: h.errorHandler.WithGroup(name),
	}
}

func setupLogger(env string) *slog.Logger {
	var level slog.Level = slog.LevelDebug
	switch env {
	case envProd:
		level = slog.LevelInfo
	}

	// Основной handler — пишет ВСЁ в stdout
	var coreHandler slog.Handler
	switch env {
	case envDev:
		coreHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		coreHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	// Файловый handler — только ошибки
	errorFile, err := os.OpenFile("errors.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		slog.Warn("Cannot open error log file", "error", err)
		return slog.New(coreHandler) // продолжаем без файла
	}

	errorHandler := slog.NewTextHandler(errorFile, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	return slog.New(&dualHandler{
		coreHandler:  coreHandler,
		errorHandler: errorHandler,
	})
}
