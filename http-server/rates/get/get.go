package get

import (
	"log/slog"
	"net/http"

	"weldtrack-golang/internal/storage"

	"github.com/go-chi/render"
)

type RateProvider interface {
	Rates() []storage.Rate
	ArticlesWithRates() []string
}

// GetRates отдаёт все ставки, свежие сверху
func GetRates(log *slog.Logger, rates RateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, rates.Rates())
	}
}

// GetRateArticles — артикулы со ставками для подсказок в форме плана
func GetRateArticles(log *slog.Logger, rates RateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, rates.ArticlesWithRates())
	}
}
