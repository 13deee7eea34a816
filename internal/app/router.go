package app

import (
	"github.com/avc-dev/shorturls/internal/handler"
	"github.com/avc-dev/shorturls/internal/logsink"
	"github.com/avc-dev/shorturls/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()
	mwLogger := logger.With(zap.String(logsink.PackageKey, string(logsink.PackageMiddleware)))

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(mwLogger))
	r.Use(middleware.Gzip(mwLogger))

	// Статические маршруты имеют приоритет над /{shortcode}
	r.Get("/health", h.Health)
	r.Post("/shorturls", h.CreateURL)
	r.Get("/shorturls/{shortcode}", h.GetURLStats)
	r.Get("/shorturls/{shortcode}/qr", h.GetURLQRCode)
	r.Get("/{shortcode}", h.GetURL)

	r.NotFound(h.NotFound)

	return r
}

// Router возвращает HTTP обработчик приложения
func (a *App) Router() *chi.Mux {
	return newRouter(a.handler, a.logger)
}
