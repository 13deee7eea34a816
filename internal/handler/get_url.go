package handler

import (
	"net/http"

	"github.com/avc-dev/shorturls/internal/model"
	"github.com/go-chi/chi/v5"
)

// GetURL перенаправляет по короткому коду на оригинальный URL
func (h *Handler) GetURL(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "shortcode")

	originalURL, err := h.usecase.ResolveURL(code, model.ClickContext{
		Referrer:  req.Referer(),
		UserAgent: req.UserAgent(),
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, req, originalURL, http.StatusFound)
}
