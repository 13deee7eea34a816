package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const qrCodeSize = 256

// GetURLQRCode отдает PNG с QR кодом короткой ссылки
func (h *Handler) GetURLQRCode(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "shortcode")

	shortLink, err := h.usecase.GetShortLink(code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	png, err := qrcode.Encode(shortLink, qrcode.Medium, qrCodeSize)
	if err != nil {
		h.logger.Error("failed to encode QR code", zap.String("code", code), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.Debug("failed to write QR code", zap.Error(err))
	}
}
