package handler

import (
	"net/http"
	"time"

	"github.com/avc-dev/shorturls/internal/model"
)

// HealthResponse тело ответа проверки состояния
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Health сообщает, что сервис запущен
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   "URL Shortener service is running",
		Timestamp: time.Now().UTC().Format(model.TimeLayout),
	})
}

// NotFound отвечает на запросы к неизвестным маршрутам
func (h *Handler) NotFound(w http.ResponseWriter, req *http.Request) {
	h.writeJSON(w, http.StatusNotFound, ErrorResponse{
		Error:   "Route not found",
		Message: "Cannot " + req.Method + " " + req.URL.Path,
	})
}
