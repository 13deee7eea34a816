package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/shorturls/internal/model"
	"github.com/avc-dev/shorturls/internal/usecase"
	"go.uber.org/zap"
)

// URLUsecase определяет интерфейс бизнес-логики, используемой обработчиками
type URLUsecase interface {
	CreateShortURL(req model.CreateRequest) (model.CreateResult, error)
	ResolveURL(code string, click model.ClickContext) (string, error)
	GetURLStats(code string) (model.URLEntry, error)
	GetShortLink(code string) (string, error)
}

// Handler обрабатывает HTTP запросы
type Handler struct {
	usecase URLUsecase
	logger  *zap.Logger
}

// New создает новый экземпляр Handler
func New(usecase URLUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// handleError преобразует ошибки usecase в HTTP ответы
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errNonIntegerValidity):
		h.writeError(w, http.StatusBadRequest, errNonIntegerValidity.Error())
	case errors.Is(err, usecase.ErrEmptyURL),
		errors.Is(err, usecase.ErrInvalidURL),
		errors.Is(err, usecase.ErrInvalidValidity),
		errors.Is(err, usecase.ErrInvalidShortcode):
		h.writeError(w, http.StatusBadRequest, rootMessage(err))
	case errors.Is(err, usecase.ErrShortcodeConflict):
		h.writeError(w, http.StatusConflict, usecase.ErrShortcodeConflict.Error())
	case errors.Is(err, usecase.ErrURLNotFound):
		h.writeError(w, http.StatusNotFound, usecase.ErrURLNotFound.Error())
	case errors.Is(err, usecase.ErrURLExpired):
		h.writeError(w, http.StatusGone, usecase.ErrURLExpired.Error())
	default:
		h.logger.Error("internal error", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// rootMessage возвращает текст ошибки валидации без обертки
func rootMessage(err error) string {
	for _, target := range []error{
		usecase.ErrEmptyURL,
		usecase.ErrInvalidURL,
		usecase.ErrInvalidValidity,
		usecase.ErrInvalidShortcode,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, ErrorResponse{Error: message})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
