package handler

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/avc-dev/shorturls/internal/model"
	"github.com/avc-dev/shorturls/internal/usecase"
	"go.uber.org/zap"
)

// ShortenRequest тело запроса на создание короткой ссылки
type ShortenRequest struct {
	URL       string      `json:"url"`
	Validity  json.Number `json:"validity,omitempty"`
	Shortcode string      `json:"shortcode,omitempty"`
}

// ShortenResponse тело ответа с созданной ссылкой
type ShortenResponse struct {
	ShortLink string `json:"shortLink"`
	Expiry    string `json:"expiry"`
}

var errNonIntegerValidity = errors.New("validity must be an integer number of minutes")

// parseValidity принимает целое число минут, в том числе записанное как 60.0 или 6e1
func parseValidity(n json.Number) (int, error) {
	if v, err := strconv.Atoi(n.String()); err == nil {
		return v, nil
	}

	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) {
		return 0, errNonIntegerValidity
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, usecase.ErrInvalidValidity
	}

	return int(f), nil
}

// CreateURL обрабатывает POST /shorturls
func (h *Handler) CreateURL(w http.ResponseWriter, req *http.Request) {
	var request ShortenRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	createReq := model.CreateRequest{
		URL:       request.URL,
		Shortcode: request.Shortcode,
	}

	if request.Validity != "" {
		validity, err := parseValidity(request.Validity)
		if err != nil {
			h.logger.Warn("invalid validity", zap.String("validity", request.Validity.String()), zap.Error(err))
			h.handleError(w, err)
			return
		}
		createReq.Validity = &validity
	}

	result, err := h.usecase.CreateShortURL(createReq)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, ShortenResponse{
		ShortLink: result.ShortLink,
		Expiry:    result.Expiry.UTC().Format(model.TimeLayout),
	})
}
