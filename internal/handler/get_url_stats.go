package handler

import (
	"net/http"

	"github.com/avc-dev/shorturls/internal/model"
	"github.com/go-chi/chi/v5"
)

// ClickResponse запись о клике в ответе статистики
type ClickResponse struct {
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
	Location  string `json:"location"`
}

// StatsResponse тело ответа статистики
type StatsResponse struct {
	Shortcode   string          `json:"shortcode"`
	OriginalURL string          `json:"originalUrl"`
	CreatedAt   string          `json:"createdAt"`
	ExpiresAt   string          `json:"expiresAt"`
	Clicks      int64           `json:"clicks"`
	ClickData   []ClickResponse `json:"clickData"`
}

// GetURLStats обрабатывает GET /shorturls/{shortcode}
func (h *Handler) GetURLStats(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "shortcode")

	entry, err := h.usecase.GetURLStats(code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, newStatsResponse(entry))
}

func newStatsResponse(entry model.URLEntry) StatsResponse {
	clicks := make([]ClickResponse, 0, len(entry.ClickData))
	for _, c := range entry.ClickData {
		clicks = append(clicks, ClickResponse{
			Timestamp: c.Timestamp.UTC().Format(model.TimeLayout),
			Source:    c.Source,
			Location:  c.Location,
		})
	}

	return StatsResponse{
		Shortcode:   string(entry.Code),
		OriginalURL: entry.OriginalURL.String(),
		CreatedAt:   entry.CreatedAt.UTC().Format(model.TimeLayout),
		ExpiresAt:   entry.ExpiresAt.UTC().Format(model.TimeLayout),
		Clicks:      entry.Clicks,
		ClickData:   clicks,
	}
}
