package usecase

import (
	"errors"
	"fmt"

	"github.com/avc-dev/shorturls/internal/model"
	"github.com/avc-dev/shorturls/internal/service"
	"github.com/avc-dev/shorturls/internal/store"
	"go.uber.org/zap"
)

// ResolveURL возвращает оригинальный URL по короткому коду и ставит клик в очередь на запись.
// Срок действия проверяется при каждом чтении, независимо от фоновой очистки.
func (u *URLUsecase) ResolveURL(code string, click model.ClickContext) (string, error) {
	entry, err := u.getLiveEntry(code)
	if err != nil {
		return "", err
	}

	record := service.ClassifyClick(click, u.now())
	if !u.tracker.Track(entry.Code, record) {
		u.logger.Warn("click was not tracked", zap.String("code", code))
	}

	u.logger.Info("redirecting",
		zap.String("code", code),
		zap.String("original_url", entry.OriginalURL.String()),
	)

	return entry.OriginalURL.String(), nil
}

// GetShortLink возвращает полный короткий URL для действующего кода
func (u *URLUsecase) GetShortLink(code string) (string, error) {
	entry, err := u.getLiveEntry(code)
	if err != nil {
		return "", err
	}

	return u.buildShortURL(entry.Code)
}

func (u *URLUsecase) getLiveEntry(code string) (model.URLEntry, error) {
	entry, err := u.getEntry(code)
	if err != nil {
		return model.URLEntry{}, err
	}

	if entry.IsExpired(u.now()) {
		u.logger.Warn("expired URL accessed", zap.String("code", code))
		return model.URLEntry{}, ErrURLExpired
	}

	return entry, nil
}

func (u *URLUsecase) getEntry(code string) (model.URLEntry, error) {
	entry, err := u.repo.GetURLByCode(model.Code(code))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			u.logger.Warn("shortcode not found", zap.String("code", code))
			return model.URLEntry{}, fmt.Errorf("%w: %w", ErrURLNotFound, err)
		}

		u.logger.Error("failed to get URL by code",
			zap.String("code", code),
			zap.Error(err),
		)
		return model.URLEntry{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return entry, nil
}
