package usecase

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/avc-dev/shorturls/internal/config"
	"github.com/avc-dev/shorturls/internal/model"
	"github.com/avc-dev/shorturls/internal/service"
	"go.uber.org/zap"
)

var shortcodeRe = regexp.MustCompile(`^[A-Za-z0-9]{3,10}$`)

// CreateShortURL создает короткую ссылку.
// Выполняет валидацию URL, срока действия и пользовательского кода, затем сохраняет запись.
func (u *URLUsecase) CreateShortURL(req model.CreateRequest) (model.CreateResult, error) {
	urlString := strings.TrimSpace(req.URL)
	if urlString == "" {
		return model.CreateResult{}, ErrEmptyURL
	}

	parsedURL, err := url.Parse(urlString)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		u.logger.Warn("invalid URL provided", zap.String("original_url", urlString))
		return model.CreateResult{}, ErrInvalidURL
	}

	validity := u.cfg.DefaultValidity
	if req.Validity != nil {
		validity = *req.Validity
	}
	if validity < 1 || validity > config.MaxValidityMinutes {
		u.logger.Warn("invalid validity period", zap.Int("validity", validity))
		return model.CreateResult{}, ErrInvalidValidity
	}

	if req.Shortcode != "" && !shortcodeRe.MatchString(req.Shortcode) {
		u.logger.Warn("invalid shortcode format", zap.String("code", req.Shortcode))
		return model.CreateResult{}, ErrInvalidShortcode
	}

	now := u.now().UTC()
	entry := model.URLEntry{
		ID:          u.newID(),
		OriginalURL: model.URL(urlString),
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Duration(validity) * time.Minute),
	}

	code, err := u.service.CreateShortURL(entry, model.Code(req.Shortcode))
	if err != nil {
		if errors.Is(err, service.ErrCodeTaken) {
			u.logger.Warn("shortcode collision", zap.String("code", req.Shortcode))
			return model.CreateResult{}, fmt.Errorf("%w: %w", ErrShortcodeConflict, err)
		}

		u.logger.Error("failed to create short URL",
			zap.String("original_url", urlString),
			zap.Error(err),
		)
		return model.CreateResult{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	shortURL, err := u.buildShortURL(code)
	if err != nil {
		return model.CreateResult{}, err
	}

	u.logger.Info("short URL created",
		zap.String("code", string(code)),
		zap.String("original_url", urlString),
		zap.Time("expires_at", entry.ExpiresAt),
	)

	return model.CreateResult{
		ShortLink: shortURL,
		Expiry:    entry.ExpiresAt,
	}, nil
}

func (u *URLUsecase) buildShortURL(code model.Code) (string, error) {
	shortURL, err := url.JoinPath(u.cfg.BaseURL.String(), string(code))
	if err != nil {
		u.logger.Error("failed to build short URL",
			zap.String("base_url", u.cfg.BaseURL.String()),
			zap.String("code", string(code)),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: failed to build short URL: %w", ErrServiceUnavailable, err)
	}

	return shortURL, nil
}
