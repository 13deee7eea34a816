package service

import (
	"errors"
	"fmt"

	"github.com/avc-dev/shorturls/internal/config"
	"github.com/avc-dev/shorturls/internal/model"
	"github.com/avc-dev/shorturls/internal/store"
	"go.uber.org/zap"
)

// reservedCodes совпадают со статическими маршрутами и не могут быть короткими кодами
var reservedCodes = map[model.Code]struct{}{
	"health":    {},
	"shorturls": {},
}

// IsReservedCode сообщает, зарезервирован ли код под служебный маршрут
func IsReservedCode(code model.Code) bool {
	_, ok := reservedCodes[code]
	return ok
}

// URLService содержит бизнес-логику назначения коротких кодов
type URLService struct {
	repo          URLRepository
	codeGenerator Generator
	cfg           *config.Config
	logger        *zap.Logger
}

// NewURLService создает новый экземпляр URLService
func NewURLService(repo URLRepository, cfg *config.Config, logger *zap.Logger) *URLService {
	return &URLService{
		repo:          repo,
		codeGenerator: NewCodeGenerator(),
		cfg:           cfg,
		logger:        logger,
	}
}

// CreateShortURL назначает записи код и сохраняет ее.
// Пользовательский код используется как есть, иначе код генерируется.
func (s *URLService) CreateShortURL(entry model.URLEntry, customCode model.Code) (model.Code, error) {
	if customCode != "" {
		return s.createWithCustomCode(entry, customCode)
	}

	// Сгенерированный код мог быть занят параллельным запросом между проверкой и вставкой
	for attempt := 0; attempt < s.cfg.Retry.MaxAttempts; attempt++ {
		code, err := s.GenerateUnique()
		if err != nil {
			return "", err
		}

		entry.Code = code
		err = s.repo.CreateURL(entry)
		if err == nil {
			s.logger.Debug("generated shortcode", zap.String("code", string(code)), zap.Int("attempt", attempt+1))
			return code, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return "", fmt.Errorf("failed to create URL: %w", err)
		}
		s.logger.Warn("generated shortcode taken before insert, regenerating", zap.String("code", string(code)))
	}

	s.logger.Error("shortcode generation exhausted retries", zap.Int("max_attempts", s.cfg.Retry.MaxAttempts))
	return "", fmt.Errorf("failed to store generated code after %d attempts: %w", s.cfg.Retry.MaxAttempts, ErrMaxRetriesExceeded)
}

func (s *URLService) createWithCustomCode(entry model.URLEntry, code model.Code) (model.Code, error) {
	if IsReservedCode(code) {
		s.logger.Warn("custom shortcode is reserved", zap.String("code", string(code)))
		return "", fmt.Errorf("code %s: %w", code, ErrCodeTaken)
	}

	entry.Code = code
	if err := s.repo.CreateURL(entry); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			s.logger.Warn("custom shortcode collision", zap.String("code", string(code)))
			return "", fmt.Errorf("code %s: %w", code, ErrCodeTaken)
		}
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return code, nil
}

// GenerateUnique генерирует код, который на момент проверки свободен в хранилище
func (s *URLService) GenerateUnique() (model.Code, error) {
	for attempt := 0; attempt < s.cfg.Retry.MaxAttempts; attempt++ {
		code := s.codeGenerator.GenerateCode()
		if IsReservedCode(code) {
			continue
		}
		if s.repo.IsCodeUnique(code) {
			return code, nil
		}
		s.logger.Debug("shortcode collision", zap.String("code", string(code)))
	}

	s.logger.Error("shortcode generation exhausted retries", zap.Int("max_attempts", s.cfg.Retry.MaxAttempts))
	return "", fmt.Errorf("failed to generate unique code after %d attempts: %w", s.cfg.Retry.MaxAttempts, ErrMaxRetriesExceeded)
}
