package usecase

import (
	"time"

	"github.com/avc-dev/shorturls/internal/config"
	"github.com/avc-dev/shorturls/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// URLRepository определяет интерфейс для чтения записей из хранилища
type URLRepository interface {
	GetURLByCode(code model.Code) (model.URLEntry, error)
}

// URLService определяет интерфейс сервиса назначения коротких кодов
type URLService interface {
	CreateShortURL(entry model.URLEntry, customCode model.Code) (model.Code, error)
}

// ClickTracker принимает клики для асинхронной записи
type ClickTracker interface {
	Track(code model.Code, click model.ClickRecord) bool
}

// URLUsecase содержит бизнес-логику для работы с URL
type URLUsecase struct {
	repo    URLRepository
	service URLService
	tracker ClickTracker
	cfg     *config.Config
	logger  *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(repo URLRepository, service URLService, tracker ClickTracker, cfg *config.Config, logger *zap.Logger) *URLUsecase {
	return &URLUsecase{
		repo:    repo,
		service: service,
		tracker: tracker,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}
