package usecase

import (
	"github.com/avc-dev/shorturls/internal/model"
	"go.uber.org/zap"
)

// GetURLStats возвращает запись со статистикой переходов.
// Статистика доступна и для просроченной ссылки, пока ее не удалила очистка.
func (u *URLUsecase) GetURLStats(code string) (model.URLEntry, error) {
	entry, err := u.getEntry(code)
	if err != nil {
		return model.URLEntry{}, err
	}

	u.logger.Debug("statistics retrieved",
		zap.String("code", code),
		zap.Int64("clicks", entry.Clicks),
	)

	return entry, nil
}
