package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ExpirySweeper периодически удаляет просроченные ссылки
type ExpirySweeper struct {
	cleaner  ExpiredURLCleaner
	interval time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewExpirySweeper создает очиститель с заданным интервалом
func NewExpirySweeper(cleaner ExpiredURLCleaner, interval time.Duration, logger *zap.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Run выполняет очистку на каждом тике, пока не отменен ctx
func (s *ExpirySweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiry sweeper started", zap.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Sweep выполняет один проход очистки. Паника не выходит за пределы прохода,
// следующий тик повторит попытку.
func (s *ExpirySweeper) Sweep() (removed int, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("expired URLs cleanup failed", zap.Any("panic", r))
			removed, ok = 0, false
		}
	}()

	removed = s.cleaner.DeleteExpired(s.now().UTC())
	if removed > 0 {
		s.logger.Info("cleaned up expired URLs", zap.Int("removed", removed))
	} else {
		s.logger.Debug("no expired URLs to clean up")
	}

	return removed, true
}
