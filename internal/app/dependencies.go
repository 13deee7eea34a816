package app

import (
	"fmt"

	"github.com/avc-dev/shorturls/internal/config"
	"github.com/avc-dev/shorturls/internal/handler"
	"github.com/avc-dev/shorturls/internal/logsink"
	"github.com/avc-dev/shorturls/internal/repository"
	"github.com/avc-dev/shorturls/internal/service"
	"github.com/avc-dev/shorturls/internal/store"
	"github.com/avc-dev/shorturls/internal/usecase"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type dependencies struct {
	handler *handler.Handler
	tracker *service.ClickTracker
	sweeper *service.ExpirySweeper
}

// initLogger подключает удаленный приемник логов, если он настроен
func initLogger(cfg *config.Config, logger *zap.Logger) (*zap.Logger, *logsink.Core, error) {
	if !cfg.LogSink.Enabled() {
		return logger, nil, nil
	}

	level, err := zapcore.ParseLevel(cfg.LogSink.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log sink level: %w", err)
	}

	client := logsink.NewClient(cfg.LogSink.URL, cfg.LogSink.Token, cfg.LogSink.Timeout)
	sink := logsink.NewCore(client, level, cfg.LogSink.QueueSize, cfg.LogSink.RPS, cfg.LogSink.Timeout)

	logger = logsink.Tee(logger, sink)
	logger.Info("remote log sink enabled",
		zap.String(logsink.PackageKey, string(logsink.PackageConfig)),
		zap.String("level", level.String()),
	)

	return logger, sink, nil
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) dependencies {
	storage := store.NewStore(cfg.Click.DataLimit)
	logger.Info("Using in-memory storage", zap.Int("click_data_limit", cfg.Click.DataLimit))

	repo := repository.New(storage)
	serviceLogger := logger.With(zap.String(logsink.PackageKey, string(logsink.PackageService)))
	urlService := service.NewURLService(repo, cfg, serviceLogger)

	tracker := service.NewClickTracker(repo, serviceLogger, cfg.Click.QueueSize, cfg.Click.Workers)
	sweeper := service.NewExpirySweeper(repo,
		cfg.SweepInterval,
		logger.With(zap.String(logsink.PackageKey, string(logsink.PackageCronJob))),
	)

	urlUsecase := usecase.NewURLUsecase(repo, urlService, tracker, cfg,
		logger.With(zap.String(logsink.PackageKey, string(logsink.PackageDomain))),
	)
	h := handler.New(urlUsecase, logger.With(zap.String(logsink.PackageKey, string(logsink.PackageHandler))))

	return dependencies{
		handler: h,
		tracker: tracker,
		sweeper: sweeper,
	}
}
