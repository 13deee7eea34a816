package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/avc-dev/shorturls/internal/config"
	"github.com/avc-dev/shorturls/internal/handler"
	"github.com/avc-dev/shorturls/internal/logsink"
	"github.com/avc-dev/shorturls/internal/service"
	"go.uber.org/zap"
)

// App представляет приложение URL shortener
type App struct {
	config  *config.Config
	logger  *zap.Logger
	handler *handler.Handler
	tracker *service.ClickTracker
	sweeper *service.ExpirySweeper
	sink    *logsink.Core
}

// New собирает приложение из конфигурации
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	logger, sink, err := initLogger(cfg, logger)
	if err != nil {
		return nil, err
	}

	deps := initDependencies(cfg, logger)

	return &App{
		config:  cfg,
		logger:  logger,
		handler: deps.handler,
		tracker: deps.tracker,
		sweeper: deps.sweeper,
		sink:    sink,
	}, nil
}

// Run загружает конфигурацию, запускает приложение и ждет сигнала завершения
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	app, err := New(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Serve(ctx)
}

// Close останавливает фоновые обработчики и сбрасывает логи
func (a *App) Close() {
	a.tracker.Stop()
	if a.sink != nil {
		a.sink.Close()
	}
	_ = a.logger.Sync()
}
