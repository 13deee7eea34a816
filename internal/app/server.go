package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Serve запускает HTTP сервер и фоновую очистку до отмены контекста,
// затем корректно завершает сервер и дожидается записи накопленных кликов
func (a *App) Serve(ctx context.Context) error {
	defer a.Close()

	a.tracker.Start()

	srv := &http.Server{
		Addr:    a.config.ServerAddress.String(),
		Handler: a.Router(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		a.sweeper.Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		a.logger.Error("Server stopped with error", zap.Error(err))
		return err
	}

	a.logger.Info("Server stopped")
	return nil
}
