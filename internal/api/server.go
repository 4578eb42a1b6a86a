package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Serve 启动 HTTP 服务，ctx 取消后优雅关闭，最多等待 shutdownTimeout
func Serve(ctx context.Context, addr string, handler http.Handler, shutdownTimeout time.Duration) error {
	server := &http.Server{
		Handler:           handler,
		Addr:              addr,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       time.Minute * 5,
	}

	firstErr := make(chan error, 1)
	go func() {
		defer close(firstErr)
		slog.Info("HTTP server starting", "addr", addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			firstErr <- err
		}
	}()

	select {
	case err := <-firstErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("shutdown completed")
	return <-firstErr
}
