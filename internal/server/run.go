package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout: graceful shutdown 대기 시간입니다.
const ShutdownTimeout = 10 * time.Second

// Run 은 SIGINT/SIGTERM 또는 ctx 취소까지 서버를 실행한다.
// onShutdown 은 서버가 멈춘 뒤 호출된다. 텔레메트리 flush 같은 정리 작업용이다.
func Run(ctx context.Context, logger *slog.Logger, server *http.Server, onShutdown func(context.Context) error) error {
	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", server.Addr, err)
	}

	g, gctx := errgroup.WithContext(signalCtx)
	logger.Info("http_server_start", "addr", listener.Addr().String())
	g.Go(func() error {
		return Serve(gctx, server, listener, ShutdownTimeout)
	})

	err = g.Wait()
	logger.Info("http_server_stopped")

	if onShutdown != nil {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
		defer cancel()
		if shutdownErr := onShutdown(flushCtx); shutdownErr != nil {
			logger.Warn("shutdown_hook_failed", "err", shutdownErr)
		}
	}

	if err != nil {
		return fmt.Errorf("run http server failed: %w", err)
	}
	return nil
}

// Serve 는 listener 로 요청을 받다가 ctx 가 끝나면 우아하게 종료한다.
func Serve(ctx context.Context, server *http.Server, listener net.Listener, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server serve failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			_ = server.Close()
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		err := <-errCh
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server stopped with error: %w", err)
	}
}
