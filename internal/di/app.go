package di

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/park285/arabic-sarf-go/internal/config"
	"github.com/park285/arabic-sarf-go/internal/metrics"
	"github.com/park285/arabic-sarf-go/internal/telemetry"
)

// App: 애플리케이션 구성 요소를 묶는다.
type App struct {
	Server    *http.Server
	Logger    *slog.Logger
	Config    *config.Config
	Telemetry *telemetry.Provider
	Metrics   *metrics.Store
}

// NewApp: App 인스턴스를 생성합니다.
func NewApp(
	server *http.Server,
	logger *slog.Logger,
	cfg *config.Config,
	telemetryProvider *telemetry.Provider,
	metricsStore *metrics.Store,
) *App {
	return &App{
		Server:    server,
		Logger:    logger,
		Config:    cfg,
		Telemetry: telemetryProvider,
		Metrics:   metricsStore,
	}
}

// Close: 누적 통계를 남기고, 버퍼에 남은 span 을 내보낸 뒤 provider 를 정리합니다.
func (a *App) Close(ctx context.Context) error {
	if a == nil {
		return nil
	}
	if a.Logger != nil && a.Metrics != nil {
		snapshot := a.Metrics.Snapshot()
		a.Logger.Info("metrics_summary",
			"gemini_calls", snapshot["total_calls"],
			"gemini_errors", snapshot["total_errors"],
			"gemini_timeouts", snapshot["total_timeouts"],
			"total_tokens", snapshot["total_tokens"],
			"cache_hit_ratio", snapshot["cache_hit_ratio"],
			"avg_duration_ms", snapshot["avg_duration_ms"],
			"tasrif", snapshot["total_tasrif"],
		)
	}
	return a.Telemetry.Shutdown(ctx)
}
