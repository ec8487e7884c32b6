package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/park285/arabic-sarf-go/internal/config"
	"github.com/park285/arabic-sarf-go/internal/gemini"
	"github.com/park285/arabic-sarf-go/internal/logging"
	"github.com/park285/arabic-sarf-go/internal/morphology"
	"github.com/park285/arabic-sarf-go/internal/telemetry"
)

// ProvideLogger: 로거를 구성해 반환합니다.
// OTel이 활성화된 경우 로그에 trace_id/span_id가 자동으로 추가됩니다.
func ProvideLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.NewLogger(cfg.Logging, logging.WithTraceCorrelation(cfg.Telemetry.Enabled))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// ProvideTelemetry: TracerProvider 를 초기화합니다. 비활성이면 no-op 입니다.
func ProvideTelemetry(ctx context.Context, cfg *config.Config) (*telemetry.Provider, error) {
	provider, err := telemetry.NewProvider(ctx, cfg.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}
	return provider, nil
}

// ProvideAnalyzer: 형태 분석기를 구성합니다.
func ProvideAnalyzer(client gemini.LLM, prompts *morphology.Prompts, logger *slog.Logger) (*morphology.Analyzer, error) {
	analyzer, err := morphology.NewAnalyzer(client, prompts, logger)
	if err != nil {
		return nil, fmt.Errorf("init analyzer: %w", err)
	}
	return analyzer, nil
}
