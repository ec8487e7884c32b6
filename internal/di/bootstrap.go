//go:build !wireinject

package di

import (
	"context"
	"fmt"

	"github.com/park285/arabic-sarf-go/internal/config"
	"github.com/park285/arabic-sarf-go/internal/gemini"
	"github.com/park285/arabic-sarf-go/internal/handler"
	"github.com/park285/arabic-sarf-go/internal/metrics"
	"github.com/park285/arabic-sarf-go/internal/morphology"
	"github.com/park285/arabic-sarf-go/internal/server"
)

// InitializeApp 은 애플리케이션 의존성을 초기화하고 App 인스턴스를 반환한다.
func InitializeApp(ctx context.Context) (*App, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	telemetryProvider, err := ProvideTelemetry(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	metricsStore := metrics.NewStore()
	registry, err := metrics.NewRegistry(metricsStore)
	if err != nil {
		return nil, fmt.Errorf("metrics registry: %w", err)
	}

	geminiClient, err := gemini.NewClient(cfg, metricsStore)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	prompts, err := morphology.NewPrompts()
	if err != nil {
		return nil, fmt.Errorf("morphology prompts: %w", err)
	}

	analyzer, err := ProvideAnalyzer(geminiClient, prompts, logger)
	if err != nil {
		return nil, fmt.Errorf("morphology analyzer: %w", err)
	}

	morphologyHandler := handler.NewMorphologyHandler(analyzer, logger)
	tasrifHandler := handler.NewTasrifHandler(metricsStore, logger)

	router := handler.NewRouter(cfg, logger, registry, geminiClient, morphologyHandler, tasrifHandler)
	httpServer := server.NewHTTPServer(cfg, router)

	return NewApp(httpServer, logger, cfg, telemetryProvider, metricsStore), nil
}
