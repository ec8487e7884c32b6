//go:build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/park285/arabic-sarf-go/internal/config"
	"github.com/park285/arabic-sarf-go/internal/gemini"
	"github.com/park285/arabic-sarf-go/internal/handler"
	"github.com/park285/arabic-sarf-go/internal/health"
	"github.com/park285/arabic-sarf-go/internal/metrics"
	"github.com/park285/arabic-sarf-go/internal/morphology"
	"github.com/park285/arabic-sarf-go/internal/server"
)

func InitializeApp(ctx context.Context) (*App, error) {
	wire.Build(
		config.ProvideConfig,
		ProvideLogger,
		ProvideTelemetry,
		metrics.NewStore,
		metrics.NewRegistry,
		wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
		gemini.NewClient,
		wire.Bind(new(gemini.LLM), new(*gemini.Client)),
		wire.Bind(new(health.Readiness), new(*gemini.Client)),
		morphology.NewPrompts,
		ProvideAnalyzer,
		wire.Bind(new(handler.Analyzer), new(*morphology.Analyzer)),
		handler.NewMorphologyHandler,
		handler.NewTasrifHandler,
		handler.NewRouter,
		server.NewHTTPServer,
		NewApp,
	)
	return nil, nil
}
