package main

import (
	"context"
	"log"
	"os"

	"github.com/park285/arabic-sarf-go/internal/config"
	"github.com/park285/arabic-sarf-go/internal/di"
	"github.com/park285/arabic-sarf-go/internal/server"
)

func main() {
	ctx := context.Background()

	app, err := di.InitializeApp(ctx)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	config.LogEnvStatus(app.Config, app.Logger)
	app.Logger.Info(
		"http_server_config",
		"host", app.Config.HTTP.Host,
		"port", app.Config.HTTP.Port,
		"http2", app.Config.HTTP.HTTP2Enabled,
		"gzip", app.Config.HTTP.GzipEnabled,
		"model", app.Config.Gemini.Model,
	)

	if err := server.Run(ctx, app.Logger, app.Server, app.Close); err != nil {
		app.Logger.Error("http_server_failed", "err", err)
		os.Exit(1)
	}
}
