package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/park285/arabic-sarf-go/internal/config"
	"github.com/park285/arabic-sarf-go/internal/health"
	"github.com/park285/arabic-sarf-go/internal/httperror"
	"github.com/park285/arabic-sarf-go/internal/middleware"
)

// 라우트 경로
const (
	PathHome    = "/"
	PathAnalyze = "/analyze"
	PathTasrif  = "/tasrif"
	PathHealth  = "/health"
	PathMetrics = "/metrics"
)

// CORS 허용 값
const (
	corsAllowOrigin  = "*"
	corsAllowHeaders = "Content-Type,Authorization"
	corsAllowMethods = "GET,PUT,POST,DELETE,OPTIONS"
)

// NewRouter 는 HTTP 라우터를 구성한다.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	gatherer prometheus.Gatherer,
	geminiReadiness health.Readiness,
	morphologyHandler *MorphologyHandler,
	tasrifHandler *TasrifHandler,
) *gin.Engine {
	setGinMode(cfg.Logging.Level)

	router := gin.New()
	if cfg.Telemetry.Enabled {
		router.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		gin.CustomRecoveryWithWriter(io.Discard, recoveryHandler(logger)),
		newCORSMiddleware(),
	)
	if cfg.HTTP.GzipEnabled {
		router.Use(newGzipMiddleware())
	}

	RegisterHealthRoutes(router, cfg, gatherer, geminiReadiness)
	morphologyHandler.RegisterRoutes(router)
	tasrifHandler.RegisterRoutes(router)

	return router
}

// newCORSMiddleware: /analyze, /tasrif 의 OPTIONS 는 handlePreflight 가 직접 응답한다.
func newCORSMiddleware() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = strings.Split(corsAllowMethods, ",")
	corsConfig.AllowHeaders = strings.Split(corsAllowHeaders, ",")
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	corsConfig.OptionsResponseStatusCode = http.StatusOK
	corsHandler := cors.New(corsConfig)

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions && isPreflightPath(c.Request.URL.Path) {
			c.Next()
			return
		}
		corsHandler(c)
	}
}

func isPreflightPath(path string) bool {
	return path == PathAnalyze || path == PathTasrif
}

func newGzipMiddleware() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{PathMetrics}))
}

// recoveryHandler: 패닉을 500 오류 응답으로 변환합니다.
func recoveryHandler(logger *slog.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		if logger != nil {
			logger.Error("http_panic_recovered",
				"path", c.Request.URL.Path,
				"request_id", middleware.GetRequestID(c),
				"panic", recovered,
			)
		}
		status, payload := httperror.Response(
			httperror.NewInternalError(fmt.Sprint(recovered)),
			middleware.GetRequestID(c),
		)
		c.AbortWithStatusJSON(status, payload)
	}
}

// handlePreflight 는 OPTIONS 요청에 CORS 헤더와 함께 확인 응답을 보낸다.
func handlePreflight(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", corsAllowOrigin)
	c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
	c.Header("Access-Control-Allow-Methods", corsAllowMethods)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func setGinMode(level string) {
	if strings.EqualFold(strings.TrimSpace(level), "debug") {
		gin.SetMode(gin.DebugMode)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}
