package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/park285/arabic-sarf-go/internal/config"
	"github.com/park285/arabic-sarf-go/internal/health"
)

// BannerResponse: 서비스 배너 응답입니다.
type BannerResponse struct {
	Message   string   `json:"message"`
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
}

// LivenessResponse: /health 응답입니다.
type LivenessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ModelConfigResponse: 모델 설정 응답입니다.
type ModelConfigResponse struct {
	Model           string  `json:"model"`
	APIVersion      string  `json:"api_version"`
	Temperature     float64 `json:"temperature"`
	TopK            float64 `json:"top_k"`
	TopP            float64 `json:"top_p"`
	MaxOutputTokens int     `json:"max_output_tokens"`
	TimeoutSeconds  int     `json:"timeout_seconds"`
	APIKeyCount     int     `json:"api_key_count"`
	HTTP2Enabled    bool    `json:"http2_enabled"`
	TransportMode   string  `json:"transport_mode"`
}

// RegisterHealthRoutes: 배너, 상태 확인, 메트릭 라우트를 등록합니다.
// gatherer 가 nil 이면 Prometheus 기본 레지스트리를 노출한다.
func RegisterHealthRoutes(router gin.IRouter, cfg *config.Config, gatherer prometheus.Gatherer, gemini health.Readiness) {
	router.GET(PathHome, func(c *gin.Context) {
		c.JSON(http.StatusOK, BannerResponse{
			Message:   "Arabic Morphology API is running!",
			Status:    "healthy",
			Endpoints: []string{PathHome, PathAnalyze, PathTasrif, PathHealth},
		})
	})

	router.GET(PathHealth, func(c *gin.Context) {
		// Liveness 는 설정 상태와 무관하게 항상 200 이다.
		c.JSON(http.StatusOK, LivenessResponse{Status: "healthy", Message: "Server is running"})
	})

	router.GET(PathHealth+"/ready", func(c *gin.Context) {
		payload := health.Collect(cfg, gemini, true)
		status := http.StatusOK
		if !payload.OK() {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, payload)
	})

	router.GET(PathHealth+"/models", func(c *gin.Context) {
		c.JSON(http.StatusOK, modelConfig(cfg))
	})

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET(PathMetrics, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

func modelConfig(cfg *config.Config) ModelConfigResponse {
	if cfg == nil {
		return ModelConfigResponse{TransportMode: "h1"}
	}

	transportMode := "h1"
	if cfg.HTTP.HTTP2Enabled {
		transportMode = "h2c"
	}

	return ModelConfigResponse{
		Model:           cfg.Gemini.Model,
		APIVersion:      cfg.Gemini.APIVersion,
		Temperature:     cfg.Gemini.Temperature,
		TopK:            cfg.Gemini.TopK,
		TopP:            cfg.Gemini.TopP,
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
		TimeoutSeconds:  cfg.Gemini.TimeoutSeconds,
		APIKeyCount:     len(cfg.Gemini.APIKeys),
		HTTP2Enabled:    cfg.HTTP.HTTP2Enabled,
		TransportMode:   transportMode,
	}
}
