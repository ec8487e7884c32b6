package config

import (
	"fmt"
	"time"
)

// GeminiConfig: Gemini 호출 설정입니다.
type GeminiConfig struct {
	APIKeys         []string
	Model           string
	BaseURL         string
	APIVersion      string
	Temperature     float64
	TopK            float64
	TopP            float64
	MaxOutputTokens int
	TimeoutSeconds  int
}

// PrimaryKey: 첫 번째 API 키를 반환합니다.
func (g GeminiConfig) PrimaryKey() string {
	if len(g.APIKeys) == 0 {
		return ""
	}
	return g.APIKeys[0]
}

// Timeout: 호출 제한 시간을 반환합니다.
func (g GeminiConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// LoggingConfig: 로깅 설정입니다.
type LoggingConfig struct {
	Level      string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPConfig: HTTP 서버 설정입니다.
type HTTPConfig struct {
	Host         string
	Port         int
	HTTP2Enabled bool
	GzipEnabled  bool
}

// Addr: listen 주소를 반환합니다.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// TelemetryConfig: OpenTelemetry 설정입니다.
type TelemetryConfig struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Environment    string
	OTLPEndpoint   string
	OTLPInsecure   bool
	SampleRate     float64
}

// Config: 애플리케이션 전체 설정입니다.
type Config struct {
	Gemini    GeminiConfig
	Logging   LoggingConfig
	HTTP      HTTPConfig
	Telemetry TelemetryConfig
}
