package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var (
	configOnce  sync.Once
	configValue *Config
)

// Load 는 환경 변수 기반 설정을 로드한다.
func Load() *Config {
	configOnce.Do(func() {
		_ = godotenv.Load()
		configValue = buildConfig()
	})
	return configValue
}

// ProvideConfig 는 설정을 로드하고 검증한다.
func ProvideConfig() (*Config, error) {
	cfg := Load()
	if cfg == nil {
		return nil, errors.New("config not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 는 설정 유효성을 검사한다.
// API 키 누락은 기동을 막지 않는다. 호출 시점에 오류로 처리된다.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	g := c.Gemini
	if strings.TrimSpace(g.Model) == "" {
		return errors.New("gemini model is empty")
	}
	if g.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid gemini timeout: %d", g.TimeoutSeconds)
	}
	if math.IsNaN(g.Temperature) || g.Temperature < 0 || g.Temperature > 2 {
		return fmt.Errorf("invalid gemini temperature: %v", g.Temperature)
	}
	if math.IsNaN(g.TopP) || g.TopP <= 0 || g.TopP > 1 {
		return fmt.Errorf("invalid gemini top_p: %v", g.TopP)
	}
	if g.TopK < 0 {
		return fmt.Errorf("invalid gemini top_k: %v", g.TopK)
	}
	if g.MaxOutputTokens <= 0 {
		return fmt.Errorf("invalid gemini max tokens: %d", g.MaxOutputTokens)
	}
	return nil
}

// LogEnvStatus 는 환경 설정 상태를 로그로 남긴다.
func LogEnvStatus(cfg *Config, logger *slog.Logger) {
	if logger == nil || cfg == nil {
		return
	}

	envFilePresent := fileExists(".env")
	primaryKey := maskSecret(cfg.Gemini.PrimaryKey())
	logger.Debug(
		"env_status",
		"env_file", envFilePresent,
		"gemini_keys", len(cfg.Gemini.APIKeys),
		"primary_key", primaryKey,
		"model", cfg.Gemini.Model,
		"timeout", cfg.Gemini.TimeoutSeconds,
		"max_tokens", cfg.Gemini.MaxOutputTokens,
		"otel", cfg.Telemetry.Enabled,
	)

	if len(cfg.Gemini.APIKeys) == 0 {
		logger.Error("env_missing_google_api_key")
	}
}

func buildConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			APIKeys:         parseAPIKeys(),
			Model:           getEnvString("GEMINI_MODEL", "gemini-2.5-flash"),
			BaseURL:         getEnvString("GEMINI_BASE_URL", ""),
			APIVersion:      getEnvString("GEMINI_API_VERSION", "v1beta"),
			Temperature:     getEnvFloat("GEMINI_TEMPERATURE", 0.1),
			TopK:            getEnvFloat("GEMINI_TOP_K", 40),
			TopP:            getEnvFloat("GEMINI_TOP_P", 0.95),
			MaxOutputTokens: getEnvInt("GEMINI_MAX_TOKENS", 2048),
			TimeoutSeconds:  getEnvInt("GEMINI_TIMEOUT", 30),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("LOG_LEVEL", "info"),
			LogDir:     getEnvString("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 1),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 30),
			MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_FILE_COMPRESS", true),
		},
		HTTP: HTTPConfig{
			Host:         getEnvString("HTTP_HOST", "0.0.0.0"),
			Port:         getEnvInt("HTTP_PORT", 5000),
			HTTP2Enabled: getEnvBool("HTTP2_ENABLED", true),
			GzipEnabled:  getEnvBool("HTTP_GZIP_ENABLED", true),
		},
		Telemetry: readTelemetryConfig(),
	}
}
