package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/park285/arabic-sarf-go/internal/config"
)

const (
	defaultLogFileName = "sarf.log"
)

type options struct {
	traceCorrelation bool
	stdout           io.Writer
}

// Option: NewLogger 옵션입니다.
type Option func(*options)

// WithTraceCorrelation: 레코드에 trace_id/span_id 를 붙입니다.
func WithTraceCorrelation(enabled bool) Option {
	return func(o *options) { o.traceCorrelation = enabled }
}

// WithStdout: 콘솔 출력 대상을 바꿉니다. 테스트용입니다.
func WithStdout(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

// NewLogger: 로거를 생성하고 slog 기본 로거로 등록합니다.
// LogDir 이 비어 있으면 콘솔에만 쓴다.
func NewLogger(cfg config.LoggingConfig, opts ...Option) (*slog.Logger, error) {
	o := options{stdout: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	level := parseLevel(cfg.Level)
	logDir := strings.TrimSpace(cfg.LogDir)
	if logDir == "" {
		logger := newLogger(o.stdout, level, false, o.traceCorrelation)
		slog.SetDefault(logger)
		return logger, nil
	}

	if cfg.MaxSizeMB <= 0 || cfg.MaxBackups <= 0 || cfg.MaxAgeDays <= 0 {
		return nil, fmt.Errorf(
			"invalid log config: size=%d backups=%d age_days=%d",
			cfg.MaxSizeMB,
			cfg.MaxBackups,
			cfg.MaxAgeDays,
		)
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir failed: %w", err)
	}

	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, defaultLogFileName),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	logger := newLogger(io.MultiWriter(o.stdout, logFile), level, true, o.traceCorrelation)
	slog.SetDefault(logger)
	logger.Info("file_logging_enabled", "path", logFile.Filename)
	return logger, nil
}

func newLogger(writer io.Writer, level slog.Level, noColor bool, traceCorrelation bool) *slog.Logger {
	var handler slog.Handler = tint.NewHandler(writer, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
		AddSource:  true,
		NoColor:    noColor,
	})
	if traceCorrelation {
		handler = NewOTelHandler(handler)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
