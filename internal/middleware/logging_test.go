package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

type logEntry struct {
	level slog.Level
	msg   string
	attrs map[string]any
}

type recordingHandler struct {
	level   slog.Level
	attrs   []slog.Attr
	mu      sync.Mutex
	entries []logEntry
}

func (h *recordingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *recordingHandler) Handle(_ context.Context, record slog.Record) error {
	attrs := map[string]any{}
	for _, attr := range h.attrs {
		attrs[attr.Key] = attr.Value.Any()
	}
	record.Attrs(func(attr slog.Attr) bool {
		attrs[attr.Key] = attr.Value.Any()
		return true
	})

	h.mu.Lock()
	h.entries = append(h.entries, logEntry{
		level: record.Level,
		msg:   record.Message,
		attrs: attrs,
	})
	h.mu.Unlock()
	return nil
}

func (h *recordingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &recordingHandler{
		level:   h.level,
		attrs:   append(append([]slog.Attr{}, h.attrs...), attrs...),
		entries: h.entries, // entries 슬라이스 공유 (실제로는 테스트에서 WithAttrs 반환 핸들러의 entries를 안 씀)
	}
}

func (h *recordingHandler) WithGroup(_ string) slog.Handler {
	return &recordingHandler{
		level:   h.level,
		attrs:   h.attrs,
		entries: h.entries,
	}
}

func (h *recordingHandler) Entries() []logEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries := make([]logEntry, len(h.entries))
	copy(entries, h.entries)
	return entries
}

func serveLogged(t *testing.T, handler *recordingHandler, path string, status int, requestID string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), RequestLogger(slog.New(handler)))
	router.POST(path, func(c *gin.Context) { c.Status(status) })

	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.Header.Set(RequestIDHeader, requestID)
	router.ServeHTTP(httptest.NewRecorder(), req)
}

func TestRequestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel slog.Level
	}{
		{name: "success", status: http.StatusOK, wantLevel: slog.LevelDebug},
		{name: "client error", status: http.StatusBadRequest, wantLevel: slog.LevelWarn},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: slog.LevelError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := &recordingHandler{level: slog.LevelDebug}
			requestID := fmt.Sprintf("req-%d", tc.status)
			serveLogged(t, handler, "/tasrif", tc.status, requestID)

			entries := handler.Entries()
			if len(entries) != 1 {
				t.Fatalf("expected 1 log entry, got %d", len(entries))
			}
			entry := entries[0]
			if entry.level != tc.wantLevel {
				t.Fatalf("expected %s level, got %s", tc.wantLevel, entry.level)
			}
			if entry.msg != "http_request" {
				t.Fatalf("expected http_request message, got %q", entry.msg)
			}

			ctx := entry.attrs
			if ctx["request_id"] != requestID {
				t.Fatalf("expected request_id=%s, got %v", requestID, ctx["request_id"])
			}
			if ctx["method"] != "POST" || ctx["path"] != "/tasrif" || ctx["route"] != "/tasrif" {
				t.Fatalf("unexpected request attrs: %v", ctx)
			}
			if fmt.Sprint(ctx["status"]) != fmt.Sprint(tc.status) {
				t.Fatalf("expected status=%d, got %v", tc.status, ctx["status"])
			}
		})
	}
}

func TestRequestLoggerSkipsHealthOnSuccess(t *testing.T) {
	for _, path := range []string{"/health", "/health/ready", "/metrics"} {
		handler := &recordingHandler{level: slog.LevelDebug}
		serveLogged(t, handler, path, http.StatusOK, "req-health")
		if entries := handler.Entries(); len(entries) != 0 {
			t.Fatalf("expected no log entry for %s, got %d", path, len(entries))
		}
	}
}

func TestRequestLoggerKeepsFailedHealth(t *testing.T) {
	handler := &recordingHandler{level: slog.LevelDebug}
	serveLogged(t, handler, "/health/ready", http.StatusServiceUnavailable, "req-ready")
	if entries := handler.Entries(); len(entries) != 1 || entries[0].level != slog.LevelError {
		t.Fatalf("expected one error entry, got %+v", entries)
	}
}
