package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/park285/arabic-sarf-go/internal/handler/shared"
	"github.com/park285/arabic-sarf-go/internal/httperror"
	"github.com/park285/arabic-sarf-go/internal/morphology"
)

// inputPreviewRunes: 로그에 남기는 입력 텍스트 길이입니다.
const inputPreviewRunes = 40

// Analyzer 는 형태 분석기 인터페이스다.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (morphology.Document, error)
}

// AnalyzeRequest 는 형태 분석 요청 본문이다.
type AnalyzeRequest struct {
	Text *string `json:"text" binding:"required"`
}

// AnalyzeResponse 는 형태 분석 응답 본문이다.
type AnalyzeResponse struct {
	Success   bool                `json:"success"`
	InputText string              `json:"input_text"`
	Result    morphology.Document `json:"result"`
}

// MorphologyHandler 는 /analyze 핸들러다.
type MorphologyHandler struct {
	analyzer Analyzer
	logger   *slog.Logger
}

// NewMorphologyHandler 는 MorphologyHandler 를 생성한다.
func NewMorphologyHandler(analyzer Analyzer, logger *slog.Logger) *MorphologyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MorphologyHandler{analyzer: analyzer, logger: logger}
}

// RegisterRoutes 는 형태 분석 라우트를 등록한다.
func (h *MorphologyHandler) RegisterRoutes(router gin.IRouter) {
	router.POST(PathAnalyze, h.handleAnalyze)
	router.OPTIONS(PathAnalyze, handlePreflight)
}

func (h *MorphologyHandler) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if !bindJSON(c, &req, httperror.NewNoTextProvided) {
		return
	}

	text := strings.TrimSpace(*req.Text)
	if text == "" {
		writeError(c, httperror.NewEmptyText())
		return
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), text)
	if err != nil {
		shared.LogError(h.logger, "analyze", err)
		writeError(c, err)
		return
	}

	if message, failed := morphology.IsErrorDocument(result); failed {
		h.logger.Info("analyze_recovered", "error", message, "input", shared.TrimRunes(text, inputPreviewRunes))
	}

	c.JSON(http.StatusOK, AnalyzeResponse{
		Success:   true,
		InputText: text,
		Result:    result,
	})
}
