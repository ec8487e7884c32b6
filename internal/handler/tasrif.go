package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/park285/arabic-sarf-go/internal/httperror"
	"github.com/park285/arabic-sarf-go/internal/metrics"
	"github.com/park285/arabic-sarf-go/internal/tasrif"
	"github.com/park285/arabic-sarf-go/internal/telemetry"
)

// TasrifRequest 는 타스리프 요청 본문이다.
type TasrifRequest struct {
	Root *string `json:"root" binding:"required"`
	Mode *string `json:"mode" binding:"required"`
}

// TasrifResponse 는 타스리프 응답 본문이다.
type TasrifResponse struct {
	Success bool           `json:"success"`
	Tasrif  []tasrif.Entry `json:"tasrif"`
	Root    string         `json:"root"`
}

// TasrifHandler 는 /tasrif 핸들러다.
type TasrifHandler struct {
	metrics *metrics.Store
	logger  *slog.Logger
}

// NewTasrifHandler 는 TasrifHandler 를 생성한다.
func NewTasrifHandler(metricsStore *metrics.Store, logger *slog.Logger) *TasrifHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TasrifHandler{metrics: metricsStore, logger: logger}
}

// RegisterRoutes 는 타스리프 라우트를 등록한다.
func (h *TasrifHandler) RegisterRoutes(router gin.IRouter) {
	router.POST(PathTasrif, h.handleTasrif)
	router.OPTIONS(PathTasrif, handlePreflight)
}

// missingFieldsError 는 본문 파싱 실패를 tasrif.ErrMissingField 로 감싼다.
func missingFieldsError(err error) *httperror.Error {
	return httperror.FromError(fmt.Errorf("%w: %w", tasrif.ErrMissingField, err))
}

func (h *TasrifHandler) handleTasrif(c *gin.Context) {
	var req TasrifRequest
	if !bindJSON(c, &req, missingFieldsError) {
		return
	}

	_, span := telemetry.Tracer().Start(c.Request.Context(), "tasrif.generate")
	defer span.End()
	span.SetAttributes(attribute.String("tasrif.mode", *req.Mode))

	result, err := tasrif.Generate(*req.Root, *req.Mode)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		h.logger.Debug("tasrif_rejected", "mode", *req.Mode, "err", err)
		writeError(c, err)
		return
	}

	span.SetAttributes(
		attribute.Int("tasrif.rule", result.Rule),
		attribute.Int("tasrif.entries", len(result.Entries)),
	)
	if h.metrics != nil {
		h.metrics.RecordTasrif(string(result.Mode))
	}
	h.logger.Debug("tasrif_generated",
		"root", result.Root,
		"mode", result.Mode,
		"rule", result.Rule,
		"entries", len(result.Entries),
	)

	c.JSON(http.StatusOK, TasrifResponse{
		Success: true,
		Tasrif:  result.Entries,
		Root:    result.Root,
	})
}
