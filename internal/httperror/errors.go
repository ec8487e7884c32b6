package httperror

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/park285/arabic-sarf-go/internal/gemini"
	"github.com/park285/arabic-sarf-go/internal/morphology"
	"github.com/park285/arabic-sarf-go/internal/tasrif"
)

// ErrorCode 는 API 오류 코드다.
type ErrorCode string

const (
	// ErrorCodeInternal 는 내부 오류 코드다.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrorCodeValidation 는 검증 오류 코드다.
	ErrorCodeValidation ErrorCode = "VALIDATION_ERROR"
	// ErrorCodeMissingField 는 필드 누락 코드다.
	ErrorCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrorCodeEmptyText 는 빈 텍스트 코드다.
	ErrorCodeEmptyText ErrorCode = "EMPTY_TEXT"
	// ErrorCodeInvalidRoot 는 어근 길이 오류 코드다.
	ErrorCodeInvalidRoot ErrorCode = "INVALID_ROOT"
	// ErrorCodeInvalidMode 는 모드 오류 코드다.
	ErrorCodeInvalidMode ErrorCode = "INVALID_MODE"
	// ErrorCodeLLMConfig 는 LLM 설정 누락 코드다.
	ErrorCodeLLMConfig ErrorCode = "LLM_CONFIG_ERROR"
)

// 아랍어 사용자 메시지
const (
	MsgNoText      = "يرجى إدخال نص للتحليل"
	MsgEmptyText   = "النص فارغ"
	MsgNeedFields  = "يرجى إدخال الجذر ونوع التصريف"
	MsgInvalidRoot = "يجب أن يتكون الجذر من ثلاثة أحرف على الأقل"
	MsgInvalidMode = "نوع التصريف غير صحيح"
	MsgServerError = "حدث خطأ في الخادم"
)

// ErrorResponse 는 API 오류 응답 본문이다.
// error 는 영문, message 는 아랍어 문구다.
type ErrorResponse struct {
	Error     string         `json:"error"`
	Message   string         `json:"message,omitempty"`
	ErrorCode string         `json:"error_code"`
	RequestID *string        `json:"request_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// Error 는 내부 표준 오류 타입이다.
type Error struct {
	Code    ErrorCode
	Status  int
	Message string
	Arabic  string
	Details map[string]any
}

// Error 는 오류 메시지를 반환한다.
func (e *Error) Error() string {
	return e.Message
}

// Response 는 오류를 HTTP 응답으로 변환한다.
func Response(err error, requestID string) (int, ErrorResponse) {
	apiErr := FromError(err)
	if apiErr == nil {
		apiErr = NewInternalError("unknown error")
	}

	var requestIDPtr *string
	if requestID != "" {
		requestIDPtr = &requestID
	}

	return apiErr.Status, ErrorResponse{
		Error:     apiErr.Message,
		Message:   apiErr.Arabic,
		ErrorCode: string(apiErr.Code),
		RequestID: requestIDPtr,
		Details:   apiErr.Details,
	}
}

// FromError 는 오류를 내부 오류 타입으로 변환한다.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, morphology.ErrEmptyText):
		return NewEmptyText()
	case errors.Is(err, tasrif.ErrMissingField):
		if err == tasrif.ErrMissingField {
			return NewTasrifMissingFields(nil)
		}
		return NewTasrifMissingFields(err)
	case errors.Is(err, tasrif.ErrInvalidRoot):
		return NewInvalidRoot()
	case errors.Is(err, tasrif.ErrInvalidMode):
		return NewInvalidMode()
	case errors.Is(err, gemini.ErrMissingAPIKey):
		apiErr := NewInternalError(err.Error())
		apiErr.Code = ErrorCodeLLMConfig
		return apiErr
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return &Error{
			Code:    ErrorCodeValidation,
			Status:  http.StatusBadRequest,
			Message: "Input validation failed",
			Details: validationDetails(err),
		}
	}

	return NewInternalError(err.Error())
}

// NewInternalError 는 내부 오류를 생성한다.
func NewInternalError(detail string) *Error {
	return &Error{
		Code:    ErrorCodeInternal,
		Status:  http.StatusInternalServerError,
		Message: "Server error: " + detail,
		Arabic:  MsgServerError,
	}
}

// NewNoTextProvided 는 text 필드 누락 오류를 생성한다. cause 는 상세로만 쓰인다.
func NewNoTextProvided(cause error) *Error {
	return &Error{
		Code:    ErrorCodeMissingField,
		Status:  http.StatusBadRequest,
		Message: "No text provided",
		Arabic:  MsgNoText,
		Details: causeDetails(cause),
	}
}

// NewEmptyText 는 빈 텍스트 오류를 생성한다.
func NewEmptyText() *Error {
	return &Error{
		Code:    ErrorCodeEmptyText,
		Status:  http.StatusBadRequest,
		Message: "Empty text",
		Arabic:  MsgEmptyText,
	}
}

// NewTasrifMissingFields 는 root/mode 누락 오류를 생성한다.
func NewTasrifMissingFields(cause error) *Error {
	return &Error{
		Code:    ErrorCodeMissingField,
		Status:  http.StatusBadRequest,
		Message: "Need root and mode",
		Arabic:  MsgNeedFields,
		Details: causeDetails(cause),
	}
}

// NewInvalidRoot 는 어근 길이 오류를 생성한다.
func NewInvalidRoot() *Error {
	return &Error{
		Code:    ErrorCodeInvalidRoot,
		Status:  http.StatusBadRequest,
		Message: "Invalid root",
		Arabic:  MsgInvalidRoot,
		Details: map[string]any{"min_length": tasrif.MinRootLength},
	}
}

// NewInvalidMode 는 모드 오류를 생성한다.
func NewInvalidMode() *Error {
	modes := make([]string, 0, len(tasrif.Modes))
	for _, mode := range tasrif.Modes {
		modes = append(modes, string(mode))
	}
	return &Error{
		Code:    ErrorCodeInvalidMode,
		Status:  http.StatusBadRequest,
		Message: "Invalid mode",
		Arabic:  MsgInvalidMode,
		Details: map[string]any{"allowed": modes},
	}
}

// FieldError 는 필드 오류 상세 정보다.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func causeDetails(err error) map[string]any {
	if err == nil {
		return nil
	}
	return validationDetails(err)
}

func validationDetails(err error) map[string]any {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]FieldError, 0, len(validationErrors))
		for _, validationErr := range validationErrors {
			fields = append(fields, FieldError{
				Field:   validationErr.Field(),
				Message: validationErr.Error(),
			})
		}
		return map[string]any{"errors": fields}
	}

	return map[string]any{
		"errors": []FieldError{
			{
				Field:   "body",
				Message: err.Error(),
			},
		},
	}
}
