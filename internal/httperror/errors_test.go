package httperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/park285/arabic-sarf-go/internal/gemini"
	"github.com/park285/arabic-sarf-go/internal/morphology"
	"github.com/park285/arabic-sarf-go/internal/tasrif"
)

func TestFromErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   ErrorCode
		wantStatus int
		wantMsg    string
	}{
		{name: "empty text", err: morphology.ErrEmptyText, wantCode: ErrorCodeEmptyText, wantStatus: http.StatusBadRequest, wantMsg: "Empty text"},
		{name: "missing field", err: tasrif.ErrMissingField, wantCode: ErrorCodeMissingField, wantStatus: http.StatusBadRequest, wantMsg: "Need root and mode"},
		{name: "invalid root", err: tasrif.ErrInvalidRoot, wantCode: ErrorCodeInvalidRoot, wantStatus: http.StatusBadRequest, wantMsg: "Invalid root"},
		{name: "invalid mode", err: fmt.Errorf("wrap: %w", tasrif.ErrInvalidMode), wantCode: ErrorCodeInvalidMode, wantStatus: http.StatusBadRequest, wantMsg: "Invalid mode"},
		{name: "missing key", err: gemini.ErrMissingAPIKey, wantCode: ErrorCodeLLMConfig, wantStatus: http.StatusInternalServerError, wantMsg: "Server error: missing gemini api key"},
		{name: "unknown", err: errors.New("boom"), wantCode: ErrorCodeInternal, wantStatus: http.StatusInternalServerError, wantMsg: "Server error: boom"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			apiErr := FromError(tc.err)
			if apiErr == nil {
				t.Fatalf("expected error")
			}
			if apiErr.Code != tc.wantCode || apiErr.Status != tc.wantStatus || apiErr.Message != tc.wantMsg {
				t.Fatalf("unexpected mapping: %+v", apiErr)
			}
		})
	}

	if FromError(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestFromErrorWrappedMissingField(t *testing.T) {
	type payload struct {
		Mode *string `validate:"required"`
	}
	cause := validator.New().Struct(payload{})
	apiErr := FromError(fmt.Errorf("%w: %w", tasrif.ErrMissingField, cause))
	if apiErr == nil || apiErr.Code != ErrorCodeMissingField || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected missing field error, got %+v", apiErr)
	}
	fields, ok := apiErr.Details["errors"].([]FieldError)
	if !ok || len(fields) != 1 || fields[0].Field != "Mode" {
		t.Fatalf("unexpected details: %+v", apiErr.Details)
	}

	if bare := FromError(tasrif.ErrMissingField); bare.Details != nil {
		t.Fatalf("expected no details for bare sentinel, got %+v", bare.Details)
	}
}

func TestFromErrorValidation(t *testing.T) {
	type payload struct {
		Text *string `validate:"required"`
	}
	err := validator.New().Struct(payload{})
	apiErr := FromError(err)
	if apiErr == nil || apiErr.Code != ErrorCodeValidation || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected validation error, got %+v", apiErr)
	}
	fields, ok := apiErr.Details["errors"].([]FieldError)
	if !ok || len(fields) != 1 || fields[0].Field != "Text" {
		t.Fatalf("unexpected details: %+v", apiErr.Details)
	}
}

func TestResponseIncludesRequestID(t *testing.T) {
	status, payload := Response(NewNoTextProvided(nil), "req-1")
	if status != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", status)
	}
	if payload.RequestID == nil || *payload.RequestID != "req-1" {
		t.Fatalf("expected request id")
	}
	if payload.Error != "No text provided" || payload.Message != MsgNoText {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.Details != nil {
		t.Fatalf("expected no details without cause")
	}
}

func TestResponseWithoutRequestID(t *testing.T) {
	status, payload := Response(errors.New("boom"), "")
	if status != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", status)
	}
	if payload.RequestID != nil {
		t.Fatalf("expected nil request id")
	}
	if payload.Message != MsgServerError {
		t.Fatalf("unexpected arabic message: %s", payload.Message)
	}
}

func TestNewTasrifMissingFieldsDetails(t *testing.T) {
	apiErr := NewTasrifMissingFields(errors.New("unexpected EOF"))
	fields, ok := apiErr.Details["errors"].([]FieldError)
	if !ok || len(fields) != 1 || fields[0].Field != "body" {
		t.Fatalf("unexpected details: %+v", apiErr.Details)
	}
}

func TestNewInvalidModeListsModes(t *testing.T) {
	apiErr := NewInvalidMode()
	allowed, ok := apiErr.Details["allowed"].([]string)
	if !ok || len(allowed) != 3 {
		t.Fatalf("unexpected allowed modes: %+v", apiErr.Details)
	}
}
