package morphology

import (
	"strings"

	json "github.com/goccy/go-json"
)

// Document: 외부 API 가 돌려준 분석 결과입니다. 스키마 검증 없이 그대로 전달된다.
type Document = any

// 외부 의존성 오류 문구입니다. result.error 로 노출된다.
const (
	ErrTextTimeout     = "Request timeout"
	ErrTextNoResponse  = "No response from Gemini API"
	ErrTextParse       = "Could not parse JSON response"
	errTextRequestFail = "API request failed: "
)

const (
	summaryTimeout    = "انتهت مهلة الطلب"
	summaryRequest    = "حدث خطأ في الاتصال بالخدمة"
	summaryNoResponse = "لم يتم الحصول على رد من الخدمة"
	summaryParse      = "تعذر تحليل النص بشكل صحيح"
)

const (
	jsonFence  = "```json"
	plainFence = "```"
)

func errorDocument(message, summary string) map[string]any {
	return map[string]any{
		"error":    message,
		"analysis": []any{},
		"summary":  summary,
	}
}

// timeoutResult 는 제한 시간 초과 결과를 만든다.
func timeoutResult() map[string]any {
	return errorDocument(ErrTextTimeout, summaryTimeout)
}

// requestFailedResult 는 전송/API 오류 결과를 만든다.
func requestFailedResult(detail string) map[string]any {
	return errorDocument(errTextRequestFail+detail, summaryRequest)
}

// noResponseResult 는 후보가 없을 때의 결과를 만든다.
func noResponseResult() map[string]any {
	return errorDocument(ErrTextNoResponse, summaryNoResponse)
}

// unparsedResult 는 JSON 파싱 실패 결과를 만든다. 원문을 raw_response 로 담는다.
func unparsedResult(raw string) map[string]any {
	doc := errorDocument(ErrTextParse, summaryParse)
	doc["raw_response"] = raw
	return doc
}

// StripFence 는 코드 펜스 표식을 제거한다.
// ```json 으로 시작하면 ```json 과 ``` 를 모두 지우고, ``` 로 시작하면 ``` 만 지운다.
// 펜스가 없으면 원문을 그대로 돌려준다.
func StripFence(text string) string {
	trimmed := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(trimmed, jsonFence):
		trimmed = strings.ReplaceAll(trimmed, jsonFence, "")
		return strings.TrimSpace(strings.ReplaceAll(trimmed, plainFence, ""))
	case strings.HasPrefix(trimmed, plainFence):
		return strings.TrimSpace(strings.ReplaceAll(trimmed, plainFence, ""))
	default:
		return text
	}
}

// ParseReply 는 응답 텍스트를 JSON 으로 해석한다. 실패하면 ok=false 와 함께 unparsedResult 를 반환한다.
func ParseReply(text string) (Document, bool) {
	var doc Document
	if err := json.Unmarshal([]byte(StripFence(text)), &doc); err != nil {
		return unparsedResult(text), false
	}
	return doc, true
}

// IsErrorDocument 는 문서가 오류 변형인지 확인한다.
func IsErrorDocument(doc Document) (string, bool) {
	m, ok := doc.(map[string]any)
	if !ok {
		return "", false
	}
	message, ok := m["error"].(string)
	return message, ok
}
