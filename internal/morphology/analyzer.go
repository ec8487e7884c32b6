package morphology

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/park285/arabic-sarf-go/internal/gemini"
)

// ErrEmptyText 는 분석할 텍스트가 비어 있을 때 반환된다.
var ErrEmptyText = errors.New("empty text")

// Analyzer 는 형태 분석 요청을 Gemini 로 위임한다.
type Analyzer struct {
	client  gemini.LLM
	prompts *Prompts
	logger  *slog.Logger
}

// NewAnalyzer 는 Analyzer 를 생성한다.
func NewAnalyzer(client gemini.LLM, prompts *Prompts, logger *slog.Logger) (*Analyzer, error) {
	if client == nil {
		return nil, errors.New("llm client is nil")
	}
	if prompts == nil {
		return nil, errors.New("prompts is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{client: client, prompts: prompts, logger: logger}, nil
}

// Analyze 는 텍스트를 분석한다.
// 외부 API 오류는 오류 문서로 변환되어 nil error 와 함께 반환된다.
// error 는 키 누락이나 프롬프트 문제 같은 내부 결함에만 쓰인다.
func (a *Analyzer) Analyze(ctx context.Context, text string) (Document, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	userPrompt, err := a.prompts.AnalyzeUser(text)
	if err != nil {
		return nil, err
	}
	systemPrompt, err := a.prompts.AnalyzeSystem()
	if err != nil {
		return nil, err
	}

	reply, err := a.client.Generate(ctx, gemini.Request{Prompt: userPrompt, SystemPrompt: systemPrompt})
	switch {
	case errors.Is(err, gemini.ErrMissingAPIKey):
		return nil, fmt.Errorf("analyze: %w", err)
	case errors.Is(err, gemini.ErrTimeout):
		a.logger.Warn("gemini_call_timeout", "model", reply.Model)
		return timeoutResult(), nil
	case err != nil:
		a.logger.Warn("gemini_call_failed", "model", reply.Model, "err", err)
		return requestFailedResult(err.Error()), nil
	}

	if reply.Candidates == 0 {
		a.logger.Warn("gemini_no_candidates", "model", reply.Model)
		return noResponseResult(), nil
	}

	doc, ok := ParseReply(reply.Text)
	if !ok {
		a.logger.Warn("morphology_reply_unparsed", "model", reply.Model, "chars", len([]rune(reply.Text)))
		return doc, nil
	}

	a.logger.Debug("morphology_analyzed",
		"model", reply.Model,
		"words", len(Words(doc)),
		"input_tokens", reply.Usage.InputTokens,
		"output_tokens", reply.Usage.OutputTokens,
	)
	return doc, nil
}
