package morphology

import (
	"embed"
	"fmt"
	"strings"

	"github.com/park285/arabic-sarf-go/internal/prompt"
)

//go:embed prompts/*.yml
var promptsFS embed.FS

const analyzePrompt = "analyze"

// Prompts 는 형태 분석 프롬프트 모음이다.
type Prompts struct {
	bundle *prompt.Bundle
}

// NewPrompts 는 내장 프롬프트를 로드하고 analyze 템플릿을 미리 검증한다.
func NewPrompts() (*Prompts, error) {
	bundle, err := prompt.LoadBundle(promptsFS, "prompts", "morphology")
	if err != nil {
		return nil, fmt.Errorf("load morphology prompts: %w", err)
	}
	p := &Prompts{bundle: bundle}
	if _, err := p.AnalyzeUser("probe"); err != nil {
		return nil, err
	}
	return p, nil
}

// AnalyzeSystem 은 시스템 프롬프트를 반환한다. 비어 있을 수 있다.
func (p *Prompts) AnalyzeSystem() (string, error) {
	data, err := p.bundle.Prompt(analyzePrompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(data["system"]), nil
}

// AnalyzeUser 는 입력 텍스트를 채운 유저 프롬프트를 반환한다.
func (p *Prompts) AnalyzeUser(text string) (string, error) {
	rendered, err := p.bundle.Render(analyzePrompt, "user", map[string]string{"text": text})
	if err != nil {
		return "", fmt.Errorf("format analyze prompt: %w", err)
	}
	return rendered, nil
}
