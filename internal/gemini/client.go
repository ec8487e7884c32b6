package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/genai"

	"github.com/park285/arabic-sarf-go/internal/config"
	"github.com/park285/arabic-sarf-go/internal/llm"
	"github.com/park285/arabic-sarf-go/internal/metrics"
	"github.com/park285/arabic-sarf-go/internal/randx"
)

var (
	// ErrMissingAPIKey 는 Gemini API 키가 없을 때 반환된다.
	ErrMissingAPIKey = errors.New("missing gemini api key")
	// ErrTimeout 는 호출이 제한 시간을 넘겼을 때 반환된다.
	ErrTimeout = errors.New("gemini request timeout")
)

// Request 는 Gemini 요청 데이터다.
type Request struct {
	Prompt       string
	SystemPrompt string
}

// Reply 는 첫 번째 후보의 텍스트와 메타데이터다.
// Candidates 가 0 이면 Text 는 비어 있다.
type Reply struct {
	Text       string
	Candidates int
	Model      string
	Usage      llm.Usage
}

// Client 는 Gemini 호출을 담당한다.
// 호출마다 키 풀에서 하나를 균등 확률로 고르고, 키별 genai.Client 를 재사용한다.
type Client struct {
	cfg        config.GeminiConfig
	metrics    *metrics.Store
	rng        *randx.LockedRand
	httpClient *http.Client
	timeout    time.Duration

	mu      sync.Mutex
	clients map[string]*genai.Client
	apiKeys []string
}

// NewClient 는 Gemini 클라이언트를 생성한다.
func NewClient(cfg *config.Config, metricsStore *metrics.Store) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if metricsStore == nil {
		return nil, errors.New("metrics store is nil")
	}

	httpClient := &http.Client{}
	if cfg.Telemetry.Enabled {
		httpClient.Transport = otelhttp.NewTransport(http.DefaultTransport)
	}

	return &Client{
		cfg:        cfg.Gemini,
		metrics:    metricsStore,
		rng:        randx.New(nil),
		httpClient: httpClient,
		timeout:    cfg.Gemini.Timeout(),
		clients:    make(map[string]*genai.Client),
		apiKeys:    cfg.Gemini.APIKeys,
	}, nil
}

// Generate 는 단일 generateContent 호출을 수행한다. 재시도하지 않는다.
// 호출자의 취소와 무관하게 제한 시간까지 진행된다.
func (c *Client) Generate(ctx context.Context, req Request) (Reply, error) {
	model := c.cfg.Model
	client, err := c.selectClient(ctx)
	if err != nil {
		return Reply{Model: model}, err
	}

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	start := time.Now()
	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}
	response, err := client.Models.GenerateContent(callCtx, model, contents, c.buildGenerateConfig(req.SystemPrompt))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			c.metrics.RecordTimeout(time.Since(start))
			return Reply{Model: model}, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		c.metrics.RecordError(time.Since(start))
		return Reply{Model: model}, fmt.Errorf("generate content: %w", err)
	}

	usage := extractUsage(response)
	c.metrics.RecordSuccess(time.Since(start), usage)

	reply := Reply{Model: model, Usage: usage}
	if response != nil {
		reply.Candidates = len(response.Candidates)
	}
	reply.Text = strings.Join(extractParts(response), "")
	return reply, nil
}

// Ready 는 호출에 필요한 설정이 갖춰졌는지 확인한다.
func (c *Client) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.apiKeys) > 0 && strings.TrimSpace(c.cfg.Model) != ""
}

func (c *Client) selectClient(ctx context.Context) (*genai.Client, error) {
	key, ok := randx.Pick(c.rng, c.apiKeys)
	if !ok {
		return nil, ErrMissingAPIKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.clients[key]; ok {
		return client, nil
	}

	client, err := genai.NewClient(context.WithoutCancel(ctx), &genai.ClientConfig{
		APIKey:      key,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  c.httpClient,
		HTTPOptions: c.httpOptions(),
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	c.clients[key] = client
	return client, nil
}

func (c *Client) httpOptions() genai.HTTPOptions {
	options := genai.HTTPOptions{}
	if base := strings.TrimSpace(c.cfg.BaseURL); base != "" {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		options.BaseURL = base
	}
	if version := strings.TrimSpace(c.cfg.APIVersion); version != "" {
		options.APIVersion = version
	}
	return options
}

func (c *Client) buildGenerateConfig(systemPrompt string) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(c.cfg.Temperature)),
		TopP:            genai.Ptr(float32(c.cfg.TopP)),
		MaxOutputTokens: int32(c.cfg.MaxOutputTokens),
	}
	if c.cfg.TopK > 0 {
		config.TopK = genai.Ptr(float32(c.cfg.TopK))
	}
	if systemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}
	return config
}

// extractParts 는 첫 번째 후보의 텍스트 파트를 모은다. thought 파트는 제외한다.
func extractParts(response *genai.GenerateContentResponse) []string {
	if response == nil || len(response.Candidates) == 0 {
		return nil
	}
	content := response.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return nil
	}

	texts := make([]string, 0, len(content.Parts))
	for _, part := range content.Parts {
		if part == nil || part.Text == "" || part.Thought {
			continue
		}
		texts = append(texts, part.Text)
	}
	return texts
}

func extractUsage(response *genai.GenerateContentResponse) llm.Usage {
	if response == nil || response.UsageMetadata == nil {
		return llm.Usage{}
	}
	usage := response.UsageMetadata
	return llm.Usage{
		InputTokens:     int(usage.PromptTokenCount),
		OutputTokens:    int(usage.CandidatesTokenCount) + int(usage.ThoughtsTokenCount),
		TotalTokens:     int(usage.TotalTokenCount),
		ReasoningTokens: int(usage.ThoughtsTokenCount),
		CachedTokens:    int(usage.CachedContentTokenCount),
	}
}
