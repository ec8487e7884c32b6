package config

import (
	"testing"
	"time"
)

func TestParseAPIKeys(t *testing.T) {
	t.Setenv("GOOGLE_API_KEYS", "k1, k2")
	keys := parseAPIKeys()
	if len(keys) != 2 || keys[0] != "k1" || keys[1] != "k2" {
		t.Fatalf("unexpected keys: %+v", keys)
	}

	t.Setenv("GOOGLE_API_KEYS", "")
	t.Setenv("GOOGLE_API_KEY", "single")
	keys = parseAPIKeys()
	if len(keys) != 1 || keys[0] != "single" {
		t.Fatalf("unexpected single key: %+v", keys)
	}

	t.Setenv("GOOGLE_API_KEY", "")
	if keys := parseAPIKeys(); keys != nil {
		t.Fatalf("expected nil keys, got %+v", keys)
	}
}

func TestSplitKeys(t *testing.T) {
	keys := splitKeys("a,b c\td\n")
	if len(keys) != 4 {
		t.Fatalf("unexpected keys length: %d", len(keys))
	}
}

func TestBuildConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"GEMINI_MODEL", "GEMINI_TEMPERATURE", "GEMINI_TOP_K", "GEMINI_TOP_P",
		"GEMINI_MAX_TOKENS", "GEMINI_TIMEOUT", "HTTP_PORT", "GEMINI_API_VERSION",
	} {
		t.Setenv(key, "")
	}

	cfg := buildConfig()
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Fatalf("unexpected model: %s", cfg.Gemini.Model)
	}
	if cfg.Gemini.Temperature != 0.1 || cfg.Gemini.TopK != 40 || cfg.Gemini.TopP != 0.95 {
		t.Fatalf("unexpected sampling: %+v", cfg.Gemini)
	}
	if cfg.Gemini.MaxOutputTokens != 2048 {
		t.Fatalf("unexpected max tokens: %d", cfg.Gemini.MaxOutputTokens)
	}
	if cfg.Gemini.Timeout() != 30*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.Gemini.Timeout())
	}
	if cfg.Gemini.APIVersion != "v1beta" {
		t.Fatalf("unexpected api version: %s", cfg.Gemini.APIVersion)
	}
	if cfg.HTTP.Addr() != "0.0.0.0:5000" {
		t.Fatalf("unexpected addr: %s", cfg.HTTP.Addr())
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestBuildConfigOverrides(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("GEMINI_TIMEOUT", "5")
	t.Setenv("GEMINI_TEMPERATURE", "not-a-number")
	t.Setenv("HTTP_GZIP_ENABLED", "no")

	cfg := buildConfig()
	if cfg.Gemini.Model != "gemini-2.0-flash" {
		t.Fatalf("unexpected model: %s", cfg.Gemini.Model)
	}
	if cfg.Gemini.TimeoutSeconds != 5 {
		t.Fatalf("unexpected timeout: %d", cfg.Gemini.TimeoutSeconds)
	}
	if cfg.Gemini.Temperature != 0.1 {
		t.Fatalf("invalid float should fall back to default, got %v", cfg.Gemini.Temperature)
	}
	if cfg.HTTP.GzipEnabled {
		t.Fatalf("expected gzip disabled")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := GeminiConfig{
		Model:           "gemini-2.5-flash",
		Temperature:     0.1,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 2048,
		TimeoutSeconds:  30,
	}

	tests := []struct {
		name    string
		mutate  func(g *GeminiConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(g *GeminiConfig) {}},
		{name: "empty model", mutate: func(g *GeminiConfig) { g.Model = " " }, wantErr: true},
		{name: "zero timeout", mutate: func(g *GeminiConfig) { g.TimeoutSeconds = 0 }, wantErr: true},
		{name: "temperature too high", mutate: func(g *GeminiConfig) { g.Temperature = 2.5 }, wantErr: true},
		{name: "top_p zero", mutate: func(g *GeminiConfig) { g.TopP = 0 }, wantErr: true},
		{name: "negative top_k", mutate: func(g *GeminiConfig) { g.TopK = -1 }, wantErr: true},
		{name: "no tokens", mutate: func(g *GeminiConfig) { g.MaxOutputTokens = 0 }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := valid
			tc.mutate(&g)
			err := (&Config{Gemini: g}).Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}

	var nilCfg *Config
	if err := nilCfg.Validate(); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestGeminiConfigPrimaryKey(t *testing.T) {
	cfg := GeminiConfig{APIKeys: []string{"key1", "key2"}}
	if cfg.PrimaryKey() != "key1" {
		t.Fatalf("expected 'key1', got: %s", cfg.PrimaryKey())
	}

	cfg = GeminiConfig{APIKeys: nil}
	if cfg.PrimaryKey() != "" {
		t.Fatalf("expected empty string for nil keys")
	}
}

func TestMaskSecret(t *testing.T) {
	if got := maskSecret(""); got != "<missing>" {
		t.Fatalf("unexpected mask for empty: %s", got)
	}
	if got := maskSecret("abc"); got != "***" {
		t.Fatalf("unexpected mask for short: %s", got)
	}
	if got := maskSecret("AIzaSecretKey"); got != "AI***ey" {
		t.Fatalf("unexpected mask: %s", got)
	}
}
