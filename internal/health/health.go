package health

import (
	"time"

	"github.com/park285/arabic-sarf-go/internal/config"
	"github.com/park285/arabic-sarf-go/internal/tasrif"
)

var startTime = time.Now()

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
)

// Component 는 상태 구성 요소다.
type Component struct {
	Status string         `json:"status"`
	Detail map[string]any `json:"detail"`
}

// Response 는 상태 응답 본문이다.
type Response struct {
	Status     string               `json:"status"`
	Components map[string]Component `json:"components"`
}

// Readiness 는 외부 호출에 필요한 설정이 갖춰졌는지 알려 준다.
type Readiness interface {
	Ready() bool
}

// OK 는 모든 구성 요소가 정상인지 확인한다.
func (r Response) OK() bool {
	return r.Status == statusOK
}

// Collect 는 헬스 상태를 수집한다.
// gemini 가 nil 이면 Gemini 구성 요소는 degraded 로 보고한다.
// deepChecks 가 true 면 타스리프 생성기를 실제로 돌려 본다.
func Collect(cfg *config.Config, gemini Readiness, deepChecks bool) Response {
	components := map[string]Component{
		"app":    buildAppStatus(),
		"gemini": buildGeminiStatus(cfg, gemini),
	}
	if deepChecks {
		components["tasrif"] = buildTasrifStatus()
	}

	overall := statusOK
	for _, component := range components {
		if component.Status != statusOK {
			overall = statusDegraded
			break
		}
	}

	return Response{Status: overall, Components: components}
}

func buildAppStatus() Component {
	return Component{
		Status: statusOK,
		Detail: map[string]any{
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		},
	}
}

func buildGeminiStatus(cfg *config.Config, gemini Readiness) Component {
	keyCount := 0
	model := ""
	timeoutSeconds := 0

	if cfg != nil {
		keyCount = len(cfg.Gemini.APIKeys)
		model = cfg.Gemini.Model
		timeoutSeconds = cfg.Gemini.TimeoutSeconds
	}
	status := statusDegraded
	if gemini != nil && gemini.Ready() {
		status = statusOK
	}

	return Component{
		Status: status,
		Detail: map[string]any{
			"api_key_present": keyCount > 0,
			"api_key_count":   keyCount,
			"model":           model,
			"timeout_seconds": timeoutSeconds,
		},
	}
}

// probeRoot/probePast: 자가 점검용 어근과 기대 과거형입니다.
const (
	probeRoot = "كتب"
	probePast = "كَتَبَ"
)

func buildTasrifStatus() Component {
	result, err := tasrif.Generate(probeRoot, string(tasrif.ModeIstilahi))
	detail := map[string]any{"probe_root": probeRoot}
	if err != nil {
		detail["error"] = err.Error()
		return Component{Status: statusDegraded, Detail: detail}
	}
	if len(result.Entries) == 0 || result.Entries[0].Form != probePast {
		detail["error"] = "unexpected probe output"
		return Component{Status: statusDegraded, Detail: detail}
	}
	detail["entries"] = len(result.Entries)
	return Component{Status: statusOK, Detail: detail}
}
