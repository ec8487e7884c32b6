package tasrif

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinRootLength: 어근의 최소 글자 수입니다.
const MinRootLength = 3

// 요청 검증 오류입니다.
var (
	ErrMissingField = errors.New("need root and mode")
	ErrInvalidRoot  = errors.New("invalid root")
	ErrInvalidMode  = errors.New("invalid mode")
)

// Result: 정규화된 어근과 생성 결과입니다.
type Result struct {
	Root    string
	Mode    Mode
	Rule    int
	Entries []Entry
}

// NormalizeRoot 는 공백과 발음 부호(tashkeel)를 제거한다.
// NFC 합성을 먼저 적용해 hamza 가 결합된 alif 는 한 글자로 남는다.
func NormalizeRoot(root string) string {
	t := transform.Chain(
		norm.NFC,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(unicode.IsSpace)),
	)
	out, _, err := transform.String(t, root)
	if err != nil {
		return strings.Join(strings.Fields(root), "")
	}
	return out
}

// Generate 는 어근과 모드를 검증하고 해당 표를 생성한다.
// 어근 길이 검사가 모드 검사보다 먼저다. 필드 누락(ErrMissingField)은 호출자가 판정한다.
func Generate(root, mode string) (Result, error) {
	normalized := NormalizeRoot(root)
	if utf8.RuneCountInString(normalized) < MinRootLength {
		return Result{}, ErrInvalidRoot
	}

	parsed, ok := ParseMode(mode)
	if !ok {
		return Result{}, ErrInvalidMode
	}

	result := Result{Root: normalized, Mode: parsed}
	switch parsed {
	case ModeIstilahi:
		result.Rule = RuleFor(normalized)
		result.Entries = ConjugateIstilahi(normalized)
	case ModeLughowiy:
		result.Entries = ConjugateLughowiy(normalized)
	case ModeIsim:
		result.Entries = DeclineIsim(normalized)
	}
	return result, nil
}

// ConjugateIstilahi 는 11개 파생형(과거형~도구명사)을 생성한다.
func ConjugateIstilahi(root string) []Entry {
	return expand(istilahiFamily(RuleFor(root)), root)
}

// ConjugateLughowiy 는 14개 인칭 변화형을 생성한다.
func ConjugateLughowiy(root string) []Entry {
	return expand(lughowiyTemplates, root)
}

// DeclineIsim 은 فَاعِل 형 명사 6개를 생성한다. 3글자 미만이면 빈 슬라이스를 반환한다.
func DeclineIsim(root string) []Entry {
	entries := expand(isimTemplates, root)
	if entries == nil {
		return []Entry{}
	}
	return entries
}

func expand(templates []template, root string) []Entry {
	replacer, ok := rootReplacer(root)
	if !ok {
		return nil
	}
	entries := make([]Entry, 0, len(templates))
	for _, tpl := range templates {
		entries = append(entries, Entry{Label: tpl.label, Form: replacer.Replace(tpl.pattern)})
	}
	return entries
}

// rootReplacer 는 앞 세 글자를 {r1}/{r2}/{r3} 에 대응시킨다. 나머지 글자는 무시한다.
func rootReplacer(root string) (*strings.Replacer, bool) {
	letters := []rune(root)
	if len(letters) < MinRootLength {
		return nil, false
	}
	return strings.NewReplacer(
		"{r1}", string(letters[0]),
		"{r2}", string(letters[1]),
		"{r3}", string(letters[2]),
	), true
}
