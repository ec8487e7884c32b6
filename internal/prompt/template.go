package prompt

import (
	"errors"
	"fmt"
	"strings"
)

var errUnbalanced = errors.New("invalid template")

// scanTemplate 는 템플릿을 훑으며 리터럴과 {key} 자리표시자를 콜백으로 넘긴다.
// {{ 와 }} 는 중괄호 리터럴이다.
func scanTemplate(template string, literal func(string), placeholder func(string) error) error {
	start := 0
	for i := 0; i < len(template); {
		switch template[i] {
		case '{':
			literal(template[start:i])
			if i+1 < len(template) && template[i+1] == '{' {
				literal("{")
				i += 2
				start = i
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return fmt.Errorf("%w: missing '}'", errUnbalanced)
			}
			if err := placeholder(template[i+1 : i+1+end]); err != nil {
				return err
			}
			i += end + 2
			start = i
		case '}':
			literal(template[start:i])
			if i+1 < len(template) && template[i+1] == '}' {
				literal("}")
				i += 2
				start = i
				continue
			}
			return fmt.Errorf("%w: unexpected '}'", errUnbalanced)
		default:
			i++
		}
	}
	literal(template[start:])
	return nil
}

// FormatTemplate: 템플릿 문자열을 값으로 치환합니다.
// 치환된 값은 다시 해석하지 않는다.
func FormatTemplate(template string, values map[string]string) (string, error) {
	var builder strings.Builder
	builder.Grow(len(template))

	err := scanTemplate(template,
		func(s string) { builder.WriteString(s) },
		func(key string) error {
			value, ok := values[key]
			if !ok {
				return fmt.Errorf("missing template value for %q", key)
			}
			builder.WriteString(value)
			return nil
		},
	)
	if err != nil {
		return "", err
	}
	return builder.String(), nil
}

// ValidateSystemStatic: 시스템 프롬프트에 템플릿 변수가 없는지 검사합니다.
func ValidateSystemStatic(name string, system string) error {
	err := scanTemplate(system,
		func(string) {},
		func(key string) error {
			return fmt.Errorf("%s: system prompt must not contain template variables %q", name, key)
		},
	)
	if errors.Is(err, errUnbalanced) {
		return fmt.Errorf("%s: invalid system prompt template syntax", name)
	}
	return err
}
