package tasrif

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Entry: (라벨, 생성형) 한 쌍입니다. JSON 에서는 [label, form] 배열로 직렬화된다.
type Entry struct {
	Label string
	Form  string
}

// MarshalJSON 은 Entry 를 2-원소 배열로 인코딩한다.
func (e Entry) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal([2]string{e.Label, e.Form})
	if err != nil {
		return nil, fmt.Errorf("marshal tasrif entry: %w", err)
	}
	return data, nil
}

// UnmarshalJSON 은 [label, form] 배열을 Entry 로 디코딩한다.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("unmarshal tasrif entry: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("unmarshal tasrif entry: expected 2 elements, got %d", len(pair))
	}
	e.Label = pair[0]
	e.Form = pair[1]
	return nil
}
