package morphology

import (
	"github.com/mitchellh/mapstructure"
)

// WordAnalysis: analysis 배열 원소의 읽기 전용 보기입니다.
type WordAnalysis struct {
	Word           string   `json:"word"`
	Root           string   `json:"root"`
	ExtraLetters   []string `json:"extra_letters"`
	Pattern        string   `json:"pattern"`
	Type           string   `json:"type"`
	Tense          string   `json:"tense,omitempty"`
	RelatedWords   []string `json:"related_words"`
	MeaningArabic  string   `json:"meaning_arabic"`
	MeaningEnglish string   `json:"meaning_english"`
}

// Words 는 문서의 analysis 배열을 WordAnalysis 로 읽는다.
// 형태가 맞지 않는 원소는 건너뛴다. 문서는 수정하지 않는다.
func Words(doc Document) []WordAnalysis {
	root, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	items, ok := root["analysis"].([]any)
	if !ok {
		return nil
	}

	words := make([]WordAnalysis, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		var word WordAnalysis
		if err := decodeLenient(entry, &word); err != nil {
			continue
		}
		words = append(words, word)
	}
	return words
}

func decodeLenient(input map[string]any, out *WordAnalysis) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
