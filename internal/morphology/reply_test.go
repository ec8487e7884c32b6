package morphology

import "testing"

func TestStripFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "json fence", in: "```json\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "plain fence", in: "```\n[1, 2]\n```", want: "[1, 2]"},
		{name: "surrounding whitespace", in: "\n  ```json\n{}\n```  \n", want: "{}"},
		{name: "no fence", in: ` {"a": 1} `, want: ` {"a": 1} `},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripFence(tc.in); got != tc.want {
				t.Fatalf("StripFence() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseReply(t *testing.T) {
	doc, ok := ParseReply("```json\n{\"analysis\": [], \"summary\": \"s\"}\n```")
	if !ok {
		t.Fatalf("expected fenced json to parse")
	}
	if _, isErr := IsErrorDocument(doc); isErr {
		t.Fatalf("did not expect error document")
	}

	doc, ok = ParseReply("```json\n{broken\n```")
	if ok {
		t.Fatalf("expected parse failure")
	}
	message, isErr := IsErrorDocument(doc)
	if !isErr || message != ErrTextParse {
		t.Fatalf("unexpected error document: %v", doc)
	}
	if doc.(map[string]any)["raw_response"] != "```json\n{broken\n```" {
		t.Fatalf("raw_response should keep the original text")
	}
}

func TestParseReplyNonObject(t *testing.T) {
	doc, ok := ParseReply("[1, 2]")
	if !ok {
		t.Fatalf("expected array to parse")
	}
	if items, isSlice := doc.([]any); !isSlice || len(items) != 2 {
		t.Fatalf("expected verbatim array, got %#v", doc)
	}
}

func TestWords(t *testing.T) {
	doc, ok := ParseReply(`{"analysis": [
		{"word": "كتب", "root": "ك ت ب", "extra_letters": "ا", "related_words": ["كاتب", "مكتوب"], "tense": "ماضي"},
		"garbage",
		{"word": 5}
	], "summary": "s"}`)
	if !ok {
		t.Fatalf("expected json to parse")
	}

	words := Words(doc)
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	if words[0].Root != "ك ت ب" || len(words[0].RelatedWords) != 2 {
		t.Fatalf("unexpected first word: %+v", words[0])
	}
	if len(words[0].ExtraLetters) != 1 || words[0].ExtraLetters[0] != "ا" {
		t.Fatalf("expected single letter to widen to slice: %+v", words[0].ExtraLetters)
	}
	if words[1].Word != "5" {
		t.Fatalf("expected weak decoding of number, got %q", words[1].Word)
	}

	if Words("text") != nil {
		t.Fatalf("expected nil for non-object document")
	}
}
