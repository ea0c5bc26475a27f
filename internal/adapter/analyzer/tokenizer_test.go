package analyzer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenizer_Tokenize(t *testing.T) {
	tok := NewTokenizer()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "distinct tokens in first-seen order",
			text: "to be or not to be",
			want: []string{"to", "be", "or", "not"},
		},
		{
			name: "case sensitive",
			text: "Word word WORD",
			want: []string{"Word", "word", "WORD"},
		},
		{
			name: "punctuation kept",
			text: "hello, world. hello,",
			want: []string{"hello,", "world."},
		},
		{
			name: "mixed whitespace",
			text: "one\ttwo\n three\t\tone",
			want: []string{"one", "two", "three"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			text: " \t\n ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestTokenizer_Deterministic(t *testing.T) {
	tok := NewTokenizer()
	text := "famous_phrases to be or not to be"

	first := tok.Tokenize(text)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, tok.Tokenize(text)); diff != "" {
			t.Fatalf("run %d differs (-first +got):\n%s", i, diff)
		}
	}
}
