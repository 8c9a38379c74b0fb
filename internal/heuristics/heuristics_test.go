package heuristics

import (
	"reflect"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		maxSentences int
		want         string
	}{
		{
			name:         "empty input",
			text:         "",
			maxSentences: 3,
			want:         "",
		},
		{
			name:         "whitespace only",
			text:         "  \n  ",
			maxSentences: 3,
			want:         "",
		},
		{
			name:         "fewer sentences than budget",
			text:         "One sentence only.",
			maxSentences: 3,
			want:         "One sentence only.",
		},
		{
			name:         "truncates to budget",
			text:         "First. Second! Third? Fourth.",
			maxSentences: 2,
			want:         "First. Second!",
		},
		{
			name:         "newlines treated as spaces",
			text:         "First.\nSecond.\nThird.",
			maxSentences: 2,
			want:         "First. Second.",
		},
		{
			name:         "punctuation without following space is not a boundary",
			text:         "Version 2.5 shipped. Then version 3.0 shipped.",
			maxSentences: 1,
			want:         "Version 2.5 shipped.",
		},
		{
			name:         "zero budget",
			text:         "Anything.",
			maxSentences: 0,
			want:         "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.text, tt.maxSentences)
			if got != tt.want {
				t.Errorf("Summarize(%q, %d) = %q, want %q", tt.text, tt.maxSentences, got, tt.want)
			}
		})
	}
}

func TestExtractTopics(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "short words dropped",
			text: "the quick brown fox jumps over the lazy dog",
			want: []string{"quick", "brown", "jumps", "over", "lazy"},
		},
		{
			name: "longest first, ties keep first-seen order",
			text: "delta gamma epsilon alpha",
			want: []string{"epsilon", "delta", "gamma", "alpha"},
		},
		{
			name: "deduplicated and lowercased",
			text: "Matrix MATRIX matrix vector",
			want: []string{"matrix", "vector"},
		},
		{
			name: "punctuation becomes word breaks",
			text: "supply-and-demand; elasticity!",
			want: []string{"elasticity", "supply", "demand"},
		},
		{
			name: "capped at six",
			text: "aaaa bbbb cccc dddd eeee ffff gggg hhhh",
			want: []string{"aaaa", "bbbb", "cccc", "dddd", "eeee", "ffff"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTopics(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractTopics(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
