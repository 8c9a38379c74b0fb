// Package heuristics holds the naive text utilities: a truncating
// sentence summarizer and a longest-words keyword extractor. Both are
// single-pass heuristics with no shared state, not NLP.
package heuristics

import (
	"sort"
	"strings"
	"unicode"
)

// MaxTopics is the number of keywords ExtractTopics returns at most.
const MaxTopics = 6

// minTopicLength is the exclusive lower bound on kept word length.
const minTopicLength = 3

// Summarize returns the first maxSentences sentences of text joined by a
// single space. A sentence boundary is '.', '!' or '?' followed by
// whitespace. Empty input (or a non-positive sentence count) yields "".
// This is truncation by sentence count, not a real summarizer.
func Summarize(text string, maxSentences int) string {
	if maxSentences <= 0 {
		return ""
	}
	text = strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	if text == "" {
		return ""
	}

	sentences := splitSentences(text)
	if len(sentences) > maxSentences {
		sentences = sentences[:maxSentences]
	}
	return strings.Join(sentences, " ")
}

func splitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		b.WriteRune(r)
		if isBoundary(r) && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			if s := strings.TrimSpace(b.String()); s != "" {
				sentences = append(sentences, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isBoundary(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// ExtractTopics returns up to MaxTopics unique words of text, longest
// first. Text is lowercased and every non-alphanumeric rune becomes a word
// break; words of length three or less are dropped. The sort is stable, so
// equal-length words keep first-seen order. Empty input yields nil.
func ExtractTopics(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, strings.ToLower(text))

	seen := make(map[string]bool)
	var topics []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= minTopicLength || seen[w] {
			continue
		}
		seen[w] = true
		topics = append(topics, w)
	}

	sort.SliceStable(topics, func(i, j int) bool {
		return len(topics[i]) > len(topics[j])
	})

	if len(topics) > MaxTopics {
		topics = topics[:MaxTopics]
	}
	return topics
}
