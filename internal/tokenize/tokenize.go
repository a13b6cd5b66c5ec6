// Package tokenize splits raw prose into word, sentence, and paragraph
// views. The three views are independent and total: any input, including
// the empty string, yields zero or more tokens of each kind.
package tokenize

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)
var sentenceEnd = regexp.MustCompile(`[.!?]+`)
var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// Words returns every maximal run of word characters, in order of
// appearance.
func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// Sentences splits text on runs of sentence terminators and drops
// fragments that are empty after trimming.
func Sentences(text string) []string {
	return trimNonEmpty(sentenceEnd.Split(text, -1))
}

// Paragraphs splits text on blank lines and drops fragments that are
// empty after trimming.
func Paragraphs(text string) []string {
	return trimNonEmpty(paragraphBreak.Split(text, -1))
}

func trimNonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
