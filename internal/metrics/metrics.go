// Package metrics computes complexity and style measurements over prose.
// Every operation is a pure function of the input text; empty or
// degenerate text is a legitimate zero-metric case, not an error.
package metrics

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"draftlens/internal/contenthash"
	"draftlens/internal/syllable"
	"draftlens/internal/tokenize"
)

var passivePattern = regexp.MustCompile(`\b(was|were|been|being)\s+\w+ed\b`)
var adverbPattern = regexp.MustCompile(`\b\w+ly\b`)
var dialoguePattern = regexp.MustCompile(`"[^"]*"`)

// Complexity holds derived readability measurements. Each ratio is
// defined as 0 when its denominator is 0.
type Complexity struct {
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
	AvgSyllablesPerWord float64 `json:"avg_syllables_per_word"`
	FogIndex            float64 `json:"fog_index"`
	FleschReadingEase   float64 `json:"flesch_reading_ease"`
	UniqueWordRatio     float64 `json:"unique_word_ratio"`
}

// Style holds pattern-density ratios over the raw text. ActionRatio and
// DescriptionRatio are reserved and always 0 pending deeper analysis.
type Style struct {
	PassiveVoiceRatio float64 `json:"passive_voice_ratio"`
	AdverbRatio       float64 `json:"adverb_ratio"`
	DialogueRatio     float64 `json:"dialogue_ratio"`
	ActionRatio       float64 `json:"action_ratio"`
	DescriptionRatio  float64 `json:"description_ratio"`
}

// Result is the full measurement report for one text. ReadabilityScore
// mirrors ComplexityMetrics.FleschReadingEase for callers that only want
// the headline number.
type Result struct {
	WordCount         int        `json:"word_count"`
	CharacterCount    int        `json:"character_count"`
	ParagraphCount    int        `json:"paragraph_count"`
	SentenceCount     int        `json:"sentence_count"`
	ReadabilityScore  float64    `json:"readability_score"`
	ComplexityMetrics Complexity `json:"complexity_metrics"`
	StyleMetrics      Style      `json:"style_metrics"`
	ContentHash       string     `json:"content_hash"`
}

// Analyze measures text and returns a complete report.
func Analyze(text string) Result {
	words := tokenize.Words(text)
	sentences := tokenize.Sentences(text)
	paragraphs := tokenize.Paragraphs(text)

	wordCount := len(words)
	sentenceCount := len(sentences)
	paragraphCount := len(paragraphs)

	avgWordsPerSentence := ratio(wordCount, sentenceCount)
	avgSyllablesPerWord := syllable.Average(words)

	uniqueWordRatio := 0.0
	if wordCount > 0 {
		distinct := make(map[string]struct{}, wordCount)
		for _, w := range words {
			distinct[strings.ToLower(w)] = struct{}{}
		}
		uniqueWordRatio = float64(len(distinct)) / float64(wordCount)
	}

	fleschReadingEase := 206.835 - 1.015*avgWordsPerSentence - 84.6*avgSyllablesPerWord

	// Fog index is undefined for empty text; 0 is the documented convention.
	fogIndex := 0.0
	if wordCount > 0 {
		complexWords := 0
		for _, w := range words {
			if syllable.Count(w) >= 3 {
				complexWords++
			}
		}
		fogIndex = 0.4 * (avgWordsPerSentence + 100.0*float64(complexWords)/float64(wordCount))
	}

	return Result{
		WordCount:        wordCount,
		CharacterCount:   utf8.RuneCountInString(text),
		ParagraphCount:   paragraphCount,
		SentenceCount:    sentenceCount,
		ReadabilityScore: fleschReadingEase,
		ComplexityMetrics: Complexity{
			AvgWordsPerSentence: avgWordsPerSentence,
			AvgSyllablesPerWord: avgSyllablesPerWord,
			FogIndex:            fogIndex,
			FleschReadingEase:   fleschReadingEase,
			UniqueWordRatio:     uniqueWordRatio,
		},
		StyleMetrics: Style{
			PassiveVoiceRatio: ratio(len(passivePattern.FindAllString(text, -1)), sentenceCount),
			AdverbRatio:       ratio(len(adverbPattern.FindAllString(text, -1)), wordCount),
			DialogueRatio:     ratio(len(dialoguePattern.FindAllString(text, -1)), paragraphCount),
		},
		ContentHash: contenthash.Sum(text),
	}
}

func ratio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}
