// Package suggest scans prose for heuristic writing issues and emits
// ranked improvement suggestions.
package suggest

import (
	"regexp"
	"strings"

	"draftlens/internal/tokenize"
)

var passivePattern = regexp.MustCompile(`\b(was|were|been|being)\s+\w+ed\b`)
var adverbPattern = regexp.MustCompile(`\b\w+ly\b`)

const (
	TypeSentenceLength = "sentence_length"
	TypePassiveVoice   = "passive_voice"
	TypeAdverbUsage    = "adverb_usage"

	PriorityMedium = "medium"
	PriorityLow    = "low"
)

const longSentenceWords = 25

// Suggestion is one heuristic finding. SuggestedReplacement stays nil
// until a heuristic can propose concrete replacement text; none
// currently do.
type Suggestion struct {
	SuggestionType       string  `json:"suggestion_type"`
	Priority             string  `json:"priority"`
	Message              string  `json:"message"`
	StartPos             int     `json:"start_pos"`
	EndPos               int     `json:"end_pos"`
	SuggestedReplacement *string `json:"suggested_replacement"`
}

// Generate runs the three scans in a fixed order: long sentences, then
// passive voice, then adverbs. The aggregate order carries no meaning;
// callers should group by SuggestionType.
func Generate(text string) []Suggestion {
	suggestions := []Suggestion{}

	// Long-sentence positions use the index*50 approximation kept for
	// output compatibility; they are not exact character offsets.
	for i, fragment := range strings.Split(text, ".") {
		if len(tokenize.Words(fragment)) > longSentenceWords {
			suggestions = append(suggestions, Suggestion{
				SuggestionType: TypeSentenceLength,
				Priority:       PriorityMedium,
				Message:        "Consider breaking this long sentence into shorter ones for better readability.",
				StartPos:       i * 50,
				EndPos:         (i + 1) * 50,
			})
		}
	}

	for _, m := range passivePattern.FindAllStringIndex(text, -1) {
		suggestions = append(suggestions, Suggestion{
			SuggestionType: TypePassiveVoice,
			Priority:       PriorityLow,
			Message:        "Consider using active voice for more engaging writing.",
			StartPos:       m[0],
			EndPos:         m[1],
		})
	}

	for _, m := range adverbPattern.FindAllStringIndex(text, -1) {
		suggestions = append(suggestions, Suggestion{
			SuggestionType: TypeAdverbUsage,
			Priority:       PriorityLow,
			Message:        "Consider using stronger verbs instead of adverbs.",
			StartPos:       m[0],
			EndPos:         m[1],
		})
	}

	return suggestions
}
