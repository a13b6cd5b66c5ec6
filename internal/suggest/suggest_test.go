package suggest

import (
	"strings"
	"testing"
)

func TestGenerateEmptyText(t *testing.T) {
	got := Generate("")
	if len(got) != 0 {
		t.Fatalf("expected no suggestions for empty text, got %d", len(got))
	}
}

func TestGeneratePassiveVoiceOffsets(t *testing.T) {
	text := "The ball was kicked across the field."
	got := Generate(text)
	var passive []Suggestion
	for _, s := range got {
		if s.SuggestionType == TypePassiveVoice {
			passive = append(passive, s)
		}
	}
	if len(passive) != 1 {
		t.Fatalf("expected 1 passive voice suggestion, got %d", len(passive))
	}
	s := passive[0]
	if text[s.StartPos:s.EndPos] != "was kicked" {
		t.Fatalf("offsets %d..%d bound %q, want \"was kicked\"", s.StartPos, s.EndPos, text[s.StartPos:s.EndPos])
	}
	if s.Priority != PriorityLow {
		t.Fatalf("passive voice priority = %q, want low", s.Priority)
	}
	if s.SuggestedReplacement != nil {
		t.Fatal("no heuristic proposes replacement text yet")
	}
}

func TestGenerateAdverbOffsets(t *testing.T) {
	text := "She ran quickly home."
	got := Generate(text)
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d: %+v", len(got), got)
	}
	s := got[0]
	if s.SuggestionType != TypeAdverbUsage {
		t.Fatalf("type = %q, want adverb_usage", s.SuggestionType)
	}
	if text[s.StartPos:s.EndPos] != "quickly" {
		t.Fatalf("offsets bound %q, want \"quickly\"", text[s.StartPos:s.EndPos])
	}
}

func TestGenerateLongSentencePositions(t *testing.T) {
	long := strings.Repeat("word ", 30)
	text := "Short one. " + long + ". Short again."
	got := Generate(text)
	var lengths []Suggestion
	for _, s := range got {
		if s.SuggestionType == TypeSentenceLength {
			lengths = append(lengths, s)
		}
	}
	if len(lengths) != 1 {
		t.Fatalf("expected 1 sentence_length suggestion, got %d", len(lengths))
	}
	// The long run is fragment 1 of the literal-dot split, so positions
	// follow the index*50 approximation.
	s := lengths[0]
	if s.StartPos != 50 || s.EndPos != 100 {
		t.Fatalf("positions %d..%d, want 50..100", s.StartPos, s.EndPos)
	}
	if s.Priority != PriorityMedium {
		t.Fatalf("sentence_length priority = %q, want medium", s.Priority)
	}
}

func TestGenerateOrdering(t *testing.T) {
	long := strings.Repeat("alpha ", 30)
	text := long + ". The cake was baked quickly."
	got := Generate(text)
	seen := map[string]int{}
	lastRank := 0
	rank := map[string]int{TypeSentenceLength: 1, TypePassiveVoice: 2, TypeAdverbUsage: 3}
	for _, s := range got {
		r, ok := rank[s.SuggestionType]
		if !ok {
			t.Fatalf("unexpected suggestion type %q", s.SuggestionType)
		}
		if r < lastRank {
			t.Fatalf("suggestion types out of scan order: %+v", got)
		}
		lastRank = r
		seen[s.SuggestionType]++
	}
	for _, typ := range []string{TypeSentenceLength, TypePassiveVoice, TypeAdverbUsage} {
		if seen[typ] == 0 {
			t.Fatalf("expected at least one %s suggestion", typ)
		}
	}
}
