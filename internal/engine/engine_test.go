package engine

import (
	"strings"
	"sync"
	"testing"

	"draftlens/internal/conflict"
)

func TestAnalyzeText(t *testing.T) {
	eng := New()
	res := eng.AnalyzeText("This is a test. This is another test!")
	if res.WordCount != 8 || res.SentenceCount != 2 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if res.ContentHash != eng.ContentHash("This is a test. This is another test!") {
		t.Fatal("report hash should match ContentHash on the same text")
	}
}

func TestOptimizeText(t *testing.T) {
	got := New().OptimizeText("The cake was baked quickly.")
	types := map[string]bool{}
	for _, s := range got {
		types[s.SuggestionType] = true
	}
	if !types["passive_voice"] || !types["adverb_usage"] {
		t.Fatalf("expected passive_voice and adverb_usage suggestions, got %+v", got)
	}
}

func TestResolveConflicts(t *testing.T) {
	got := New().ResolveConflicts([]conflict.Conflict{
		{ConflictType: conflict.TypeInsertion, UserAChange: "foo", UserBChange: "bar"},
	})
	if len(got) != 1 || got[0].ResolutionSuggestion != "foo bar" {
		t.Fatalf("unexpected resolution: %+v", got)
	}
}

func TestAnalyzeSegmented(t *testing.T) {
	text := strings.Repeat("Plain words march on. ", 400)
	results := New().AnalyzeSegmented(text, 300, 50, 4)
	if len(results) < 2 {
		t.Fatalf("expected multiple segments, got %d", len(results))
	}
	for i, r := range results {
		if r.Index != i {
			t.Fatalf("segment results out of order at %d: %+v", i, r)
		}
		if r.Report.WordCount == 0 {
			t.Fatalf("segment %d has no words", i)
		}
	}
}

func TestEngineConcurrentUse(t *testing.T) {
	eng := New()
	text := "She quickly decided the garden was planted before dawn."
	want := eng.AnalyzeText(text)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := eng.AnalyzeText(text)
			if got != want {
				t.Errorf("concurrent analysis diverged: %+v vs %+v", got, want)
			}
		}()
	}
	wg.Wait()
}
