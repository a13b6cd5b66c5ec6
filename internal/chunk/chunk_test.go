package chunk

import (
	"strings"
	"testing"
)

func TestSlidingWindowCoversEveryToken(t *testing.T) {
	words := make([]string, 5000)
	for i := range words {
		words[i] = "word"
	}
	text := strings.Join(words, " ")

	segments := SlidingWindow(text, 1500, 200)
	if len(segments) == 0 {
		t.Fatal("expected segments to be generated")
	}

	covered := make([]bool, 5000)
	for _, s := range segments {
		if s.StartToken < 0 || s.EndToken > 5000 || s.StartToken >= s.EndToken {
			t.Fatalf("invalid segment bounds: %+v", s)
		}
		for i := s.StartToken; i < s.EndToken; i++ {
			covered[i] = true
		}
	}

	for i, ok := range covered {
		if !ok {
			t.Fatalf("data loss at token index %d", i)
		}
	}
}

func TestSlidingWindowPreservesParagraphBreaks(t *testing.T) {
	text := "First paragraph with some words here.\n\nSecond paragraph follows on."
	segments := SlidingWindow(text, 100, 0)
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if !strings.Contains(segments[0].Text, "\n\n") {
		t.Fatalf("segment text lost its paragraph break: %q", segments[0].Text)
	}
}

func TestSlidingWindowDegenerateInputs(t *testing.T) {
	if got := SlidingWindow("", 100, 10); got != nil {
		t.Fatalf("expected nil for empty text, got %+v", got)
	}
	if got := SlidingWindow("some text", 0, 0); got != nil {
		t.Fatalf("expected nil for zero segment size, got %+v", got)
	}
	// Overlap at least as large as the window must still make progress.
	got := SlidingWindow("one two three four five", 2, 5)
	if len(got) == 0 {
		t.Fatal("expected segments despite oversized overlap")
	}
	if got[len(got)-1].EndToken != 5 {
		t.Fatalf("expected final segment to reach token 5, got %+v", got[len(got)-1])
	}
}
