package tokenize

import "testing"

func TestWords(t *testing.T) {
	got := Words("This is a test. This is another test!")
	if len(got) != 8 {
		t.Fatalf("expected 8 words, got %d: %v", len(got), got)
	}
	if got[0] != "This" || got[7] != "test" {
		t.Fatalf("unexpected word order: %v", got)
	}
}

func TestWordsUnicodeAndDigits(t *testing.T) {
	got := Words("café naïve 42 foo_bar")
	if len(got) != 4 {
		t.Fatalf("expected 4 words, got %d: %v", len(got), got)
	}
	if got[0] != "café" {
		t.Fatalf("expected accented word kept whole, got %q", got[0])
	}
	if got[3] != "foo_bar" {
		t.Fatalf("expected underscore to join a word, got %q", got[3])
	}
}

func TestSentences(t *testing.T) {
	got := Sentences("This is a test. This is another test!")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(got), got)
	}
	if got[1] != "This is another test" {
		t.Fatalf("unexpected second sentence: %q", got[1])
	}
}

func TestSentencesCollapseTerminatorRuns(t *testing.T) {
	got := Sentences("Wait... what?! Really.")
	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(got), got)
	}
}

func TestParagraphs(t *testing.T) {
	text := "First paragraph line one.\nStill first.\n\nSecond paragraph.\n   \nThird."
	got := Paragraphs(text)
	if len(got) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d: %v", len(got), got)
	}
	if got[0] != "First paragraph line one.\nStill first." {
		t.Fatalf("unexpected first paragraph: %q", got[0])
	}
}

func TestEmptyText(t *testing.T) {
	if n := len(Words("")); n != 0 {
		t.Fatalf("expected 0 words for empty text, got %d", n)
	}
	if n := len(Sentences("")); n != 0 {
		t.Fatalf("expected 0 sentences for empty text, got %d", n)
	}
	if n := len(Paragraphs("")); n != 0 {
		t.Fatalf("expected 0 paragraphs for empty text, got %d", n)
	}
}

func TestPunctuationOnlyText(t *testing.T) {
	if n := len(Sentences("?!. ... !!")); n != 0 {
		t.Fatalf("expected no sentences from punctuation-only text, got %d", n)
	}
}
