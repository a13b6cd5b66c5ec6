// Package chunk windows long manuscripts into overlapping segments so
// each window can be measured independently.
package chunk

import "unicode"

// Segment is one window of a larger text. Text is sliced from the
// original input, so paragraph breaks inside the window survive.
type Segment struct {
	Index      int
	StartToken int
	EndToken   int
	Text       string
}

// SlidingWindow cuts text into windows of segmentWords words, with
// consecutive windows overlapping by overlapWords.
func SlidingWindow(text string, segmentWords, overlapWords int) []Segment {
	if segmentWords <= 0 {
		return nil
	}
	if overlapWords < 0 {
		overlapWords = 0
	}
	if overlapWords >= segmentWords {
		overlapWords = segmentWords - 1
	}

	spans := wordSpans(text)
	if len(spans) == 0 {
		return nil
	}

	step := segmentWords - overlapWords
	segments := make([]Segment, 0, (len(spans)/step)+1)
	for start := 0; start < len(spans); start += step {
		end := start + segmentWords
		if end > len(spans) {
			end = len(spans)
		}
		segments = append(segments, Segment{
			Index:      len(segments),
			StartToken: start,
			EndToken:   end,
			Text:       text[spans[start].start:spans[end-1].end],
		})
		if end == len(spans) {
			break
		}
	}

	return segments
}

type span struct {
	start int
	end   int
}

func wordSpans(text string) []span {
	spans := make([]span, 0, len(text)/6)
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				spans = append(spans, span{start: start, end: i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, span{start: start, end: len(text)})
	}
	return spans
}
