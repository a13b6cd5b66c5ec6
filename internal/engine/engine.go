// Package engine exposes the text-measurement operations behind a single
// reusable value suitable for dependency injection into a host.
package engine

import (
	"draftlens/internal/chunk"
	"draftlens/internal/conflict"
	"draftlens/internal/contenthash"
	"draftlens/internal/metrics"
	"draftlens/internal/pipeline"
	"draftlens/internal/suggest"
)

// Engine bundles the analysis operations. All pattern state is compiled
// at package init and shared read-only, so a single Engine may serve
// concurrent callers; a pattern that fails to compile aborts the process
// before an Engine can exist.
type Engine struct{}

// New returns an Engine ready for use.
func New() *Engine {
	return &Engine{}
}

// AnalyzeText measures text and returns the full report. It succeeds for
// any input; empty text yields zero counts and ratios.
func (e *Engine) AnalyzeText(text string) metrics.Result {
	return metrics.Analyze(text)
}

// OptimizeText returns heuristic writing suggestions, possibly none.
func (e *Engine) OptimizeText(text string) []suggest.Suggestion {
	return suggest.Generate(text)
}

// ResolveConflicts proposes a resolution for each conflict, preserving
// list length and order.
func (e *Engine) ResolveConflicts(conflicts []conflict.Conflict) []conflict.Conflict {
	return conflict.Resolve(conflicts)
}

// ContentHash fingerprints text; identical text always yields the same
// value.
func (e *Engine) ContentHash(text string) string {
	return contenthash.Sum(text)
}

// AnalyzeSegmented windows a long manuscript and measures each window
// concurrently. Window text keeps its original paragraph breaks, and
// results come back in window order.
func (e *Engine) AnalyzeSegmented(text string, segmentWords, overlapWords, workers int) []pipeline.Result {
	segments := chunk.SlidingWindow(text, segmentWords, overlapWords)
	return pipeline.Analyze(segments, workers, e.AnalyzeText)
}
