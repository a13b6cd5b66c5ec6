// Package pipeline fans per-segment measurement out over a bounded
// worker pool. The measurement engine is stateless, so segments can be
// analyzed in any order; results come back in segment order.
package pipeline

import (
	"runtime"
	"sync"

	"draftlens/internal/chunk"
	"draftlens/internal/metrics"
)

// Result pairs one manuscript window with its measurement report.
type Result struct {
	Index      int            `json:"index"`
	StartToken int            `json:"start_token"`
	EndToken   int            `json:"end_token"`
	Report     metrics.Result `json:"report"`
}

// Analyze measures every segment concurrently with analyze and returns
// the reports indexed by segment. workers <= 0 means one per CPU.
func Analyze(segments []chunk.Segment, workers int, analyze func(string) metrics.Result) []Result {
	if len(segments) == 0 || analyze == nil {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}

	jobs := make(chan int)
	out := make([]Result, len(segments))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				seg := segments[idx]
				out[idx] = Result{
					Index:      seg.Index,
					StartToken: seg.StartToken,
					EndToken:   seg.EndToken,
					Report:     analyze(seg.Text),
				}
			}
		}()
	}

	for i := range segments {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return out
}
