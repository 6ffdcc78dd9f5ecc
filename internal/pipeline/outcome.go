package pipeline

import (
	"time"

	"duomux/internal/pairing"
)

// Outcome is the per-pair result. Exactly one of OutputPath or Err is
// meaningful.
type Outcome struct {
	Pair       pairing.Pair
	OutputPath string
	Err        *StageError
	// Trace holds a goroutine stack when the failure was a recovered
	// panic; nil for ordinary stage errors.
	Trace   []byte
	Elapsed time.Duration
}

// Succeeded reports whether the pair produced an output file.
func (o Outcome) Succeeded() bool { return o.Err == nil }

// RunStats aggregates a batch.
type RunStats struct {
	Total     int
	Succeeded int
	Failed    int
}

// Summarize tallies outcomes into run statistics.
func Summarize(outcomes []Outcome) RunStats {
	stats := RunStats{Total: len(outcomes)}
	for _, o := range outcomes {
		if o.Succeeded() {
			stats.Succeeded++
		} else {
			stats.Failed++
		}
	}
	return stats
}
