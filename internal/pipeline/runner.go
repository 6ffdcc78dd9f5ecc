package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"duomux/formats"
	"duomux/internal/config"
	"duomux/internal/pairing"
)

// lockName guards an output directory against two concurrent batches
// racing the error log and the output files.
const lockName = ".duomux.lock"

// Runner drives a whole batch: discovery, per-pair processing with
// failure isolation, error-log recording.
type Runner struct {
	cfg  *config.Config
	log  *slog.Logger
	pipe *Pipeline
}

func NewRunner(cfg *config.Config, log *slog.Logger) *Runner {
	return &Runner{
		cfg:  cfg,
		log:  log,
		pipe: New(cfg, formats.DefaultRegistry(), log),
	}
}

// Run processes every discovered pair sequentially and returns their
// outcomes. Pair failures never abort the batch; only batch-level
// problems (missing source folder, unusable output directory) return an
// error. Cancellation is checked between pairs.
func (r *Runner) Run(ctx context.Context) ([]Outcome, error) {
	mode := pairing.Mode(r.cfg.Matching.Mode)
	pairs, err := pairing.Discover(r.cfg.SourceDir, mode, r.cfg.Matching.Left, r.cfg.Matching.Right)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		r.log.Warn("no matching pairs found", "source", r.cfg.SourceDir)
		return nil, nil
	}

	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output folder: %w", err)
	}

	lock := flock.New(filepath.Join(r.cfg.OutputDir, lockName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking output folder: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another run is writing to %s", r.cfg.OutputDir)
	}
	defer lock.Unlock()

	errLog, err := OpenErrorLog(r.cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	defer errLog.Close()

	outcomes := make([]Outcome, 0, len(pairs))
	for i, pr := range pairs {
		if ctx.Err() != nil {
			r.log.Warn("interrupted", "processed", i, "total", len(pairs))
			break
		}

		r.log.Info("processing pair",
			"n", i+1, "total", len(pairs),
			"key", pr.Key,
			"left", filepath.Base(pr.Left),
			"right", filepath.Base(pr.Right))

		o := r.pipe.ProcessPair(pr)
		if o.Succeeded() {
			r.log.Info("pair combined", "key", pr.Key, "output", o.OutputPath, "elapsed", o.Elapsed)
		} else {
			r.log.Error("pair failed", "key", pr.Key, "stage", o.Err.Stage, "error", o.Err.Err)
			if err := errLog.Record(o); err != nil {
				r.log.Warn("error log write failed", "error", err)
			}
		}
		outcomes = append(outcomes, o)
	}

	return outcomes, nil
}
