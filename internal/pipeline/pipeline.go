// Package pipeline turns channel pairs into stereo output files:
// normalize both inputs, optionally change tempo at constant pitch,
// reconcile frame counts, interleave, export. Each pair is processed in
// isolation; its scratch artifacts are released on every exit path.
package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"duomux/audio"
	"duomux/internal/config"
	"duomux/internal/pairing"
)

// Pipeline processes single channel pairs. It is stateless across pairs
// and safe to reuse for a whole batch.
type Pipeline struct {
	cfg *config.Config
	reg *audio.Registry
	log *slog.Logger
}

func New(cfg *config.Config, reg *audio.Registry, log *slog.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, reg: reg, log: log}
}

// ProcessPair runs the full pipeline for one pair. All failures,
// panics included, are converted into the returned Outcome; this
// method never aborts the batch.
func (p *Pipeline) ProcessPair(pr pairing.Pair) (out Outcome) {
	out.Pair = pr
	start := time.Now()
	defer func() { out.Elapsed = time.Since(start) }()

	stage := StageNormalize
	defer func() {
		if r := recover(); r != nil {
			out.Err = stageErr(stage, fmt.Errorf("panic: %v", r))
			out.Trace = debug.Stack()
		}
	}()

	sc, err := newScratch(p.cfg.ScratchDir, p.log)
	if err != nil {
		out.Err = stageErr(StageNormalize, err)
		return out
	}
	defer sc.release()

	leftPath, err := p.normalize(pr.Left, sc, "left")
	if err != nil {
		out.Err = stageErr(StageNormalize, err)
		return out
	}
	rightPath, err := p.normalize(pr.Right, sc, "right")
	if err != nil {
		out.Err = stageErr(StageNormalize, err)
		return out
	}

	if p.cfg.Audio.Speed != 1.0 {
		stage = StageTempo
		if leftPath, err = p.applyTempo(leftPath, sc, "left"); err != nil {
			out.Err = stageErr(StageTempo, err)
			return out
		}
		if rightPath, err = p.applyTempo(rightPath, sc, "right"); err != nil {
			out.Err = stageErr(StageTempo, err)
			return out
		}
	}

	stage = StageReconcile
	left, err := p.loadMono(leftPath)
	if err != nil {
		out.Err = stageErr(StageReconcile, err)
		return out
	}
	right, err := p.loadMono(rightPath)
	if err != nil {
		out.Err = stageErr(StageReconcile, err)
		return out
	}
	Reconcile(left, right)

	stage = StageSynthesize
	st, err := audio.Interleave(left, right)
	if err != nil {
		// Unreachable after a correct reconcile; still pair-local.
		out.Err = stageErr(StageSynthesize, err)
		return out
	}

	stage = StageExport
	name := pairing.OutputName(
		pairing.Mode(p.cfg.Matching.Mode),
		pr.Key,
		p.cfg.Matching.Left,
		p.cfg.Matching.Right,
		p.cfg.Audio.Speed,
		"."+p.cfg.Audio.Format,
	)
	outPath := filepath.Join(p.cfg.OutputDir, name)
	if err := p.export(st, outPath); err != nil {
		out.Err = stageErr(StageExport, err)
		return out
	}

	out.OutputPath = outPath
	return out
}
