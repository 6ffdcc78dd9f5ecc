package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// scratch owns every temporary artifact created while processing one
// pair. Artifacts live in a dedicated directory so release is a single
// recursive removal; release runs on every exit path and failures are
// logged, never escalated.
type scratch struct {
	dir string
	log *slog.Logger
}

// newScratch creates the per-pair scratch directory under root, or the
// system temp directory when root is empty.
func newScratch(root string, log *slog.Logger) (*scratch, error) {
	if root != "" {
		if err := os.MkdirAll(root, 0o755); err != nil {
			return nil, fmt.Errorf("creating scratch root: %w", err)
		}
	}
	dir, err := os.MkdirTemp(root, "duomux-pair-")
	if err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	return &scratch{dir: dir, log: log}, nil
}

// path reserves a fresh artifact name inside the scratch directory.
func (s *scratch) path(tag string) string {
	return filepath.Join(s.dir, tag+"-"+uuid.NewString()+".wav")
}

// release deletes the scratch directory and everything in it.
func (s *scratch) release() {
	if err := os.RemoveAll(s.dir); err != nil {
		s.log.Warn("scratch cleanup failed", "dir", s.dir, "error", err)
	}
}
