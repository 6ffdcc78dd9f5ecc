package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"duomux/audio"
	wavfmt "duomux/formats/wav"
)

// export encodes the stereo stream into the configured container and
// writes it to outPath. The file is written under a hidden temporary
// name and renamed into place, so a partially written output is never
// visible under its final name.
func (p *Pipeline) export(st *audio.Buffer, outPath string) error {
	dir := filepath.Dir(outPath)
	tmp := filepath.Join(dir, "."+filepath.Base(outPath)+"."+uuid.NewString()+".tmp")

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	var encErr error
	switch p.cfg.Audio.Format {
	case "wav":
		encErr = wavfmt.Encode(f, st)
	default:
		encErr = p.encodeMP3(f, st)
	}

	if encErr == nil {
		encErr = f.Sync()
	}
	if cerr := f.Close(); encErr == nil {
		encErr = cerr
	}
	if encErr != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %s: %v", ErrEncode, filepath.Base(outPath), encErr)
	}

	if err := os.Rename(tmp, outPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}
