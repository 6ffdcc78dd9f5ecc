// Package pairing discovers (left, right) channel pairs from a naming
// convention and derives output file names for them.
package pairing

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrFolderNotFound reports a missing source directory. It is fatal for
// the whole batch.
var ErrFolderNotFound = errors.New("source folder does not exist")

// Mode selects the matching convention.
type Mode string

const (
	ModePrefix Mode = "prefix"
	ModeSuffix Mode = "suffix"
)

// Pair identifies two source files destined to become the two channels
// of one stereo output. Left maps to channel 0, Right to channel 1;
// the pipeline never reorders them.
type Pair struct {
	Left  string
	Right string
	// Key is the shared portion of both file names, extension included.
	Key string
}

// Discover scans dir (non-recursively) and pairs files whose names share
// a key under the given convention. Files without a counterpart are
// silently dropped. An existing but empty directory yields an empty,
// valid result.
func Discover(dir string, mode Mode, left, right string) ([]Pair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, dir)
		}
		return nil, fmt.Errorf("reading source folder: %w", err)
	}

	leftKeys := make(map[string]string)
	rightKeys := make(map[string]string)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()

		if key, ok := matchKey(name, mode, left); ok {
			leftKeys[key] = name
		}
		if key, ok := matchKey(name, mode, right); ok {
			rightKeys[key] = name
		}
	}

	var pairs []Pair
	for key, leftName := range leftKeys {
		rightName, ok := rightKeys[key]
		if !ok {
			continue
		}
		pairs = append(pairs, Pair{
			Left:  filepath.Join(dir, leftName),
			Right: filepath.Join(dir, rightName),
			Key:   key,
		})
	}

	// Deterministic processing order.
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs, nil
}

// matchKey extracts the pairing key from a file name, or reports that
// the name does not carry the label. The key always keeps the file
// extension, so same-stem files in different containers never pair.
func matchKey(name string, mode Mode, label string) (string, bool) {
	switch mode {
	case ModeSuffix:
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		if !strings.HasSuffix(stem, label) {
			return "", false
		}
		return strings.TrimSuffix(stem, label) + ext, true
	default:
		if !strings.HasPrefix(name, label) {
			return "", false
		}
		return name[len(label):], true
	}
}
