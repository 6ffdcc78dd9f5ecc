package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ErrorLogName is the append-only failure log inside the output
// directory. Prior runs' entries are never truncated.
const ErrorLogName = "errors.log"

// ErrorLog records per-pair failures: one message line followed by an
// indented trace block. Appends are serialized, so concurrent recorders
// never interleave within an entry.
type ErrorLog struct {
	mu sync.Mutex
	f  *os.File
}

// OpenErrorLog opens (or creates) the error log in dir for appending.
func OpenErrorLog(dir string) (*ErrorLog, error) {
	f, err := os.OpenFile(filepath.Join(dir, ErrorLogName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening error log: %w", err)
	}
	return &ErrorLog{f: f}, nil
}

// Record appends one failure entry.
func (l *ErrorLog) Record(o Outcome) error {
	if o.Err == nil {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s pair %s failed at %s: %v\n",
		time.Now().Format(time.RFC3339), o.Pair.Key, o.Err.Stage, o.Err.Err)

	if len(o.Trace) > 0 {
		for _, line := range strings.Split(strings.TrimRight(string(o.Trace), "\n"), "\n") {
			b.WriteString("    " + line + "\n")
		}
	} else {
		// No goroutine stack for ordinary errors; unwind the chain
		// instead so the log still shows where the failure came from.
		for err := error(o.Err); err != nil; err = errors.Unwrap(err) {
			b.WriteString("    " + err.Error() + "\n")
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.f.WriteString(b.String()); err != nil {
		return fmt.Errorf("appending to error log: %w", err)
	}
	return nil
}

// Close releases the underlying file.
func (l *ErrorLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}
