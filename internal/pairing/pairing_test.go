package pairing

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDiscover_PrefixMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir,
		"ES-greeting.mp3",
		"HR-greeting.mp3",
		"ES-menu.mp3",
		"HR-menu.mp3",
		"ES-orphan.mp3", // no HR counterpart
		"HR-stray.mp3",  // no ES counterpart
		"readme.txt",
	)

	pairs, err := Discover(dir, ModePrefix, "ES-", "HR-")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(pairs) != 2 {
		t.Fatalf("Discover() returned %d pairs, want 2", len(pairs))
	}

	if pairs[0].Key != "greeting.mp3" {
		t.Errorf("pairs[0].Key = %q, want %q", pairs[0].Key, "greeting.mp3")
	}
	if got, want := pairs[0].Left, filepath.Join(dir, "ES-greeting.mp3"); got != want {
		t.Errorf("pairs[0].Left = %q, want %q", got, want)
	}
	if got, want := pairs[0].Right, filepath.Join(dir, "HR-greeting.mp3"); got != want {
		t.Errorf("pairs[0].Right = %q, want %q", got, want)
	}
	if pairs[1].Key != "menu.mp3" {
		t.Errorf("pairs[1].Key = %q, want %q", pairs[1].Key, "menu.mp3")
	}
}

func TestDiscover_SuffixMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir,
		"greeting-ES.mp3",
		"greeting-HR.mp3",
		"menu-ES.mp3", // no -HR counterpart
	)

	pairs, err := Discover(dir, ModeSuffix, "-ES", "-HR")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(pairs) != 1 {
		t.Fatalf("Discover() returned %d pairs, want 1", len(pairs))
	}
	if pairs[0].Key != "greeting.mp3" {
		t.Errorf("Key = %q, want %q", pairs[0].Key, "greeting.mp3")
	}
	if got, want := pairs[0].Left, filepath.Join(dir, "greeting-ES.mp3"); got != want {
		t.Errorf("Left = %q, want %q", got, want)
	}
}

func TestDiscover_NoCrossExtensionPairing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "ES-greeting.mp3", "HR-greeting.wav")

	pairs, err := Discover(dir, ModePrefix, "ES-", "HR-")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(pairs) != 0 {
		t.Errorf("Discover() returned %d pairs across extensions, want 0", len(pairs))
	}
}

func TestDiscover_EmptyDir(t *testing.T) {
	t.Parallel()

	pairs, err := Discover(t.TempDir(), ModePrefix, "ES-", "HR-")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(pairs) != 0 {
		t.Errorf("Discover() returned %d pairs, want 0", len(pairs))
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := Discover(filepath.Join(t.TempDir(), "gone"), ModePrefix, "ES-", "HR-")
	if !errors.Is(err, ErrFolderNotFound) {
		t.Errorf("Discover() error = %v, want %v", err, ErrFolderNotFound)
	}
}

func TestDiscover_SkipsSubdirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "ES-greeting.mp3", "HR-greeting.mp3")
	if err := os.Mkdir(filepath.Join(dir, "ES-nested.mp3"), 0o755); err != nil {
		t.Fatal(err)
	}

	pairs, err := Discover(dir, ModePrefix, "ES-", "HR-")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(pairs) != 1 {
		t.Errorf("Discover() returned %d pairs, want 1", len(pairs))
	}
}

func TestDiscover_DeterministicOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir,
		"ES-zulu.mp3", "HR-zulu.mp3",
		"ES-alpha.mp3", "HR-alpha.mp3",
		"ES-mike.mp3", "HR-mike.mp3",
	)

	pairs, err := Discover(dir, ModePrefix, "ES-", "HR-")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{"alpha.mp3", "mike.mp3", "zulu.mp3"}
	for i, w := range want {
		if pairs[i].Key != w {
			t.Errorf("pairs[%d].Key = %q, want %q", i, pairs[i].Key, w)
		}
	}
}
