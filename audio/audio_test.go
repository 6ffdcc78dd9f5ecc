package audio

import (
	"io"
	"reflect"
	"testing"
)

type nopDecoder struct{ name string }

func (nopDecoder) Decode(io.Reader) (Source, error) { return nil, nil }

func TestRegistry_RegisterLookup(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(".wav", nopDecoder{name: "wav"})
	reg.Register("mp3", nopDecoder{name: "mp3"})

	tests := []struct {
		ext  string
		want string
		ok   bool
	}{
		{".wav", "wav", true},
		{"wav", "wav", true},
		{".WAV", "wav", true},
		{".mp3", "mp3", true},
		{".flac", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.ext, func(t *testing.T) {
			t.Parallel()

			d, ok := reg.Lookup(tt.ext)
			if ok != tt.ok {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.ext, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got := d.(nopDecoder).name; got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.ext, got, tt.want)
			}
		})
	}
}

func TestRegistry_LaterRegistrationWins(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(".wav", nopDecoder{name: "old"})
	reg.Register(".wav", nopDecoder{name: "new"})

	d, ok := reg.Lookup(".wav")
	if !ok {
		t.Fatal("Lookup(.wav) ok = false, want true")
	}
	if got := d.(nopDecoder).name; got != "new" {
		t.Errorf("Lookup(.wav) = %q, want %q", got, "new")
	}
}

func TestRegistry_Extensions(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(".ogg", nopDecoder{})
	reg.Register(".aiff", nopDecoder{})
	reg.Register(".wav", nopDecoder{})

	got := reg.Extensions()
	want := []string{".aiff", ".ogg", ".wav"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extensions() = %v, want %v", got, want)
	}
}
