package mp3

import (
	"bytes"
	"io"
	"testing"
)

// mockMP3Reader feeds canned 16-bit little-endian PCM to the source.
type mockMP3Reader struct {
	data       []byte
	pos        int
	sampleRate int
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(p []byte) (int, error) {
	if m.pos >= len(m.data) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.pos:])
	m.pos += n
	return n, nil
}

func pcm16LE(samples ...int16) []byte {
	var buf bytes.Buffer
	for _, s := range samples {
		buf.WriteByte(byte(uint16(s)))
		buf.WriteByte(byte(uint16(s) >> 8))
	}
	return buf.Bytes()
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockMP3Reader{sampleRate: 44100},
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 8192),
	}

	if got := src.SampleRate(); got != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", got)
	}
	if got := src.Channels(); got != 2 {
		t.Errorf("Channels() = %d, want 2", got)
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockMP3Reader{data: pcm16LE(0, 16384, -16384, 32767), sampleRate: 44100},
		sampleRate: 44100,
		channels:   2,
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
		}
	}
}

func TestSource_ReadSamplesEOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockMP3Reader{sampleRate: 44100},
		sampleRate: 44100,
		channels:   2,
	}

	n, err := src.ReadSamples(make([]float32, 16))
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("definitely not mpeg audio")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}
