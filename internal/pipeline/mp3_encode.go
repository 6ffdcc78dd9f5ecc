package pipeline

import (
	"encoding/binary"
	"io"

	lame "github.com/viert/go-lame"

	"duomux/audio"
	"duomux/utils"
)

// encodeMP3 writes the stream as CBR MP3 at the configured bitrate.
func (p *Pipeline) encodeMP3(w io.Writer, st *audio.Buffer) error {
	kbps, err := p.cfg.BitrateKbps()
	if err != nil {
		return err
	}

	enc := lame.NewEncoder(w)
	defer enc.Close()

	if err := enc.SetNumChannels(st.Channels); err != nil {
		return err
	}
	if err := enc.SetInSamplerate(st.Rate); err != nil {
		return err
	}
	if err := enc.SetBrate(kbps); err != nil {
		return err
	}

	// lame consumes interleaved 16-bit little-endian PCM.
	const chunk = 8192
	pcm := make([]byte, chunk*2)
	for off := 0; off < len(st.Data); off += chunk {
		end := off + chunk
		if end > len(st.Data) {
			end = len(st.Data)
		}
		n := end - off
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(pcm[2*i:], uint16(utils.Float32ToInt16(st.Data[off+i])))
		}
		if _, err := enc.Write(pcm[:n*2]); err != nil {
			return err
		}
	}
	return nil
}
