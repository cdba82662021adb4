package audio

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitDepth   = 16
	numChans   = 1
	wavPCMType = 1
)

// WriteWAV encodes the chunk as 16-bit mono PCM
func WriteWAV(w io.WriteSeeker, c Chunk) error {
	enc := wav.NewEncoder(w, c.SampleRate, bitDepth, numChans, wavPCMType)

	data := make([]int, c.Len())
	for i, s := range c.Samples() {
		data[i] = int(s)
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: numChans, SampleRate: c.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav chunk %d: %w", c.Index, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav chunk %d: %w", c.Index, err)
	}
	return nil
}
