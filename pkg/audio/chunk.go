// Package audio splits decoded PCM into fixed-length windows and writes them as WAV.
package audio

import (
	"iter"
	"time"
)

// PCM is mono 16-bit audio at a fixed sample rate
type PCM struct {
	Samples    []int16
	SampleRate int
}

// Duration returns the length of the audio
func (p PCM) Duration() time.Duration {
	if p.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(p.Samples)) * time.Second / time.Duration(p.SampleRate)
}

// Chunk is a [Start, End) window of samples
type Chunk struct {
	Index      int
	Start      int
	End        int
	SampleRate int

	samples []int16
}

// Len returns the number of samples in the chunk
func (c Chunk) Len() int {
	return c.End - c.Start
}

// Duration returns the length of the chunk
func (c Chunk) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(c.Len()) * time.Second / time.Duration(c.SampleRate)
}

// Samples returns the chunk's samples. The slice aliases the source PCM.
func (c Chunk) Samples() []int16 {
	return c.samples
}

// Sequence is a finite, restartable segmentation of one PCM buffer
type Sequence struct {
	pcm    PCM
	window int
}

// Split segments pcm into windows of at most maxDuration.
// A non-positive maxDuration yields a single window covering the whole buffer.
func Split(pcm PCM, maxDuration time.Duration) Sequence {
	window := int(maxDuration * time.Duration(pcm.SampleRate) / time.Second)
	if window <= 0 {
		window = len(pcm.Samples)
	}
	return Sequence{pcm: pcm, window: window}
}

// Len returns ceil(samples / window), zero for empty input
func (s Sequence) Len() int {
	n := len(s.pcm.Samples)
	if n == 0 || s.window == 0 {
		return 0
	}
	return (n + s.window - 1) / s.window
}

// At returns chunk i; it panics when i is out of range like a slice index would
func (s Sequence) At(i int) Chunk {
	if i < 0 || i >= s.Len() {
		panic("audio: chunk index out of range")
	}
	start := i * s.window
	end := min(start+s.window, len(s.pcm.Samples))
	return Chunk{
		Index:      i,
		Start:      start,
		End:        end,
		SampleRate: s.pcm.SampleRate,
		samples:    s.pcm.Samples[start:end],
	}
}

// All yields chunks in index order. Each call starts again from the first chunk.
func (s Sequence) All() iter.Seq2[int, Chunk] {
	return func(yield func(int, Chunk) bool) {
		for i := range s.Len() {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}
