package ffmpeg

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/oncare/care-report-api/pkg/audio"
)

// FFmpeg wraps ffmpeg and ffprobe functionality
type FFmpeg struct {
	ffmpegPath  string
	ffprobePath string
	timeout     time.Duration
}

// New creates a new FFmpeg instance
func New(ffmpegPath, ffprobePath string, timeout time.Duration) *FFmpeg {
	return &FFmpeg{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		timeout:     timeout,
	}
}

// ValidateBinaries checks if ffmpeg and ffprobe are available
func (f *FFmpeg) ValidateBinaries() error {
	if _, err := exec.LookPath(f.ffmpegPath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFmpegNotFound, f.ffmpegPath)
	}

	if _, err := exec.LookPath(f.ffprobePath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFprobeNotFound, f.ffprobePath)
	}

	return nil
}

// Decode checks the file has an audio stream, then decodes it to mono PCM at sampleRate
func (f *FFmpeg) Decode(ctx context.Context, path string, sampleRate int) (audio.PCM, error) {
	if _, err := f.GetMetadata(ctx, path); err != nil {
		return audio.PCM{}, err
	}
	return f.DecodePCM(ctx, path, sampleRate)
}

// DecodePCM pipes the file through ffmpeg as signed 16-bit little-endian mono samples
func (f *FFmpeg) DecodePCM(ctx context.Context, path string, sampleRate int) (audio.PCM, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	args := []string{
		"-nostdin",
		"-v", "error",
		"-i", path,
		"-f", "s16le",
		"-ac", "1",
		"-ar", strconv.Itoa(sampleRate),
		"-",
	}

	cmd := exec.CommandContext(ctx, f.ffmpegPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return audio.PCM{}, NewProcessingError("pcm_decode", path, ErrProcessingTimeout, stderr.String())
		}
		return audio.PCM{}, NewProcessingError("pcm_decode", path, err, stderr.String())
	}

	return audio.PCM{
		Samples:    parseS16LE(stdout.Bytes()),
		SampleRate: sampleRate,
	}, nil
}

// parseS16LE converts raw little-endian bytes to samples; a trailing odd byte is dropped
func parseS16LE(raw []byte) []int16 {
	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[2*i:]))
	}
	return samples
}
