package ffmpeg

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFFmpegNotFound    = errors.New("ffmpeg binary not found")
	ErrFFprobeNotFound   = errors.New("ffprobe binary not found")
	ErrInvalidAudioFile  = errors.New("invalid or unsupported audio file")
	ErrProcessingTimeout = errors.New("audio processing timeout")
)

// maxStderr bounds how much decoder output is kept on an error
const maxStderr = 1024

// ProcessingError is a failed ffmpeg or ffprobe run with the tail of its stderr
type ProcessingError struct {
	Operation string // pcm_decode, metadata_extraction, metadata_validation
	File      string
	Err       error
	Stderr    string
}

func (e *ProcessingError) Error() string {
	msg := fmt.Sprintf("ffmpeg %s failed for %s: %v", e.Operation, e.File, e.Err)
	if e.Stderr == "" {
		return msg
	}
	return msg + " (stderr: " + e.Stderr + ")"
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// NewProcessingError keeps at most the last maxStderr bytes of stderr
func NewProcessingError(operation, file string, err error, stderr string) *ProcessingError {
	stderr = strings.TrimSpace(stderr)
	if len(stderr) > maxStderr {
		stderr = "..." + stderr[len(stderr)-maxStderr:]
	}
	return &ProcessingError{Operation: operation, File: file, Err: err, Stderr: stderr}
}
