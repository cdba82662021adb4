package transcription

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// WhisperCPPBackend runs the whisper.cpp CLI once per chunk
type WhisperCPPBackend struct {
	binaryPath string
	modelPath  string
	threads    int
}

// NewWhisperCPPBackend creates a backend for a local whisper.cpp install
func NewWhisperCPPBackend(binaryPath, modelPath string, threads int) *WhisperCPPBackend {
	if threads <= 0 {
		threads = 4
	}
	return &WhisperCPPBackend{
		binaryPath: binaryPath,
		modelPath:  modelPath,
		threads:    threads,
	}
}

// Name identifies the backend in logs and errors
func (b *WhisperCPPBackend) Name() string {
	return "whisper_cpp"
}

// Validate checks the binary is on PATH
func (b *WhisperCPPBackend) Validate() error {
	if _, err := exec.LookPath(b.binaryPath); err != nil {
		return fmt.Errorf("whisper binary not found at %s: %w", b.binaryPath, err)
	}
	return nil
}

// Transcribe runs whisper-cli without timestamps; stdout is the text
func (b *WhisperCPPBackend) Transcribe(ctx context.Context, path, language string) (string, error) {
	args := []string{
		"-m", b.modelPath,
		"-f", path,
		"-t", strconv.Itoa(b.threads),
		"-nt", // no timestamps
		"-np", // no progress/system prints on stdout
	}
	if language != "" {
		args = append(args, "-l", language)
	}

	cmd := exec.CommandContext(ctx, b.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("whisper command failed: %w (stderr: %s)", err, strings.TrimSpace(stderr.String()))
	}

	return collapseLines(stdout.String()), nil
}

// collapseLines joins whisper's per-segment lines into one paragraph
func collapseLines(out string) string {
	return strings.Join(strings.Fields(out), " ")
}
