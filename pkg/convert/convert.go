// Package convert turns docx files into pdf using an external office suite.
package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Runner executes a command and returns its combined output
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs the command with os/exec
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.Bytes(), err
}

// Strategy names
const (
	StrategyDocx2PDF    = "docx2pdf"
	StrategyLibreOffice = "libreoffice"
)

// Error carries the converter output alongside the cause
type Error struct {
	Source string
	Output string
	Err    error
}

func (e *Error) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("convert %s: %v: %s", filepath.Base(e.Source), e.Err, e.Output)
	}
	return fmt.Sprintf("convert %s: %v", filepath.Base(e.Source), e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Converter converts with docx2pdf on Windows and headless LibreOffice elsewhere
type Converter struct {
	strategy        string
	libreOfficePath string
	docx2pdfPath    string
	run             Runner
}

// Option customizes a Converter
type Option func(*Converter)

// WithRunner replaces process execution, mainly for tests
func WithRunner(r Runner) Option {
	return func(c *Converter) { c.run = r }
}

// WithStrategy forces a strategy instead of choosing by platform
func WithStrategy(s string) Option {
	return func(c *Converter) { c.strategy = s }
}

// New creates a converter for the current platform
func New(libreOfficePath, docx2pdfPath string, opts ...Option) *Converter {
	c := &Converter{
		strategy:        StrategyFor(runtime.GOOS),
		libreOfficePath: libreOfficePath,
		docx2pdfPath:    docx2pdfPath,
		run:             ExecRunner,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// StrategyFor picks the strategy for a GOOS value
func StrategyFor(goos string) string {
	if goos == "windows" {
		return StrategyDocx2PDF
	}
	return StrategyLibreOffice
}

// Strategy returns the strategy in use
func (c *Converter) Strategy() string {
	return c.strategy
}

// Binary returns the executable the strategy depends on
func (c *Converter) Binary() string {
	if c.strategy == StrategyDocx2PDF {
		return c.docx2pdfPath
	}
	return c.libreOfficePath
}

// Validate checks the converter binary is on PATH
func (c *Converter) Validate() error {
	if _, err := exec.LookPath(c.Binary()); err != nil {
		return fmt.Errorf("%s not found: %w", c.Binary(), err)
	}
	return nil
}

// Convert produces target from source in a single attempt. The target must exist and be non-empty.
func (c *Converter) Convert(ctx context.Context, source, target string) error {
	var (
		out []byte
		err error
	)

	switch c.strategy {
	case StrategyDocx2PDF:
		out, err = c.run(ctx, c.docx2pdfPath, source, target)
	default:
		out, err = c.libreOffice(ctx, source, target)
	}

	output := strings.TrimSpace(string(out))
	if err != nil {
		return &Error{Source: source, Output: output, Err: err}
	}

	info, statErr := os.Stat(target)
	switch {
	case statErr != nil:
		return &Error{Source: source, Output: output, Err: fmt.Errorf("no output produced: %w", statErr)}
	case info.Size() == 0:
		return &Error{Source: source, Output: output, Err: fmt.Errorf("output %s is empty", filepath.Base(target))}
	}
	return nil
}

// libreOffice writes <outdir>/<source base>.pdf, then renames it to target when the names differ
func (c *Converter) libreOffice(ctx context.Context, source, target string) ([]byte, error) {
	outDir := filepath.Dir(target)
	out, err := c.run(ctx, c.libreOfficePath,
		"--headless",
		"--convert-to", "pdf",
		"--outdir", outDir,
		source,
	)
	if err != nil {
		return out, err
	}

	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	produced := filepath.Join(outDir, base+".pdf")
	if filepath.Clean(produced) != filepath.Clean(target) {
		if err := os.Rename(produced, target); err != nil {
			return out, fmt.Errorf("move converted file: %w", err)
		}
	}
	return out, nil
}
