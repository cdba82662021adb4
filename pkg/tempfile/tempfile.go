// Package tempfile manages the transient files a request writes to disk.
//
// Every file belongs to a Scope. Closing the scope releases each handle and
// then sweeps anything left on disk that carries the scope's name prefix, so
// a request that fails half way still leaves nothing behind.
package tempfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Manager creates scopes inside one temp directory
type Manager struct {
	dir     string
	pid     int
	counter atomic.Uint64
	log     zerolog.Logger
	kept    *retainedSet
}

// NewManager prepares the preferred directory, falling back to the system temp dir
func NewManager(preferred string, log zerolog.Logger) *Manager {
	dir := preferred
	if dir == "" {
		dir = os.TempDir()
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn().Err(err).Str("dir", preferred).Msg("temp dir unavailable, falling back to system temp dir")
		dir = os.TempDir()
	}

	return &Manager{
		dir:  dir,
		pid:  os.Getpid(),
		log:  log,
		kept: &retainedSet{paths: make(map[string]struct{})},
	}
}

// Dir returns the directory files are created in
func (m *Manager) Dir() string {
	return m.dir
}

// NewScope opens a scope whose files are named <kind>_<pid>_<n>_*
func (m *Manager) NewScope(kind string) *Scope {
	n := m.counter.Add(1)
	return &Scope{
		m:    m,
		name: fmt.Sprintf("%s_%d_%d", kind, m.pid, n),
	}
}

// SweepOlderThan removes files with one of the prefixes whose mtime is older than maxAge
func (m *Manager) SweepOlderThan(prefixes []string, maxAge time.Duration) int {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		m.log.Warn().Err(err).Str("dir", m.dir).Msg("failed to read temp dir")
		return 0
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !hasAnyPrefix(entry.Name(), prefixes) {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		path := filepath.Join(m.dir, entry.Name())
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			m.log.Warn().Err(err).Str("path", path).Msg("failed to remove stale temp file")
			continue
		}
		m.kept.remove(path)
		removed++
	}

	if removed > 0 {
		m.log.Debug().Int("removed", removed).Msg("removed stale temp files")
	}
	return removed
}

func hasAnyPrefix(name string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// Scope owns the files of one operation
type Scope struct {
	m    *Manager
	name string

	mu      sync.Mutex
	next    int
	handles []*Handle
	closed  bool
}

// Name returns the scope's file name prefix
func (s *Scope) Name() string {
	return s.name
}

// Acquire creates a new empty file named <scope>_<index><suffix>
func (s *Scope) Acquire(suffix string) (*Handle, error) {
	s.mu.Lock()
	idx := s.next
	s.next++
	s.mu.Unlock()

	return s.create(fmt.Sprintf("%s_%d%s", s.name, idx, suffix))
}

// AcquireNamed creates a file with an exact base name and tracks it in the scope
func (s *Scope) AcquireNamed(name string) (*Handle, error) {
	if name != filepath.Base(name) || name == "." || name == "" {
		return nil, fmt.Errorf("invalid temp file name %q", name)
	}
	return s.create(name)
}

func (s *Scope) create(name string) (*Handle, error) {
	path := filepath.Join(s.m.dir, name)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	h := &Handle{path: path, log: s.m.log, kept: s.m.kept}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		h.Release()
		return nil, fmt.Errorf("scope %s is closed", s.name)
	}
	s.handles = append(s.handles, h)
	return h, nil
}

// Close releases every handle not retained and sweeps leftovers by prefix. Safe to call twice.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	handles := s.handles
	s.handles = nil
	s.mu.Unlock()

	for _, h := range handles {
		if !h.Retained() {
			h.Release()
		}
	}
	s.sweep()
}

// sweep removes anything still matching <scope>_* unless a retained handle points at it
func (s *Scope) sweep() {
	matches, err := filepath.Glob(filepath.Join(s.m.dir, s.name+"_*"))
	if err != nil {
		s.m.log.Warn().Err(err).Str("scope", s.name).Msg("temp sweep failed")
		return
	}
	for _, path := range matches {
		if s.m.kept.has(path) {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.m.log.Warn().Err(err).Str("path", path).Msg("failed to sweep temp file")
		}
	}
}

// Handle is one temp file on disk
type Handle struct {
	path     string
	log      zerolog.Logger
	kept     *retainedSet
	released atomic.Bool
	retained atomic.Bool
}

// Path returns the absolute or manager-relative path of the file
func (h *Handle) Path() string {
	return h.path
}

// Name returns the base name of the file
func (h *Handle) Name() string {
	return filepath.Base(h.path)
}

// Release deletes the file. Repeated calls are no-ops and errors are only logged.
func (h *Handle) Release() {
	if h == nil || !h.released.CompareAndSwap(false, true) {
		return
	}
	h.kept.remove(h.path)
	if err := os.Remove(h.path); err != nil && !os.IsNotExist(err) {
		h.log.Warn().Err(err).Str("path", h.path).Msg("failed to remove temp file")
	}
}

// Retain keeps the file on disk past the scope's close; the periodic sweep removes it later
func (h *Handle) Retain() {
	if h == nil || h.released.Load() {
		return
	}
	h.retained.Store(true)
	h.kept.add(h.path)
}

// Retained reports whether Retain was called
func (h *Handle) Retained() bool {
	return h.retained.Load()
}

// Released reports whether Release was called
func (h *Handle) Released() bool {
	return h.released.Load()
}

// retainedSet guards retained paths from the prefix sweep of their own scope
type retainedSet struct {
	mu    sync.Mutex
	paths map[string]struct{}
}

func (r *retainedSet) add(path string) {
	r.mu.Lock()
	r.paths[path] = struct{}{}
	r.mu.Unlock()
}

func (r *retainedSet) remove(path string) {
	r.mu.Lock()
	delete(r.paths, path)
	r.mu.Unlock()
}

func (r *retainedSet) has(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.paths[path]
	return ok
}
