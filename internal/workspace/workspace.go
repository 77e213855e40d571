package workspace

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Workspace is the scoped temporary directory for a single request. Every
// file or directory a conversion allocates lives under it or is registered
// with it, so one Cleanup call reclaims everything on every exit path.
type Workspace struct {
	root string

	mu     sync.Mutex
	extras []string
	done   bool
}

// New creates a uniquely named workspace directory under baseDir.
func New(baseDir string) (*Workspace, error) {
	root := filepath.Join(baseDir, "job-"+uuid.NewString())
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return &Workspace{root: root}, nil
}

// Root returns the workspace directory path.
func (w *Workspace) Root() string { return w.root }

// Dir creates and returns a named subdirectory, e.g. a scratch directory
// for the office converter.
func (w *Workspace) Dir(name string) (string, error) {
	dir := filepath.Join(w.root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create workspace dir %s: %w", name, err)
	}
	return dir, nil
}

// Register adds a path outside the workspace root (e.g. a zip spool file)
// to be removed on Cleanup.
func (w *Workspace) Register(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.extras = append(w.extras, path)
}

// Cleanup removes the workspace directory and all registered extras.
// It is safe to call more than once; only the first call does work.
func (w *Workspace) Cleanup() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.done {
		return
	}
	w.done = true

	for _, p := range w.extras {
		if err := os.RemoveAll(p); err != nil {
			log.Printf("workspace: failed to remove %s: %v", p, err)
		}
	}
	if err := os.RemoveAll(w.root); err != nil {
		log.Printf("workspace: failed to remove %s: %v", w.root, err)
	}
}

// SweepStale removes workspace directories under baseDir older than maxAge,
// left behind by a previous process that died mid-request.
func SweepStale(baseDir string, maxAge time.Duration) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-maxAge)
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), "job-") {
			continue
		}
		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		stale := filepath.Join(baseDir, e.Name())
		if err := os.RemoveAll(stale); err != nil {
			log.Printf("workspace: failed to sweep %s: %v", stale, err)
		} else {
			log.Printf("workspace: swept stale dir %s", stale)
		}
	}
}
