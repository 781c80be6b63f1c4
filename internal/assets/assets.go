// Package assets locates OBJ files and caches the meshes built from them, so
// every instance of a model shares one *mesh.Mesh.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/meshlab/internal/engine/mesh"
	"github.com/Faultbox/meshlab/internal/logger"
)

// Built-in models shipped with the binary.
//
//go:embed models/*.obj
var builtin embed.FS

// ErrNotFound is returned when no search location holds a model.
var ErrNotFound = errors.New("model not found")

// Manager resolves model names against search directories and the
// built-in set.
type Manager struct {
	dirs  []string
	cache *Cache
	mu    sync.RWMutex
	log   *zap.Logger
}

// NewManager creates a manager that only knows the built-in models.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
		log:   logger.Named("assets"),
	}
}

// AddDir adds a search directory.
// Directories are searched in reverse order (last added = highest priority).
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("adding model dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("adding model dir %s: not a directory", dir)
	}

	m.mu.Lock()
	m.dirs = append(m.dirs, dir)
	m.mu.Unlock()
	return nil
}

// Load returns the mesh for name, building it on first use. name may be a
// path to an existing file, a file in a search directory, or a built-in
// model such as "sphere.obj".
func (m *Manager) Load(name string) (*mesh.Mesh, error) {
	key, open, err := m.resolve(name)
	if err != nil {
		return nil, err
	}

	if cached, ok := m.cache.Get(key); ok {
		return cached, nil
	}

	f, err := open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", key, err)
	}
	defer f.Close()

	built, err := mesh.BuildReader(path.Base(filepath.ToSlash(name)), f)
	if err != nil {
		return nil, err
	}
	if built.InvalidRefs > 0 {
		m.log.Warn("mesh has unresolved face references",
			zap.String("model", key), zap.Int("refs", built.InvalidRefs))
	}
	m.log.Info("mesh built",
		zap.String("model", key),
		zap.Int("vertices", built.VertexCount()),
		zap.Int("indices", built.IndexCount()),
	)

	m.cache.Set(key, built)
	return built, nil
}

// LoadAll loads each name in order, stopping at the first failure.
func (m *Manager) LoadAll(names []string) ([]*mesh.Mesh, error) {
	out := make([]*mesh.Mesh, 0, len(names))
	for _, n := range names {
		built, err := m.Load(n)
		if err != nil {
			return nil, err
		}
		out = append(out, built)
	}
	return out, nil
}

func (m *Manager) resolve(name string) (string, func() (fs.File, error), error) {
	openFile := func(p string) func() (fs.File, error) {
		return func() (fs.File, error) { return os.Open(p) }
	}

	if isFile(name) {
		abs, err := filepath.Abs(name)
		if err != nil {
			abs = name
		}
		return abs, openFile(abs), nil
	}

	m.mu.RLock()
	for i := len(m.dirs) - 1; i >= 0; i-- {
		p := filepath.Join(m.dirs[i], name)
		if isFile(p) {
			m.mu.RUnlock()
			return p, openFile(p), nil
		}
	}
	m.mu.RUnlock()

	// Only a bare name falls back to the built-ins; a path that does not
	// exist is an error.
	if slashed := filepath.ToSlash(name); !strings.Contains(slashed, "/") {
		embedded := path.Join("models", slashed)
		if _, err := fs.Stat(builtin, embedded); err == nil {
			return "builtin:" + slashed, func() (fs.File, error) { return builtin.Open(embedded) }, nil
		}
	}

	return "", nil, fmt.Errorf("%w: %s (built-in: %s)", ErrNotFound, name, strings.Join(Builtin(), ", "))
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// Builtin lists the embedded model names.
func Builtin() []string {
	entries, err := builtin.ReadDir("models")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// Close drops all cached meshes.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs = nil
	m.cache.Clear()
}

// Stats returns cache hit and miss counts.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}
