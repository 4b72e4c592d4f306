// Package resolver locates named compilation units' source (spec §6
// "the driver may optionally supply..."). Filesystem access is kept to this
// one package so the rest of the module never touches disk directly,
// mirroring the teacher's one-file resolver.go boundary.
package resolver

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// Source is one resolved compilation unit: its name (as known to the
// caller, not necessarily a filesystem path) plus its raw bytes.
type Source struct {
	Name string
	Data []byte
}

// Resolver locates a named compilation unit's source. The core only ever
// calls FindUnit; discovery, caching, and layering are the implementation's
// concern, the same one-method boundary the teacher's own Resolver keeps.
type Resolver interface {
	FindUnit(name string) (Source, error)
}

// FS resolves units from a filesystem tree and can expand doublestar glob
// patterns over it, since a single Asthra package may span multiple files
// discovered via a `**/*.ast`-style pattern (spec §2 "Driver layer").
type FS struct {
	Root fs.FS
}

var _ Resolver = (*FS)(nil)

// NewFS returns an FS rooted at dir on the operating system's filesystem.
func NewFS(dir string) *FS {
	return &FS{Root: os.DirFS(dir)}
}

// FindUnit reads name directly from Root.
func (r *FS) FindUnit(name string) (Source, error) {
	data, err := fs.ReadFile(r.Root, name)
	if err != nil {
		return Source{}, fmt.Errorf("resolver: finding unit %q: %w", name, err)
	}
	return Source{Name: name, Data: data}, nil
}

// Discover expands pattern (a doublestar glob, e.g. "**/*.ast") against
// Root and returns every matching unit name in sorted order, so a driver
// can hand a directory tree's worth of files to Compiler.Compile without
// enumerating them by hand.
func (r *FS) Discover(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("resolver: invalid glob pattern %q", pattern)
	}
	matches, err := doublestar.Glob(r.Root, pattern)
	if err != nil {
		return nil, fmt.Errorf("resolver: expanding glob %q: %w", pattern, err)
	}
	return matches, nil
}
