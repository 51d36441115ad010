// Package vfs resolves virtual game paths against an ordered set of
// override roots: sub-mod, then mod, then the base game directory. The
// most specific root providing a file wins.
package vfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound reports a virtual path no root provides.
var ErrNotFound = errors.New("virtual path not found")

type FS struct {
	// roots, most specific first
	roots []string
}

// New creates a filesystem rooted at the base game directory.
func New(gamePath string) *FS {
	return &FS{roots: []string{gamePath}}
}

// PushModPath stacks a mod root on top of the existing roots, making it
// the most specific one. Later pushes (sub-mods) override earlier ones.
func (v *FS) PushModPath(path string) {
	v.roots = append([]string{path}, v.roots...)
}

// Roots returns the search roots, most specific first.
func (v *FS) Roots() []string { return v.roots }

// Resolve maps a virtual path to the real path of the most specific root
// that provides it.
func (v *FS) Resolve(virtualPath string) (string, error) {
	for _, root := range v.roots {
		real := filepath.Join(root, filepath.FromSlash(virtualPath))
		info, err := os.Stat(real)
		if err == nil && !info.IsDir() {
			return real, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, virtualPath)
}
