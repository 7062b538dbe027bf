// pkg/env/library.go
package env

import (
	"path/filepath"
)

// Locator finds static archives for library names
type Locator struct {
	FS         FS
	SystemDirs []string
}

// NewLocator creates a locator over the real filesystem and the
// standard system library directories
func NewLocator() *Locator {
	return &Locator{
		FS:         OSFS{},
		SystemDirs: SystemLibraryDirs,
	}
}

// SearchDirs returns the effective search list for dirs: the caller's
// directories first, then every existing system directory not already
// listed. dirs is not modified.
func (l *Locator) SearchDirs(dirs []string) []string {
	seen := make(map[string]bool, len(dirs)+len(l.SystemDirs))
	search := make([]string, 0, len(dirs)+len(l.SystemDirs))

	for _, dir := range dirs {
		if seen[dir] {
			continue
		}
		seen[dir] = true
		search = append(search, dir)
	}

	for _, dir := range l.SystemDirs {
		if seen[dir] || !l.fs().IsDir(dir) {
			continue
		}
		seen[dir] = true
		search = append(search, dir)
	}

	return search
}

// FindStaticLibrary searches for an archive of name. Directories are
// scanned in SearchDirs order and, within each, StaticVariants in order.
// Returns nil if nothing matches.
func (l *Locator) FindStaticLibrary(name string, dirs []string) *Library {
	for _, dir := range l.SearchDirs(dirs) {
		for i, filename := range StaticFilenames(name) {
			fullPath := filepath.Join(dir, filename)
			if l.fs().IsFile(fullPath) {
				return &Library{
					Name:    name,
					Path:    fullPath,
					Dir:     dir,
					Variant: StaticVariants[i],
				}
			}
		}
	}

	return nil
}

func (l *Locator) fs() FS {
	if l.FS == nil {
		return OSFS{}
	}
	return l.FS
}
