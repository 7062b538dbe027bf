// pkg/env/types.go
package env

import "os"

// Library represents a static archive found on disk
type Library struct {
	Name    string // Library name (e.g., "igraph")
	Path    string // Full path to the archive
	Dir     string // Search directory the archive was found in
	Variant string // Matching filename pattern (e.g., "lib{name}.a")
}

// FS answers the existence checks the locator needs
type FS interface {
	IsDir(path string) bool
	IsFile(path string) bool
}

// OSFS checks the real filesystem
type OSFS struct{}

// IsDir reports whether path exists and is a directory
func (OSFS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is a regular file
func (OSFS) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
