// pkg/env/constants.go
package env

import "strings"

// SystemLibraryDirs are appended to every static search, in this order,
// when they exist and were not supplied by the caller
var SystemLibraryDirs = []string{
	"/usr/local/lib64",
	"/usr/local/lib",
	"/usr/lib64",
	"/usr/lib",
	"/lib64",
	"/lib",
}

// StaticVariants are the archive filename patterns tried in each directory.
// Unix naming comes before Windows naming.
var StaticVariants = []string{
	"lib{name}.a",
	"{name}.a",
	"{name}.lib",
	"lib{name}.lib",
}

// StaticFilenames expands StaticVariants for name
func StaticFilenames(name string) []string {
	names := make([]string, 0, len(StaticVariants))
	for _, v := range StaticVariants {
		names = append(names, strings.ReplaceAll(v, "{name}", name))
	}
	return names
}
