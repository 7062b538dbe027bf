// pkg/env/doc.go

/*
Package env locates static library archives for static linking.

A search runs over an ordered list of directories. The caller's
directories (usually the -L values reported by pkg-config) come first,
followed by whichever of the standard system directories exist:

	/usr/local/lib64 /usr/local/lib /usr/lib64 /usr/lib /lib64 /lib

Inside each directory the filename variants are tried in a fixed order,
Unix naming before Windows naming:

	lib{name}.a  {name}.a  {name}.lib  lib{name}.lib

Basic Usage:

	import "github.com/arc-language/buildcfg/pkg/env"

	loc := env.NewLocator()
	if lib := loc.FindStaticLibrary("igraph", []string{"/opt/igraph/lib"}); lib != nil {
	    fmt.Printf("Found: %s at %s\n", lib.Name, lib.Path)
	}

A library that is not found is not an error; the caller keeps linking it
dynamically.
*/
package env
