// pkg/discovery/discovery.go
package discovery

import (
	"context"
	"strings"

	"github.com/arc-language/buildcfg/pkg/probe"
)

// DefaultTool is the package metadata tool queried for flags
const DefaultTool = "pkg-config"

// Kind selects which flags a probe asks for and which prefix it extracts
type Kind int

const (
	// IncludeDirs extracts -I values from --cflags
	IncludeDirs Kind = iota
	// LibraryDirs extracts -L values from --libs
	LibraryDirs
	// Libraries extracts -l values from --libs
	Libraries
)

func (k Kind) String() string {
	switch k {
	case IncludeDirs:
		return "include-dirs"
	case LibraryDirs:
		return "library-dirs"
	case Libraries:
		return "libraries"
	default:
		return "unknown"
	}
}

func (k Kind) option() string {
	if k == IncludeDirs {
		return "--cflags"
	}
	return "--libs"
}

func (k Kind) prefix() string {
	switch k {
	case IncludeDirs:
		return probe.PrefixInclude
	case LibraryDirs:
		return probe.PrefixLibraryDir
	default:
		return probe.PrefixLibrary
	}
}

// Discoverer asks pkg-config about one library module
type Discoverer struct {
	Runner probe.Runner
	Tool   string // pkg-config executable, DefaultTool if empty
	Module string // pkg-config module name (e.g., "igraph")
}

// New creates a discoverer for module using runner
func New(runner probe.Runner, tool, module string) *Discoverer {
	if tool == "" {
		tool = DefaultTool
	}
	return &Discoverer{
		Runner: runner,
		Tool:   tool,
		Module: module,
	}
}

// Command returns the shell command used to probe kind
func (d *Discoverer) Command(kind Kind, static bool) string {
	parts := []string{d.tool(), d.Module, kind.option()}
	if static {
		parts = append(parts, "--static")
	}
	return strings.Join(parts, " ")
}

// Reachable reports whether pkg-config knows the module at all
func (d *Discoverer) Reachable(ctx context.Context) bool {
	res := d.Runner.Run(ctx, d.tool()+" "+d.Module)
	return res.ExitCode == 0
}

// Discover runs the probe for kind and returns the extracted values.
// A failed or silent probe returns a copy of def; a successful probe
// with no matching flags returns an empty slice.
func (d *Discoverer) Discover(ctx context.Context, kind Kind, static bool, def []string) []string {
	return Resolve(d.Runner.Run(ctx, d.Command(kind, static)), kind, def)
}

// IncludeDirs discovers header search directories
func (d *Discoverer) IncludeDirs(ctx context.Context, static bool, def []string) []string {
	return d.Discover(ctx, IncludeDirs, static, def)
}

// LibraryDirs discovers library search directories
func (d *Discoverer) LibraryDirs(ctx context.Context, static bool, def []string) []string {
	return d.Discover(ctx, LibraryDirs, static, def)
}

// Libraries discovers library names to link against
func (d *Discoverer) Libraries(ctx context.Context, static bool, def []string) []string {
	return d.Discover(ctx, Libraries, static, def)
}

// Resolve turns a probe result into values for kind, falling back to def
func Resolve(res probe.Result, kind Kind, def []string) []string {
	if !res.OK() {
		return append([]string{}, def...)
	}
	return probe.Extract(res.Line, kind.prefix())
}

func (d *Discoverer) tool() string {
	if d.Tool == "" {
		return DefaultTool
	}
	return d.Tool
}
