// pkg/platform/detect.go
package platform

import (
	"runtime"

	"github.com/arc-language/buildcfg/pkg/env"
)

// Platform describes the build host as the resolver sees it
type Platform struct {
	OS            string   // linux, darwin, windows
	Arch          string   // amd64, arm64, 386, arm
	PkgConfig     string   // pkg-config tool that was looked up
	PkgConfigPath string   // Resolved executable path, empty if not on PATH
	SystemLibDirs []string // System library directories that exist
}

// Detect inspects the current host. tool is the pkg-config executable
// to look for; empty means "pkg-config".
func Detect(tool string) *Platform {
	if tool == "" {
		tool = "pkg-config"
	}

	p := &Platform{
		OS:            runtime.GOOS,
		Arch:          runtime.GOARCH,
		PkgConfig:     tool,
		PkgConfigPath: lookPath(tool),
		SystemLibDirs: []string{},
	}

	fs := env.OSFS{}
	for _, dir := range env.SystemLibraryDirs {
		if fs.IsDir(dir) {
			p.SystemLibDirs = append(p.SystemLibDirs, dir)
		}
	}

	return p
}

// HasPkgConfig reports whether the pkg-config tool was found
func (p *Platform) HasPkgConfig() bool {
	return p.PkgConfigPath != ""
}
