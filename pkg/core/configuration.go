// pkg/core/configuration.go
package core

import "slices"

// StaticLinkArg is added to the link arguments in static mode
const StaticLinkArg = "-static"

// BuildConfiguration is what the compile and link step needs to build
// against the native library
type BuildConfiguration struct {
	IncludeDirs   []string `json:"include_dirs" yaml:"include_dirs" toml:"include_dirs"`
	LibraryDirs   []string `json:"library_dirs" yaml:"library_dirs" toml:"library_dirs"`
	Libraries     []string `json:"libraries" yaml:"libraries" toml:"libraries"`
	ExtraObjects  []string `json:"extra_objects" yaml:"extra_objects" toml:"extra_objects"`
	ExtraLinkArgs []string `json:"extra_link_args" yaml:"extra_link_args" toml:"extra_link_args"`
}

// NewBuildConfiguration returns an empty configuration with non-nil slices
func NewBuildConfiguration() *BuildConfiguration {
	return &BuildConfiguration{
		IncludeDirs:   []string{},
		LibraryDirs:   []string{},
		Libraries:     []string{},
		ExtraObjects:  []string{},
		ExtraLinkArgs: []string{},
	}
}

// AddLinkArg appends arg unless it is already present
func (c *BuildConfiguration) AddLinkArg(arg string) {
	if !slices.Contains(c.ExtraLinkArgs, arg) {
		c.ExtraLinkArgs = append(c.ExtraLinkArgs, arg)
	}
}

// UseObject replaces the library name with an object path to link directly.
// Only the first occurrence of name is removed.
func (c *BuildConfiguration) UseObject(name, path string) {
	if i := slices.Index(c.Libraries, name); i >= 0 {
		c.Libraries = slices.Delete(c.Libraries, i, i+1)
	}
	c.ExtraObjects = append(c.ExtraObjects, path)
}
