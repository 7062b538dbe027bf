// buildcfg.go
package buildcfg

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/arc-language/buildcfg/pkg/builder"
	"github.com/arc-language/buildcfg/pkg/core"
	"github.com/arc-language/buildcfg/pkg/env"
	"github.com/arc-language/buildcfg/pkg/probe"
	"github.com/arc-language/buildcfg/pkg/registry"
)

// Re-export core types for convenience
type (
	BuildConfiguration = core.BuildConfiguration
	ModeFlags          = core.ModeFlags
	Config             = core.Config
	Profile            = registry.Profile
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// ParseModeFlags pulls --static and --no-pkg-config out of argv
func ParseModeFlags(argv []string) (ModeFlags, []string) {
	return core.ParseModeFlags(argv)
}

// Options customizes a Resolver. Nil fields select the defaults.
type Options struct {
	Logger  *log.Logger
	Runner  probe.Runner
	Locator *env.Locator
}

// Resolver produces build configurations for library profiles
type Resolver struct {
	config   *core.Config
	registry *registry.Registry
	opts     Options
}

// NewResolver creates a resolver using config
func NewResolver(config *Config, opts *Options) *Resolver {
	if config == nil {
		config = core.DefaultConfig()
	}

	r := &Resolver{
		config:   config,
		registry: registry.New(config.ProfilesDir),
	}
	if opts != nil {
		r.opts = *opts
	}
	if r.opts.Logger == nil {
		r.opts.Logger = log.New(io.Discard)
	}
	if r.opts.Runner == nil {
		r.opts.Runner = probe.NewShellRunner(config.Timeout)
	}

	return r
}

// Profile loads and validates the profile for library. An empty name
// selects the configured default library.
func (r *Resolver) Profile(library string) (*Profile, error) {
	if library == "" {
		library = r.config.Library
	}

	p, err := r.registry.Load(library)
	if err != nil {
		return nil, &Error{Op: "load profile", Library: library, Err: err}
	}

	// the module name ends up in a shell command line
	if !registry.ValidName(p.Module) {
		return nil, &Error{
			Op:      "load profile",
			Library: library,
			Err:     fmt.Errorf("%w: module name %q", ErrInvalidProfile, p.Module),
		}
	}

	return p, nil
}

// Build resolves the configuration for library under flags
func (r *Resolver) Build(ctx context.Context, library string, flags ModeFlags) (*BuildConfiguration, error) {
	p, err := r.Profile(library)
	if err != nil {
		return nil, err
	}

	r.opts.Logger.Debug("resolving", "library", p.Name, "module", p.Module,
		"static", flags.Static, "pkg-config", flags.UsePkgConfig)

	b := builder.New(p, builder.Options{
		Runner:  r.opts.Runner,
		Tool:    r.config.PkgConfig,
		Locator: r.opts.Locator,
		Logger:  r.opts.Logger,
	})
	return b.Build(ctx, flags), nil
}

// Resolve reads the mode flags from argv, resolves the configured
// library and returns the configuration with the remaining arguments
func (r *Resolver) Resolve(ctx context.Context, argv []string) (*BuildConfiguration, []string, error) {
	flags, rest := core.ParseModeFlags(argv)
	cfg, err := r.Build(ctx, "", flags)
	if err != nil {
		return nil, nil, err
	}
	return cfg, rest, nil
}

// Resolve resolves the default library with the default configuration
func Resolve(ctx context.Context, argv []string) (*BuildConfiguration, []string, error) {
	return NewResolver(nil, nil).Resolve(ctx, argv)
}
