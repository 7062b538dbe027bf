// pkg/builder/builder.go

// Package builder assembles the build configuration for a native library
// from pkg-config discovery, profile defaults and static archive lookup.
package builder

import (
	"context"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/arc-language/buildcfg/pkg/core"
	"github.com/arc-language/buildcfg/pkg/discovery"
	"github.com/arc-language/buildcfg/pkg/env"
	"github.com/arc-language/buildcfg/pkg/probe"
	"github.com/arc-language/buildcfg/pkg/registry"
)

// Options configures a Builder. Zero values select the defaults.
type Options struct {
	Runner  probe.Runner // Defaults to a ShellRunner with no timeout
	Tool    string       // pkg-config executable
	Locator *env.Locator // Defaults to env.NewLocator()
	Logger  *log.Logger  // Defaults to a logger that discards output
}

// Builder resolves a BuildConfiguration for one library profile
type Builder struct {
	profile    *registry.Profile
	discoverer *discovery.Discoverer
	locator    *env.Locator
	logger     *log.Logger
}

// New creates a builder for profile
func New(profile *registry.Profile, opts Options) *Builder {
	if opts.Runner == nil {
		opts.Runner = probe.NewShellRunner(0)
	}
	if opts.Locator == nil {
		opts.Locator = env.NewLocator()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Builder{
		profile:    profile,
		discoverer: discovery.New(opts.Runner, opts.Tool, profile.Module),
		locator:    opts.Locator,
		logger:     opts.Logger,
	}
}

// Build resolves the configuration for flags. It never fails: every
// problem degrades to defaults and is left for the compiler to report.
func (b *Builder) Build(ctx context.Context, flags core.ModeFlags) *core.BuildConfiguration {
	cfg := core.NewBuildConfiguration()

	if flags.UsePkgConfig {
		b.discover(ctx, cfg, flags.Static)
	} else {
		b.seed(cfg, flags.Static)
	}

	b.logger.Info("Include path: " + strings.Join(cfg.IncludeDirs, " "))
	b.logger.Info("Library path: " + strings.Join(cfg.LibraryDirs, " "))

	if flags.Static {
		b.logger.Infof("Linking statically to %s.", b.profile.Name)
		b.linkStatic(cfg)
	}

	return cfg
}

// seed fills cfg from the profile alone, without running anything
func (b *Builder) seed(cfg *core.BuildConfiguration, static bool) {
	cfg.Libraries = append(cfg.Libraries, b.profile.Libraries...)
	if static {
		cfg.Libraries = append(cfg.Libraries, b.profile.StaticDependencies...)
	}
	b.logger.Debug("pkg-config disabled", "libraries", cfg.Libraries)
}

// discover fills cfg from pkg-config, each probe falling back on its own
func (b *Builder) discover(ctx context.Context, cfg *core.BuildConfiguration, static bool) {
	if !b.discoverer.Reachable(ctx) {
		b.logger.Warn("Using default include and library paths for compilation",
			"module", b.profile.Module,
			"hint", "if compilation fails, point the "+b.profile.Name+" profile at the directories where the library is installed")
	}

	cfg.IncludeDirs = b.probe(ctx, discovery.IncludeDirs, static, b.profile.IncludeDirs)
	cfg.LibraryDirs = b.probe(ctx, discovery.LibraryDirs, static, b.profile.LibraryDirs)
	cfg.Libraries = b.probe(ctx, discovery.Libraries, static, b.profile.Libraries)
}

func (b *Builder) probe(ctx context.Context, kind discovery.Kind, static bool, def []string) []string {
	values := b.discoverer.Discover(ctx, kind, static, def)
	b.logger.Debug("probe", "kind", kind, "command", b.discoverer.Command(kind, static), "values", values)
	return values
}

// linkStatic swaps every library with a static archive on disk for the
// archive path. Libraries without one stay dynamic.
func (b *Builder) linkStatic(cfg *core.BuildConfiguration) {
	cfg.AddLinkArg(core.StaticLinkArg)

	for _, name := range slices.Clone(cfg.Libraries) {
		lib := b.locator.FindStaticLibrary(name, cfg.LibraryDirs)
		if lib == nil {
			b.logger.Debug("no static archive, linking dynamically", "library", name)
			continue
		}
		b.logger.Debug("static archive", "library", name, "path", lib.Path)
		cfg.UseObject(name, lib.Path)
	}
}
