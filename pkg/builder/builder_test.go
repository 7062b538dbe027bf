package builder

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/buildcfg/pkg/core"
	"github.com/arc-language/buildcfg/pkg/env"
	"github.com/arc-language/buildcfg/pkg/probe"
	"github.com/arc-language/buildcfg/pkg/registry"
)

// --- Test helpers ---

type scripted struct {
	answers map[string]probe.Result
	calls   []string
}

func (s *scripted) Run(_ context.Context, command string) probe.Result {
	s.calls = append(s.calls, command)
	if res, ok := s.answers[command]; ok {
		return res
	}
	return probe.Result{ExitCode: 127}
}

type fakeFS struct {
	dirs  map[string]bool
	files map[string]bool
}

func (f fakeFS) IsDir(path string) bool  { return f.dirs[path] }
func (f fakeFS) IsFile(path string) bool { return f.files[path] }

func igraphProfile(t *testing.T) *registry.Profile {
	t.Helper()
	p, err := registry.New("").Load("igraph")
	require.NoError(t, err)
	return p
}

func newBuilder(t *testing.T, r probe.Runner, fs env.FS) *Builder {
	t.Helper()
	return New(igraphProfile(t), Options{
		Runner:  r,
		Locator: &env.Locator{FS: fs, SystemDirs: env.SystemLibraryDirs},
	})
}

func noFiles() fakeFS {
	return fakeFS{dirs: map[string]bool{}, files: map[string]bool{}}
}

// --- Scenarios ---

func TestBuildDiscoverySuccess(t *testing.T) {
	r := &scripted{answers: map[string]probe.Result{
		"pkg-config igraph":          {ExitCode: 0},
		"pkg-config igraph --cflags": {Line: "-I/usr/include/igraph"},
		"pkg-config igraph --libs":   {Line: "-L/usr/lib -ligraph"},
	}}

	cfg := newBuilder(t, r, noFiles()).Build(context.Background(), core.DefaultModeFlags())

	assert.Equal(t, []string{"/usr/include/igraph"}, cfg.IncludeDirs)
	assert.Equal(t, []string{"/usr/lib"}, cfg.LibraryDirs)
	assert.Equal(t, []string{"igraph"}, cfg.Libraries)
	assert.Empty(t, cfg.ExtraObjects)
	assert.Empty(t, cfg.ExtraLinkArgs)
	assert.Equal(t, []string{
		"pkg-config igraph",
		"pkg-config igraph --cflags",
		"pkg-config igraph --libs",
		"pkg-config igraph --libs",
	}, r.calls)
}

func TestBuildPkgConfigAbsent(t *testing.T) {
	r := &scripted{}

	cfg := newBuilder(t, r, noFiles()).Build(context.Background(), core.DefaultModeFlags())

	assert.Equal(t, []string{"/tmp/include/igraph"}, cfg.IncludeDirs)
	assert.Equal(t, []string{"/tmp/lib"}, cfg.LibraryDirs)
	assert.Equal(t, []string{"igraph"}, cfg.Libraries)
	// unreachable tool still runs every probe
	assert.Len(t, r.calls, 4)
}

func TestBuildStaticResolvesArchive(t *testing.T) {
	r := &scripted{answers: map[string]probe.Result{
		"pkg-config igraph":                   {ExitCode: 0},
		"pkg-config igraph --cflags --static": {Line: "-I/usr/include/igraph"},
		"pkg-config igraph --libs --static":   {Line: "-L/usr/lib -ligraph"},
	}}
	fs := fakeFS{
		dirs:  map[string]bool{"/usr/lib": true},
		files: map[string]bool{"/usr/lib/libigraph.a": true},
	}

	cfg := newBuilder(t, r, fs).Build(context.Background(), core.ModeFlags{Static: true, UsePkgConfig: true})

	assert.Equal(t, []string{"/usr/lib"}, cfg.LibraryDirs)
	assert.Empty(t, cfg.Libraries)
	assert.Equal(t, []string{"/usr/lib/libigraph.a"}, cfg.ExtraObjects)
	assert.Equal(t, []string{"-static"}, cfg.ExtraLinkArgs)
}

func TestBuildNoPkgConfigStatic(t *testing.T) {
	r := &scripted{}

	cfg := newBuilder(t, r, noFiles()).Build(context.Background(), core.ModeFlags{Static: true, UsePkgConfig: false})

	assert.Equal(t, []string{"igraph", "xml2", "z", "m"}, cfg.Libraries)
	assert.Empty(t, cfg.IncludeDirs)
	assert.Empty(t, cfg.LibraryDirs)
	assert.Equal(t, []string{"-static"}, cfg.ExtraLinkArgs)
	assert.Empty(t, r.calls)
}

func TestBuildNoPkgConfigDynamic(t *testing.T) {
	r := &scripted{}

	cfg := newBuilder(t, r, noFiles()).Build(context.Background(), core.ModeFlags{UsePkgConfig: false})

	assert.Equal(t, []string{"igraph"}, cfg.Libraries)
	assert.Empty(t, cfg.ExtraLinkArgs)
	assert.Empty(t, r.calls)
}

func TestBuildSuccessfulButNoLibraries(t *testing.T) {
	r := &scripted{answers: map[string]probe.Result{
		"pkg-config igraph":          {ExitCode: 0},
		"pkg-config igraph --cflags": {Line: "-I/usr/include/igraph"},
		"pkg-config igraph --libs":   {Line: "-L/usr/lib -pthread"},
	}}

	cfg := newBuilder(t, r, noFiles()).Build(context.Background(), core.DefaultModeFlags())

	assert.NotNil(t, cfg.Libraries)
	assert.Empty(t, cfg.Libraries)
	assert.Equal(t, []string{"/usr/lib"}, cfg.LibraryDirs)
}

// --- Static post-processing ---

func TestBuildStaticPartialResolution(t *testing.T) {
	r := &scripted{answers: map[string]probe.Result{
		"pkg-config igraph":                   {ExitCode: 0},
		"pkg-config igraph --cflags --static": {Line: "-I/opt/igraph/include/igraph"},
		"pkg-config igraph --libs --static":   {Line: "-L/opt/igraph/lib -ligraph -lxml2 -lz -lm -lgomp"},
	}}
	fs := fakeFS{
		dirs: map[string]bool{"/usr/lib": true},
		files: map[string]bool{
			"/opt/igraph/lib/libigraph.a": true,
			"/usr/lib/libxml2.a":          true,
			"/usr/lib/libz.a":             true,
		},
	}

	cfg := newBuilder(t, r, fs).Build(context.Background(), core.ModeFlags{Static: true, UsePkgConfig: true})

	assert.Equal(t, []string{"m", "gomp"}, cfg.Libraries)
	assert.Equal(t, []string{
		"/opt/igraph/lib/libigraph.a",
		"/usr/lib/libxml2.a",
		"/usr/lib/libz.a",
	}, cfg.ExtraObjects)
	assert.Equal(t, []string{"-static"}, cfg.ExtraLinkArgs)
	assert.Equal(t, []string{"/opt/igraph/lib"}, cfg.LibraryDirs, "system dirs never leak into the configuration")
}

func TestBuildStaticNoPkgConfigUsesSystemDirs(t *testing.T) {
	fs := fakeFS{
		dirs:  map[string]bool{"/usr/lib": true, "/usr/local/lib": true},
		files: map[string]bool{"/usr/local/lib/libigraph.a": true, "/usr/lib/libm.a": true},
	}

	cfg := newBuilder(t, &scripted{}, fs).Build(context.Background(), core.ModeFlags{Static: true})

	assert.Equal(t, []string{"xml2", "z"}, cfg.Libraries)
	assert.Equal(t, []string{"/usr/local/lib/libigraph.a", "/usr/lib/libm.a"}, cfg.ExtraObjects)
}

func TestBuildLibrariesAndObjectsDisjoint(t *testing.T) {
	fs := fakeFS{
		dirs:  map[string]bool{"/usr/lib": true},
		files: map[string]bool{"/usr/lib/libigraph.a": true, "/usr/lib/libxml2.a": true},
	}

	cfg := newBuilder(t, &scripted{}, fs).Build(context.Background(), core.ModeFlags{Static: true})

	for _, name := range cfg.Libraries {
		for _, obj := range cfg.ExtraObjects {
			assert.NotContains(t, obj, "lib"+name+".a")
		}
	}
	assert.Len(t, cfg.Libraries, 2)
	assert.Len(t, cfg.ExtraObjects, 2)
}

// --- Logging ---

func TestBuildWarnsWhenPkgConfigUnreachable(t *testing.T) {
	var buf bytes.Buffer
	b := New(igraphProfile(t), Options{
		Runner:  &scripted{},
		Locator: &env.Locator{FS: noFiles()},
		Logger:  log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel}),
	})

	b.Build(context.Background(), core.DefaultModeFlags())

	assert.Contains(t, buf.String(), "Using default include and library paths")
}

func TestBuildLogsPaths(t *testing.T) {
	var buf bytes.Buffer
	b := New(igraphProfile(t), Options{
		Runner:  &scripted{},
		Locator: &env.Locator{FS: noFiles()},
		Logger:  log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}),
	})

	b.Build(context.Background(), core.ModeFlags{Static: true, UsePkgConfig: true})

	out := buf.String()
	assert.Contains(t, out, "Include path: /tmp/include/igraph")
	assert.Contains(t, out, "Library path: /tmp/lib")
	assert.Contains(t, out, "Linking statically to igraph.")
}

func TestBuildCustomTool(t *testing.T) {
	r := &scripted{}
	b := New(igraphProfile(t), Options{Runner: r, Tool: "pkgconf", Locator: &env.Locator{FS: noFiles()}})

	b.Build(context.Background(), core.DefaultModeFlags())

	require.NotEmpty(t, r.calls)
	assert.Equal(t, "pkgconf igraph", r.calls[0])
}
