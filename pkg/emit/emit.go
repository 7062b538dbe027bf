// pkg/emit/emit.go

// Package emit renders a BuildConfiguration for the tools that consume it.
package emit

import (
	"encoding/json"
	"errors"
	"fmt"
	"go/token"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/buildcfg/pkg/core"
)

// Format names an output representation
type Format string

const (
	FormatText  Format = "text"  // Human readable summary
	FormatJSON  Format = "json"  // JSON object
	FormatYAML  Format = "yaml"  // YAML document
	FormatTOML  Format = "toml"  // TOML document
	FormatFlags Format = "flags" // cflags line, then ldflags line
	FormatCgo   Format = "cgo"   // #cgo directive comment block
	FormatEnv   Format = "env"   // Shell export statements
)

// Formats lists every supported format
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML, FormatFlags, FormatCgo, FormatEnv}

// ErrUnknownFormat is returned by Write for an unsupported format
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, s, formatList())
}

// DefaultPackage is the package clause of cgo output when none is given
const DefaultPackage = "main"

// Options holds settings for formats that need more than the
// configuration itself
type Options struct {
	Package string // Package clause for FormatCgo, DefaultPackage if empty
}

// Write renders cfg to w in format with default options
func Write(w io.Writer, cfg *core.BuildConfiguration, format Format) error {
	return Options{}.Write(w, cfg, format)
}

// Write renders cfg to w in format
func (o Options) Write(w io.Writer, cfg *core.BuildConfiguration, format Format) error {
	switch format {
	case FormatText:
		return writeText(w, cfg)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	case FormatFlags:
		_, err := fmt.Fprintf(w, "%s\n%s\n", strings.Join(CFlags(cfg), " "), strings.Join(LDFlags(cfg), " "))
		return err
	case FormatCgo:
		return writeCgo(w, cfg, o.packageName())
	case FormatEnv:
		return writeEnv(w, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// CFlags returns the compiler flags for cfg
func CFlags(cfg *core.BuildConfiguration) []string {
	flags := make([]string, 0, len(cfg.IncludeDirs))
	for _, dir := range cfg.IncludeDirs {
		flags = append(flags, "-I"+dir)
	}
	return flags
}

// LDFlags returns the linker flags for cfg: library directories, archive
// paths, library names, then extra link arguments. Archives come before
// -l names so the names can satisfy the archives' own dependencies.
func LDFlags(cfg *core.BuildConfiguration) []string {
	var flags []string
	for _, dir := range cfg.LibraryDirs {
		flags = append(flags, "-L"+dir)
	}
	flags = append(flags, cfg.ExtraObjects...)
	for _, lib := range cfg.Libraries {
		flags = append(flags, "-l"+lib)
	}
	flags = append(flags, cfg.ExtraLinkArgs...)
	if flags == nil {
		flags = []string{}
	}
	return flags
}

// Env returns CGO_CFLAGS, CGO_LDFLAGS, CFLAGS and LDFLAGS assignments
func Env(cfg *core.BuildConfiguration) []string {
	cflags := strings.Join(CFlags(cfg), " ")
	ldflags := strings.Join(LDFlags(cfg), " ")
	return []string{
		"CGO_CFLAGS=" + cflags,
		"CGO_LDFLAGS=" + ldflags,
		"CFLAGS=" + cflags,
		"LDFLAGS=" + ldflags,
	}
}

func writeText(w io.Writer, cfg *core.BuildConfiguration) error {
	rows := []struct {
		label  string
		values []string
	}{
		{"Include path", cfg.IncludeDirs},
		{"Library path", cfg.LibraryDirs},
		{"Libraries", cfg.Libraries},
		{"Extra objects", cfg.ExtraObjects},
		{"Extra link args", cfg.ExtraLinkArgs},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s: %s\n", row.label, strings.Join(row.values, " ")); err != nil {
			return err
		}
	}
	return nil
}

func (o Options) packageName() string {
	if o.Package == "" {
		return DefaultPackage
	}
	return o.Package
}

// writeCgo writes a complete Go source file whose import "C" carries
// the configuration as #cgo directives
func writeCgo(w io.Writer, cfg *core.BuildConfiguration, pkg string) error {
	if !token.IsIdentifier(pkg) {
		return fmt.Errorf("invalid package name %q", pkg)
	}
	if _, err := fmt.Fprintf(w, "package %s\n\n", pkg); err != nil {
		return err
	}
	if cflags := CFlags(cfg); len(cflags) > 0 {
		if _, err := fmt.Fprintf(w, "// #cgo CFLAGS: %s\n", strings.Join(cflags, " ")); err != nil {
			return err
		}
	}
	if ldflags := LDFlags(cfg); len(ldflags) > 0 {
		if _, err := fmt.Fprintf(w, "// #cgo LDFLAGS: %s\n", strings.Join(ldflags, " ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, `import "C"`)
	return err
}

func writeEnv(w io.Writer, cfg *core.BuildConfiguration) error {
	for _, kv := range Env(cfg) {
		name, value, _ := strings.Cut(kv, "=")
		if _, err := fmt.Fprintf(w, "export %s=%s\n", name, shellQuote(value)); err != nil {
			return err
		}
	}
	return nil
}

// shellQuote wraps s in single quotes for POSIX shells
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
