// pkg/registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/BurntSushi/toml"
)

var (
	// ErrNotFound is returned for a profile with neither a file nor a built-in
	ErrNotFound = errors.New("profile not found")

	// ErrInvalidName is returned for names that are not a single safe path element
	ErrInvalidName = errors.New("invalid profile name")
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_+-][A-Za-z0-9._+-]*$`)

// ValidName reports whether name is usable as a profile or pkg-config
// module name: letters, digits and . _ + - only, not starting with a dot
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Profile holds everything needed to resolve one native library:
// the pkg-config module and the defaults used when discovery fails
type Profile struct {
	Name               string   `toml:"name"`
	Module             string   `toml:"module"`              // pkg-config module name
	IncludeDirs        []string `toml:"include_dirs"`        // Fallback -I directories
	LibraryDirs        []string `toml:"library_dirs"`        // Fallback -L directories
	Libraries          []string `toml:"libraries"`           // Fallback and no-pkg-config library names
	StaticDependencies []string `toml:"static_dependencies"` // Extra names for static builds without pkg-config
}

// Builtin profiles ship with buildcfg.
//
// The igraph static dependencies are an educated guess at its
// transitive link requirements. They are not verified against the
// installed library and are not portable; override them in a profile.
var Builtin = map[string]Profile{
	"igraph": {
		Name:               "igraph",
		Module:             "igraph",
		IncludeDirs:        []string{"/tmp/include/igraph"},
		LibraryDirs:        []string{"/tmp/lib"},
		Libraries:          []string{"igraph"},
		StaticDependencies: []string{"xml2", "z", "m"},
	},
}

// Registry provides lookup into a directory of profiles
type Registry struct {
	profilesDir string
}

// New creates a Registry pointed at profilesDir. An empty directory
// means only built-in profiles are available.
func New(profilesDir string) *Registry {
	return &Registry{
		profilesDir: profilesDir,
	}
}

// Load returns the profile for name. <profilesDir>/<name>/index.toml
// takes precedence; fields it leaves out are taken from the built-in
// profile of the same name, if there is one.
func (r *Registry) Load(name string) (*Profile, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("registry: %w: %q", ErrInvalidName, name)
	}

	builtin, hasBuiltin := Builtin[name]

	path := r.Path(name)
	if path == "" {
		if !hasBuiltin {
			return nil, fmt.Errorf("registry: profile '%s': %w", name, ErrNotFound)
		}
		return builtin.clone(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("registry: reading '%s': %w", name, err)
		}
		if !hasBuiltin {
			return nil, fmt.Errorf("registry: profile '%s': %w", name, ErrNotFound)
		}
		return builtin.clone(), nil
	}

	var p Profile
	if _, err := toml.Decode(string(data), &p); err != nil {
		return nil, fmt.Errorf("registry: failed to parse '%s': %w", name, err)
	}

	if hasBuiltin {
		p.fillFrom(builtin)
	}
	p.fillNames(name)

	return &p, nil
}

// Names lists built-in profiles plus every profile directory on disk
func (r *Registry) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for name := range Builtin {
		seen[name] = true
		names = append(names, name)
	}

	if r.profilesDir != "" {
		entries, err := os.ReadDir(r.profilesDir)
		if err == nil {
			for _, entry := range entries {
				if !entry.IsDir() || seen[entry.Name()] {
					continue
				}
				if _, err := os.Stat(filepath.Join(r.profilesDir, entry.Name(), "index.toml")); err != nil {
					continue
				}
				seen[entry.Name()] = true
				names = append(names, entry.Name())
			}
		}
	}

	sort.Strings(names)
	return names
}

// Save writes p to <profilesDir>/<p.Name>/index.toml
func (r *Registry) Save(p *Profile) error {
	if r.profilesDir == "" {
		return fmt.Errorf("registry: no profiles directory configured")
	}
	if !ValidName(p.Name) {
		return fmt.Errorf("registry: %w: %q", ErrInvalidName, p.Name)
	}

	path := r.Path(p.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("registry: creating profile directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("registry: writing '%s': %w", p.Name, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf("registry: encoding '%s': %w", p.Name, err)
	}
	return nil
}

// Path returns the profile file for name, or "" without a profiles directory
func (r *Registry) Path(name string) string {
	if r.profilesDir == "" {
		return ""
	}
	return filepath.Join(r.profilesDir, name, "index.toml")
}

func (p Profile) clone() *Profile {
	c := p
	c.IncludeDirs = append([]string(nil), p.IncludeDirs...)
	c.LibraryDirs = append([]string(nil), p.LibraryDirs...)
	c.Libraries = append([]string(nil), p.Libraries...)
	c.StaticDependencies = append([]string(nil), p.StaticDependencies...)
	return &c
}

// fillFrom copies every field p leaves unset from base. An explicitly
// empty list in the file counts as set.
func (p *Profile) fillFrom(base Profile) {
	b := base.clone()
	if p.Module == "" {
		p.Module = b.Module
	}
	if p.IncludeDirs == nil {
		p.IncludeDirs = b.IncludeDirs
	}
	if p.LibraryDirs == nil {
		p.LibraryDirs = b.LibraryDirs
	}
	if p.Libraries == nil {
		p.Libraries = b.Libraries
	}
	if p.StaticDependencies == nil {
		p.StaticDependencies = b.StaticDependencies
	}
}

func (p *Profile) fillNames(name string) {
	if p.Name == "" {
		p.Name = name
	}
	if p.Module == "" {
		p.Module = p.Name
	}
	if p.Libraries == nil {
		p.Libraries = []string{p.Name}
	}
}
