// pkg/core/flags.go
package core

// Command line tokens that select the resolution mode
const (
	FlagStatic      = "--static"
	FlagNoPkgConfig = "--no-pkg-config"
)

// ModeFlags selects how the configuration is resolved
type ModeFlags struct {
	Static       bool // Link the library statically
	UsePkgConfig bool // Query pkg-config instead of using defaults only
}

// DefaultModeFlags returns dynamic linking with pkg-config discovery
func DefaultModeFlags() ModeFlags {
	return ModeFlags{UsePkgConfig: true}
}

// ParseModeFlags reads the mode tokens from argv and returns the flags
// together with argv minus those tokens. argv itself is left unchanged.
func ParseModeFlags(argv []string) (ModeFlags, []string) {
	flags := DefaultModeFlags()
	rest := make([]string, 0, len(argv))

	for _, arg := range argv {
		switch arg {
		case FlagStatic:
			flags.Static = true
		case FlagNoPkgConfig:
			flags.UsePkgConfig = false
		default:
			rest = append(rest, arg)
		}
	}

	return flags, rest
}
