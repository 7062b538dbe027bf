// errors.go
package buildcfg

import (
	"errors"
	"fmt"

	"github.com/arc-language/buildcfg/pkg/archive"
	"github.com/arc-language/buildcfg/pkg/emit"
	"github.com/arc-language/buildcfg/pkg/registry"
)

var (
	// ErrProfileNotFound indicates no profile file or built-in exists for a library
	ErrProfileNotFound = registry.ErrNotFound

	// ErrInvalidProfileName indicates a library name that cannot name a profile file
	ErrInvalidProfileName = registry.ErrInvalidName

	// ErrInvalidProfile indicates a profile that cannot be used to build probe commands
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrUnknownFormat indicates an unsupported output format
	ErrUnknownFormat = emit.ErrUnknownFormat

	// ErrNotArchive indicates a resolved object that is not an ar archive
	ErrNotArchive = archive.ErrNotArchive
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Library string // Library name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Library != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Library, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
