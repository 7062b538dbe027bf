// pkg/probe/types.go
package probe

import "context"

// Result is the outcome of a single probe command
type Result struct {
	Line     string // First line of standard output, trailing whitespace stripped
	ExitCode int    // Process exit code, -1 if the process never completed
}

// OK reports whether the probe exited cleanly with usable output
func (r Result) OK() bool {
	return r.ExitCode == 0 && r.Line != ""
}

// Runner executes probe commands
type Runner interface {
	// Run executes command and blocks until it exits
	Run(ctx context.Context, command string) Result
}

// RunnerFunc adapts an ordinary function to the Runner interface
type RunnerFunc func(ctx context.Context, command string) Result

// Run calls f(ctx, command)
func (f RunnerFunc) Run(ctx context.Context, command string) Result {
	return f(ctx, command)
}
