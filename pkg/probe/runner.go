// pkg/probe/runner.go
package probe

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"time"
	"unicode"
)

// waitDelay bounds how long Run waits for output pipes after the process was killed
const waitDelay = time.Second

// ShellRunner runs probe commands through the platform shell
type ShellRunner struct {
	// Timeout bounds each command. Zero waits indefinitely.
	Timeout time.Duration
}

// NewShellRunner creates a shell runner with the given per-command timeout
func NewShellRunner(timeout time.Duration) *ShellRunner {
	return &ShellRunner{Timeout: timeout}
}

// Run executes command with no standard input and captures the first
// line of standard output. Standard error is discarded.
//
// A command that times out, is cancelled, or cannot be started reports
// ExitCode -1, which callers handle like any other failed exit.
func (r *ShellRunner) Run(ctx context.Context, command string) Result {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	shell, flag := shellFor(runtime.GOOS)
	cmd := exec.CommandContext(ctx, shell, flag, command)
	cmd.WaitDelay = waitDelay

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	if ctx.Err() != nil {
		return Result{ExitCode: -1}
	}

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{ExitCode: -1}
		}
		exitCode = exitErr.ExitCode()
	}

	return Result{
		Line:     firstLine(stdout.String()),
		ExitCode: exitCode,
	}
}

// shellFor returns the shell and its command flag for goos
func shellFor(goos string) (string, string) {
	if goos == "windows" {
		return "cmd", "/C"
	}
	return "sh", "-c"
}

// firstLine returns the first line of out without trailing whitespace
func firstLine(out string) string {
	if i := strings.IndexByte(out, '\n'); i >= 0 {
		out = out[:i]
	}
	return strings.TrimRightFunc(out, unicode.IsSpace)
}
