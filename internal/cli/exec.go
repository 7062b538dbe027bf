// internal/cli/exec.go
package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/arc-language/buildcfg/pkg/core"
	"github.com/arc-language/buildcfg/pkg/emit"
)

// ExitError carries the exit status of a command run by exec
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.Code)
}

var execMode modeOptions

var execCmd = &cobra.Command{
	Use:   "exec [--static] [--no-pkg-config] [--] command [args...]",
	Short: "Run a build command with the resolved flags in its environment",
	Long: `Resolve the configuration, then run a build command with CGO_CFLAGS,
CGO_LDFLAGS, CFLAGS and LDFLAGS set from it.

--static and --no-pkg-config are also picked out of the command's own
arguments and removed before it runs.

Examples:
  buildcfg exec go build ./...
  buildcfg exec --static -- make
  buildcfg exec python setup.py build_ext --static`,
	RunE: runExec,
}

func init() {
	execMode.register(execCmd)
	execCmd.Flags().SetInterspersed(false)
}

func runExec(cmd *cobra.Command, args []string) error {
	flags, rest := core.ParseModeFlags(args)
	if len(rest) == 0 {
		return cmd.Help()
	}
	flags.Static = flags.Static || execMode.static
	flags.UsePkgConfig = flags.UsePkgConfig && !execMode.noPkgConfig

	cfg, err := newResolver().Build(cmd.Context(), execMode.library, flags)
	if err != nil {
		return err
	}

	child := exec.CommandContext(cmd.Context(), rest[0], rest[1:]...)
	child.Env = append(os.Environ(), emit.Env(cfg)...)
	child.Stdin = cmd.InOrStdin()
	child.Stdout = cmd.OutOrStdout()
	child.Stderr = cmd.ErrOrStderr()

	logger.Debug("exec", "command", rest)

	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("running %s: %w", rest[0], err)
	}

	return nil
}
