// internal/cli/inspect.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/buildcfg/pkg/archive"
)

var inspectMode modeOptions

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List the members of the static archives that would be linked",
	Long: `Resolve a static configuration and list the object files inside each
archive it links directly.`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	inspectMode.register(inspectCmd)
	inspectCmd.Flags().Lookup("static").Hidden = true
}

func runInspect(cmd *cobra.Command, args []string) error {
	flags := inspectMode.flags()
	flags.Static = true

	cfg, err := newResolver().Build(cmd.Context(), inspectMode.library, flags)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(cfg.ExtraObjects) == 0 {
		fmt.Fprintln(out, "No static archives found")
	}

	for _, path := range cfg.ExtraObjects {
		members, err := archive.Members(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "✗ %v\n", err)
			continue
		}

		fmt.Fprintf(out, "%s (%d members)\n", path, len(members))
		for _, m := range members {
			fmt.Fprintf(out, "  %-40s %d bytes\n", m.Name, m.Size)
		}
	}

	if len(cfg.Libraries) > 0 {
		fmt.Fprintf(out, "Linked dynamically: %v\n", cfg.Libraries)
	}

	return nil
}
