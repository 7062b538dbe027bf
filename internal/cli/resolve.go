// internal/cli/resolve.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/arc-language/buildcfg/pkg/emit"
)

var (
	resolveMode    modeOptions
	resolveFormat  string
	resolvePackage string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the build configuration for a library",
	Long: `Resolve include directories, library directories and libraries.

Examples:
  buildcfg resolve
  buildcfg resolve --static
  buildcfg resolve --no-pkg-config --static --format json
  buildcfg resolve --format cgo --package igraph > cgo_flags.go`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	resolveMode.register(resolveCmd)
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", string(emit.FormatText), "output format (text, json, yaml, toml, flags, cgo, env)")
	resolveCmd.Flags().StringVar(&resolvePackage, "package", emit.DefaultPackage, "package clause for --format cgo")
}

func runResolve(cmd *cobra.Command, args []string) error {
	format, err := emit.ParseFormat(resolveFormat)
	if err != nil {
		return err
	}

	cfg, err := newResolver().Build(cmd.Context(), resolveMode.library, resolveMode.flags())
	if err != nil {
		return err
	}

	opts := emit.Options{Package: resolvePackage}
	return opts.Write(cmd.OutOrStdout(), cfg, format)
}
