// internal/cli/profile.go
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arc-language/buildcfg/pkg/registry"
)

var profileForce bool

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage library profiles",
	Long: `Library profiles hold the pkg-config module of a library and the
defaults used when pkg-config cannot answer. They live in
<profiles_dir>/<name>/index.toml.`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range registry.New(config.ProfilesDir).Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a profile as TOML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProfileShow,
}

var profileInitCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Write a profile file to edit",
	Long: `Write <profiles_dir>/<name>/index.toml from the built-in profile of the
same name, or a skeleton for a new library.

Examples:
  buildcfg profile init
  buildcfg profile init libxml-2.0`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProfileInit,
}

func init() {
	profileInitCmd.Flags().BoolVar(&profileForce, "force", false, "overwrite an existing profile file")
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileInitCmd)
}

// profileName returns the name argument, or the configured default library
func profileName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.Library
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	p, err := registry.New(config.ProfilesDir).Load(profileName(args))
	if err != nil {
		return err
	}
	return toml.NewEncoder(cmd.OutOrStdout()).Encode(p)
}

func runProfileInit(cmd *cobra.Command, args []string) error {
	name := profileName(args)
	reg := registry.New(config.ProfilesDir)

	p, err := reg.Load(name)
	if errors.Is(err, registry.ErrNotFound) {
		p = &registry.Profile{Name: name, Module: name, Libraries: []string{name}}
	} else if err != nil {
		return err
	}

	path := reg.Path(name)
	if path == "" {
		return fmt.Errorf("no profiles directory configured")
	}
	if _, err := os.Stat(path); err == nil && !profileForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := reg.Save(p); err != nil {
		return err
	}

	logger.Debug("saved profile", "name", p.Name, "path", path)
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
	return nil
}
