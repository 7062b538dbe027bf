// internal/cli/platform.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/buildcfg/pkg/platform"
	"github.com/arc-language/buildcfg/pkg/registry"
)

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Show what the resolver can see on this system",
	Long:  `Show the platform, whether pkg-config is available, the system library directories searched for static archives, and the known library profiles.`,
	Args:  cobra.NoArgs,
	RunE:  runPlatform,
}

func runPlatform(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	plat := platform.Detect(config.PkgConfig)

	fmt.Fprintf(out, "Platform: %s/%s\n\n", plat.OS, plat.Arch)

	if plat.HasPkgConfig() {
		fmt.Fprintf(out, "pkg-config: %s\n", plat.PkgConfigPath)
	} else {
		fmt.Fprintf(out, "pkg-config: %s not found, profile defaults will be used\n", plat.PkgConfig)
	}

	fmt.Fprintf(out, "\nSystem library directories:\n")
	for _, dir := range plat.SystemLibDirs {
		fmt.Fprintf(out, "  %s\n", dir)
	}

	names := registry.New(config.ProfilesDir).Names()
	fmt.Fprintf(out, "\nProfiles: %s\n", strings.Join(names, ", "))
	if config.Library != "" {
		fmt.Fprintf(out, "Default library: %s\n", config.Library)
	}

	return nil
}
