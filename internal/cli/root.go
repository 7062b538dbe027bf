// internal/cli/root.go
package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arc-language/buildcfg"
	"github.com/arc-language/buildcfg/pkg/core"
)

var (
	cfgFile   string
	pkgConfig string
	debug     bool
	config    *core.Config
	logger    *log.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "buildcfg",
	Short: "Native library build configuration resolver",
	Long: `buildcfg - native library build configuration resolver

Finds the include directories, library directories and libraries needed
to compile against a native library (igraph by default). pkg-config is
queried first; profile defaults are used wherever it has no answer.
With --static, libraries are swapped for static archives found on disk.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/buildcfg/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&pkgConfig, "pkg-config", "", "pkg-config executable to query")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(platformCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if pkgConfig != "" {
		config.PkgConfig = pkgConfig
	}
	if debug {
		config.Debug = true
	}

	level := log.InfoLevel
	if config.Debug {
		level = log.DebugLevel
	}
	logger = newLogger(rootCmd.ErrOrStderr(), level)
}

// newResolver builds a resolver from the loaded configuration
func newResolver() *buildcfg.Resolver {
	return buildcfg.NewResolver(config, &buildcfg.Options{Logger: logger})
}

// modeOptions holds the --static and --no-pkg-config flags of a command
type modeOptions struct {
	static      bool
	noPkgConfig bool
	library     string
}

func (o *modeOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.static, "static", false, "link the library statically")
	cmd.Flags().BoolVar(&o.noPkgConfig, "no-pkg-config", false, "skip pkg-config and use profile defaults")
	cmd.Flags().StringVar(&o.library, "library", "", "library profile to resolve (default from config)")
}

func (o *modeOptions) flags() core.ModeFlags {
	return core.ModeFlags{
		Static:       o.static,
		UsePkgConfig: !o.noPkgConfig,
	}
}
