package cli

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/overlay/internal/version"
	"github.com/arthur-debert/overlay/pkg/config"
	"github.com/arthur-debert/overlay/pkg/errors"
	"github.com/arthur-debert/overlay/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// RootEnv names the variable holding the default packs root
const RootEnv = config.EnvPrefix + "ROOT"

// globalOptions holds the persistent flags and the loaded configuration
type globalOptions struct {
	verbosity  int
	root       string
	configFile string
	format     string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "overlay",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.root, "root", "r", "", MsgFlagRoot)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", MsgFlagFormat)

	rootCmd.AddCommand(newPlanCmd(opts))
	rootCmd.AddCommand(newBuildCmd(opts))
	rootCmd.AddCommand(newOrderCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// loadConfig layers command-line flags over the configuration files
func loadConfig(cmd *cobra.Command, opts *globalOptions) (*config.Config, error) {
	overrides := make(map[string]interface{})
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		overrides["output.format"] = f.Value.String()
	}
	if f := cmd.Flags().Lookup("target"); f != nil && f.Changed {
		overrides["target.dir"] = f.Value.String()
	}

	return config.Load(config.LoadOptions{
		ConfigFile: opts.configFile,
		Overrides:  overrides,
	})
}

// packsRoot returns the absolute packs root: --root, then $OVERLAY_ROOT,
// then the working directory
func (o *globalOptions) packsRoot() (string, error) {
	root := o.root
	if root == "" {
		root = os.Getenv(RootEnv)
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "cannot determine working directory")
		}
		root = cwd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "cannot resolve packs root").
			WithDetail("path", root)
	}
	return abs, nil
}
