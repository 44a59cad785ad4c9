package streamprinter

import (
	"fmt"

	"github.com/arthur-debert/streamprinter/internal/version"
	"github.com/arthur-debert/streamprinter/pkg/config"
	"github.com/arthur-debert/streamprinter/pkg/logging"
	"github.com/arthur-debert/streamprinter/pkg/printer"
	"github.com/arthur-debert/streamprinter/pkg/stream"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags shared by every command
type rootOptions struct {
	verbosity   int
	configFile  string
	output      string
	decorated   bool
	noDecorated bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "streamprinter",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	flags.StringVarP(&opts.output, "output", "o", "", MsgFlagOutput)
	flags.BoolVar(&opts.decorated, "decorated", false, MsgFlagDecorated)
	flags.BoolVar(&opts.noDecorated, "no-decorated", false, MsgFlagNoDecorated)
	rootCmd.MarkFlagsMutuallyExclusive("decorated", "no-decorated")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(newWriteCmd(opts))
	rootCmd.AddCommand(newStylesCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadConfig reads the configuration with the command line flags applied on top
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("output") {
		overrides["output.path"] = o.output
	}
	if o.decorated || o.noDecorated {
		overrides["output.decorated"] = stream.DecorationFrom(o.decorated).String()
	}
	if o.verbosity > 0 {
		overrides["output.verbose"] = true
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: o.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

// newPrinter builds a printer from the configuration, writing to the
// command's output stream when no path is configured
func (o *rootOptions) newPrinter(cmd *cobra.Command) (*printer.Printer, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	p, err := cfg.NewPrinter(
		printer.WithStdout(cmd.OutOrStdout()),
		printer.WithLogger(logging.GetLogger("printer")),
	)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	log.Debug().Stringer("printer", p).Msg("Printer configured")
	return p, nil
}
