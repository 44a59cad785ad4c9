package streamprinter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/streamprinter/internal/version"
	"github.com/arthur-debert/streamprinter/pkg/config"
	"github.com/arthur-debert/streamprinter/pkg/errors"
	"github.com/arthur-debert/streamprinter/pkg/formatter"
	"github.com/arthur-debert/streamprinter/pkg/logging"
	"github.com/arthur-debert/streamprinter/pkg/stream"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newWriteCmd(opts *rootOptions) *cobra.Command {
	var (
		styleDefs []string
		noNewline bool
		fromStdin bool
		markdown  bool
		width     int
		level     string
		raw       bool
	)

	cmd := &cobra.Command{
		Use:     "write [messages...]",
		Short:   MsgWriteShort,
		Long:    MsgWriteLong,
		Example: MsgWriteExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.LogCommand("write", args)

			p, err := opts.newPrinter(cmd)
			if err != nil {
				return err
			}

			if len(styleDefs) > 0 {
				styles := p.Styles()
				for _, def := range styleDefs {
					name, spec, err := formatter.ParseStyleDefinition(def)
					if err != nil {
						return err
					}
					styles[name] = spec
				}
				p.SetStyles(styles)
			}

			messages := args
			if fromStdin {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf(MsgErrReadStdin, err)
				}
				messages = append(messages, strings.TrimRight(string(data), "\n"))
			}

			atLevel, err := stream.ParseVerbosity(level)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --level").WithDetail("value", level)
			}

			w, err := p.Writer()
			if err != nil {
				return err
			}
			if opts.verbosity > 0 {
				w.SetVerbosity(stream.VerbosityFromCount(opts.verbosity))
			}

			writeOpts := []stream.WriteOption{stream.AtVerbosity(atLevel)}

			if markdown {
				rendered, err := renderMarkdown(strings.Join(messages, "\n"), w.IsDecorated(), width)
				if err != nil {
					return fmt.Errorf(MsgErrMarkdown, err)
				}
				return w.Write([]string{rendered}, false, append(writeOpts, stream.Raw())...)
			}

			if raw {
				writeOpts = append(writeOpts, stream.Raw())
			}

			if len(messages) == 0 {
				if noNewline {
					return nil
				}
				messages = []string{""}
			}
			return w.Write(messages, !noNewline, writeOpts...)
		},
	}

	cmd.Flags().StringArrayVarP(&styleDefs, "style", "s", nil, MsgFlagStyle)
	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, MsgFlagNoNewline)
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, MsgFlagStdin)
	cmd.Flags().BoolVarP(&markdown, "markdown", "m", false, MsgFlagMarkdown)
	cmd.Flags().IntVar(&width, "width", defaultMarkdownWidth, MsgFlagWidth)
	cmd.Flags().StringVar(&level, "level", stream.VerbosityNormal.String(), MsgFlagLevel)
	cmd.Flags().BoolVar(&raw, "raw", false, MsgFlagRaw)
	cmd.MarkFlagsMutuallyExclusive("markdown", "raw")
	_ = cmd.RegisterFlagCompletionFunc("style", completeStyleDefinition)
	_ = cmd.RegisterFlagCompletionFunc("level", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var levels []string
		for v := stream.VerbosityQuiet; v <= stream.VerbosityDebug; v++ {
			levels = append(levels, v.String())
		}
		return levels, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// completeStyleDefinition completes name=fg:bg:options: colors for the first
// two fields, options (comma separated) for the third.
func completeStyleDefinition(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	directive := cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace

	_, descriptor, found := strings.Cut(toComplete, "=")
	if !found {
		return nil, directive
	}

	fields := strings.Split(descriptor, ":")
	current := fields[len(fields)-1]

	var candidates []string
	switch len(fields) {
	case 1, 2:
		candidates = formatter.ColorNames()
	case 3:
		candidates = formatter.OptionNames()
		if i := strings.LastIndex(current, ","); i >= 0 {
			current = current[i+1:]
		}
	default:
		return nil, directive
	}

	prefix := toComplete[:len(toComplete)-len(current)]
	var completions []string
	for _, c := range candidates {
		if strings.HasPrefix(c, current) {
			completions = append(completions, prefix+c)
		}
	}
	return completions, directive
}

func newStylesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "styles",
		Short:   MsgStylesShort,
		Long:    MsgStylesLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.newPrinter(cmd)
			if err != nil {
				return err
			}
			w, err := p.Writer()
			if err != nil {
				return err
			}

			table, err := renderStyleTable(w.Formatter())
			if err != nil {
				return fmt.Errorf(MsgErrStyleTable, err)
			}

			// pterm colors the table itself, so undecorated output drops every escape
			mode := stream.Raw()
			if !w.IsDecorated() {
				mode = stream.Plain()
			}
			return w.Write([]string{table}, false, mode)
		},
	}
}

// renderStyleTable lists the formatter's styles with a rendered sample each
func renderStyleTable(f *formatter.Formatter) (string, error) {
	styles := f.Styles()

	data := pterm.TableData{
		{MsgHeaderName, MsgHeaderForeground, MsgHeaderBackground, MsgHeaderOptions, MsgHeaderSample},
	}
	for _, name := range styles.Names() {
		spec := styles[name]
		sample := f.Format("<" + name + ">" + MsgSampleText + "</" + name + ">")
		data = append(data, []string{
			name,
			valueOrDash(spec.Foreground),
			valueOrDash(spec.Background),
			valueOrDash(strings.Join(spec.Options, ",")),
			sample,
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func newGenConfigCmd(opts *rootOptions) *cobra.Command {
	var effective bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !effective {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
				return err
			}

			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return fmt.Errorf(MsgErrEffConfig, err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf(MsgErrManPages, err)
			}
			header := &doc.GenManHeader{
				Title:   "STREAMPRINTER",
				Section: "1",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return fmt.Errorf(MsgErrManPages, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagManDir)

	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
