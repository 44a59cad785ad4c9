package streamprinter

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Write styled messages to the terminal or to a file"
	MsgWriteShort      = "Write messages through the printer"
	MsgStylesShort     = "List the available styles"
	MsgGenConfigShort  = "Print a configuration template"
	MsgVersionShort    = "Print version information"
	MsgManShort        = "Generate man pages"
	MsgCompletionShort = "Generate shell completion script"

	// Version output
	MsgVersionFormat = "streamprinter version %s\n  commit: %s\n  built:  %s\n"

	// Table headers
	MsgHeaderName       = "Name"
	MsgHeaderForeground = "Foreground"
	MsgHeaderBackground = "Background"
	MsgHeaderOptions    = "Options"
	MsgHeaderSample     = "Sample"
	MsgSampleText       = "sample"

	// Status messages
	MsgManWritten = "Man pages written to %s\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrReadStdin  = "failed to read standard input: %w"
	MsgErrMarkdown   = "failed to render markdown: %w"
	MsgErrStyleTable = "failed to render style table: %w"
	MsgErrNoCommand  = "no command specified"
	MsgErrManPages   = "failed to generate man pages: %w"
	MsgErrEffConfig  = "failed to render configuration: %w"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE); also raises the printer level"
	MsgFlagConfig      = "Config file (default is $XDG_CONFIG_HOME/streamprinter/config.toml)"
	MsgFlagOutput      = "Write to this file instead of standard output"
	MsgFlagDecorated   = "Force styled output"
	MsgFlagNoDecorated = "Disable styled output"
	MsgFlagStyle       = "Add a style, as name=fg:bg:options (repeatable)"
	MsgFlagNoNewline   = "Do not write a line break after each message"
	MsgFlagStdin       = "Read an additional message from standard input"
	MsgFlagMarkdown    = "Render the messages as markdown"
	MsgFlagWidth       = "Word wrap width for markdown"
	MsgFlagLevel       = "Verbosity the messages are written at (quiet, normal, verbose, very-verbose, debug)"
	MsgFlagRaw         = "Write the messages without expanding markup"
	MsgFlagEffective   = "Print the effective configuration instead of the template"
	MsgFlagManDir      = "Directory the man pages are written to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/write-long.txt
	msgWriteLongRaw string
	MsgWriteLong    = strings.TrimSpace(msgWriteLongRaw)

	//go:embed msgs/write-example.txt
	msgWriteExampleRaw string
	MsgWriteExample    = strings.TrimRight(msgWriteExampleRaw, "\n")

	//go:embed msgs/styles-long.txt
	msgStylesLongRaw string
	MsgStylesLong    = strings.TrimSpace(msgStylesLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)
)
