// Package stream writes formatted messages to a byte stream, filtering them
// by verbosity.
package stream

import (
	"io"

	"github.com/arthur-debert/streamprinter/pkg/errors"
	"github.com/arthur-debert/streamprinter/pkg/formatter"
	"github.com/charmbracelet/x/ansi"
)

// Writer binds a byte stream to a formatter and a verbosity level
type Writer struct {
	out       io.Writer
	verbosity Verbosity
	formatter *formatter.Formatter
}

// New creates a writer on out. A nil formatter gets a default one. The
// formatter is bound to out; with DecorationAuto decoration is detected
// from out.
func New(out io.Writer, verbosity Verbosity, decoration Decoration, f *formatter.Formatter) *Writer {
	decorated, set := decoration.Bool()
	if !set {
		decorated = DetectDecoration(out)
	}

	if f == nil {
		f = formatter.New(false)
	}
	f.Bind(out)
	f.SetDecorated(decorated)

	return &Writer{
		out:       out,
		verbosity: verbosity,
		formatter: f,
	}
}

type writeOptions struct {
	verbosity Verbosity
	mode      outputMode
}

type outputMode int

const (
	modeNormal outputMode = iota
	modeRaw
	modePlain
)

// WriteOption adjusts a single Write call
type WriteOption func(*writeOptions)

// AtVerbosity only emits the messages when the writer is at least this verbose
func AtVerbosity(v Verbosity) WriteOption {
	return func(o *writeOptions) {
		o.verbosity = v
	}
}

// Raw writes the messages without expanding markup
func Raw() WriteOption {
	return func(o *writeOptions) {
		o.mode = modeRaw
	}
}

// Plain expands markup but drops every style, including escape sequences
// already present in the message
func Plain() WriteOption {
	return func(o *writeOptions) {
		o.mode = modePlain
	}
}

// Write writes each message in order, followed by a newline when newline is set
func (w *Writer) Write(messages []string, newline bool, opts ...WriteOption) error {
	o := writeOptions{verbosity: VerbosityNormal}
	for _, opt := range opts {
		opt(&o)
	}

	if o.verbosity > w.verbosity {
		return nil
	}

	for _, message := range messages {
		switch o.mode {
		case modeNormal:
			message = w.formatter.Format(message)
		case modePlain:
			message = ansi.Strip(w.formatter.Strip(message))
		}
		if newline {
			message += "\n"
		}

		if _, err := io.WriteString(w.out, message); err != nil {
			return errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
		}
	}

	return nil
}

// Writeln writes each message followed by a newline
func (w *Writer) Writeln(messages []string, opts ...WriteOption) error {
	return w.Write(messages, true, opts...)
}

// SetVerbosity changes the writer's level
func (w *Writer) SetVerbosity(v Verbosity) {
	w.verbosity = v
}

// Verbosity returns the writer's level
func (w *Writer) Verbosity() Verbosity {
	return w.verbosity
}

func (w *Writer) IsQuiet() bool       { return w.verbosity == VerbosityQuiet }
func (w *Writer) IsVerbose() bool     { return w.verbosity >= VerbosityVerbose }
func (w *Writer) IsVeryVerbose() bool { return w.verbosity >= VerbosityVeryVerbose }
func (w *Writer) IsDebug() bool       { return w.verbosity >= VerbosityDebug }

// SetDecorated forces styling on or off
func (w *Writer) SetDecorated(decorated bool) {
	w.formatter.SetDecorated(decorated)
}

// IsDecorated reports whether styles are rendered
func (w *Writer) IsDecorated() bool {
	return w.formatter.IsDecorated()
}

// Formatter returns the writer's formatter
func (w *Writer) Formatter() *formatter.Formatter {
	return w.formatter
}

// Out returns the underlying stream
func (w *Writer) Out() io.Writer {
	return w.out
}
