package printer

import (
	"io"
	"os"

	"github.com/arthur-debert/streamprinter/pkg/errors"
	"github.com/arthur-debert/streamprinter/pkg/formatter"
)

// StreamResolver opens the byte stream a writer is bound to. hasPath is
// false when no destination path is configured.
type StreamResolver interface {
	ResolveStream(path string, hasPath bool) (io.Writer, error)
}

// StreamResolverFunc adapts a function to StreamResolver
type StreamResolverFunc func(path string, hasPath bool) (io.Writer, error)

// ResolveStream calls fn
func (fn StreamResolverFunc) ResolveStream(path string, hasPath bool) (io.Writer, error) {
	return fn(path, hasPath)
}

// FormatterFactory builds the formatter a writer renders markup with
type FormatterFactory interface {
	NewFormatter(styles formatter.StyleTable) *formatter.Formatter
}

// FormatterFactoryFunc adapts a function to FormatterFactory
type FormatterFactoryFunc func(styles formatter.StyleTable) *formatter.Formatter

// NewFormatter calls fn
func (fn FormatterFactoryFunc) NewFormatter(styles formatter.StyleTable) *formatter.Formatter {
	return fn(styles)
}

// FileResolver writes to Stdout without a path and to the named file otherwise
type FileResolver struct {
	// Stdout is used when no path is set
	Stdout io.Writer
	// Owner names the printer type in BadOutputPath errors
	Owner string
}

// ResolveStream implements StreamResolver
func (r FileResolver) ResolveStream(path string, hasPath bool) (io.Writer, error) {
	if !hasPath {
		if r.Stdout != nil {
			return r.Stdout, nil
		}
		return os.Stdout, nil
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, errors.BadOutputPath(path, r.Owner)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileCreate, "failed to open output file %s", path).
			WithDetail(errors.DetailPath, path)
	}
	return file, nil
}

// defaultFormatterFactory registers each style of the table on a fresh,
// undecorated formatter. Decoration is settled by the writer.
func defaultFormatterFactory(styles formatter.StyleTable) *formatter.Formatter {
	f := formatter.New(false)
	for _, name := range styles.Names() {
		f.SetStyle(name, styles[name])
	}
	return f
}
