package config

import (
	"github.com/arthur-debert/streamprinter/pkg/errors"
	"github.com/arthur-debert/streamprinter/pkg/formatter"
	"github.com/arthur-debert/streamprinter/pkg/printer"
	"github.com/arthur-debert/streamprinter/pkg/stream"
)

// Decoration parses Output.Decorated
func (c *Config) Decoration() (stream.Decoration, error) {
	d, err := stream.ParseDecoration(c.Output.Decorated)
	if err != nil {
		return stream.DecorationAuto, errors.Wrap(err, errors.ErrConfigValid, "invalid output.decorated").
			WithDetail("value", c.Output.Decorated)
	}
	return d, nil
}

// StyleTable returns the theme styles with the [styles] table applied on top
func (c *Config) StyleTable() (formatter.StyleTable, error) {
	table := formatter.StyleTable{}
	if c.Output.Theme != "" {
		theme, err := formatter.LoadTheme(c.Output.Theme)
		if err != nil {
			return nil, err
		}
		table = theme
	}
	return table.Merge(c.Styles), nil
}

// Apply configures p. The path is only set when one is configured, so an
// empty path keeps p on standard output.
func (c *Config) Apply(p *printer.Printer) error {
	decoration, err := c.Decoration()
	if err != nil {
		return err
	}
	styles, err := c.StyleTable()
	if err != nil {
		return err
	}

	if c.Output.Path != "" {
		p.SetPath(c.Output.Path)
	}
	p.SetStyles(styles)
	p.SetDecorated(decoration)
	p.SetVerbose(c.Output.Verbose)
	return nil
}

// NewPrinter builds a printer from the configuration
func (c *Config) NewPrinter(opts ...printer.Option) (*printer.Printer, error) {
	p := printer.New(opts...)
	if err := c.Apply(p); err != nil {
		return nil, err
	}
	return p, nil
}
