/*
Package printer provides Printer, the output adapter commands write through.

A Printer holds output configuration: the destination path (standard output
when unset), a table of named styles, a tri-state decoration override and a
verbose flag. The stream.Writer that does the work is built lazily on the
first write and cached. Every setter, and Flush, discards the cached writer
so the next write rebuilds it from the current configuration.

	p := printer.New()
	p.SetPath("report.txt")
	p.SetStyles(formatter.StyleTable{"warning": {Foreground: "yellow", Options: []string{"bold"}}})
	if err := p.Writeln("<warning>3 files skipped</warning>"); err != nil {
		return err
	}

Writer construction:
 1. The StreamResolver opens the stream: standard output without a path, the
    file otherwise (created or truncated). A path naming a directory fails
    with an ErrBadOutputPath error carrying the path.
 2. The FormatterFactory builds a formatter with every style of the table.
 3. The writer is created at normal verbosity with the decoration override;
    DecorationAuto lets it detect terminal support.
 4. The verbose flag raises the writer to verbose. An explicit decoration is
    applied once more onto the writer's formatter.

Streams opened by a Printer are never closed by it, including when a writer
is discarded. A Printer is not safe for concurrent use.
*/
package printer
