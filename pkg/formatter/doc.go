/*
Package formatter turns style markup into terminal output.

A Formatter holds a table of named styles. Each style is a StyleSpec made of
an optional foreground color, an optional background color and a set of
options (bold, underscore, blink, reverse, conceal, italic, faint,
strikethrough). Styles are rendered with lipgloss, so the escape sequences
produced follow the color profile of the renderer the formatter is bound to.

# Markup

Named styles are applied with XML-like tags:

	<info>Build finished</info> in <comment>3s</comment>

Inline styles need no registration:

	<fg=white;bg=red;options=bold>FAILED</>

The closing tag </> closes the innermost open tag. Nested tags apply the
innermost style only. Tags that name no registered style and do not parse as
an inline style are left in the text untouched. A backslash escapes a tag:
\<info> is printed literally as <info>.

# Decoration

An undecorated formatter strips every recognised tag and emits plain text.
A decorated formatter renders styles; when its renderer detected no color
support (for example a file or a pipe) decoration forces a 256 color profile.

	f := formatter.New(true)
	f.SetStyle("path", formatter.StyleSpec{Foreground: "cyan", Options: []string{"italic"}})
	fmt.Println(f.Format("wrote <path>out.txt</path>"))

# Default styles

Every formatter starts with error (white on red), info (green), comment
(yellow) and question (black on cyan).

# Themes

Style tables can be loaded from YAML with LoadTheme and ParseTheme. A style
is written either as a mapping or as a one to three element list:

	styles:
	  warning: [yellow, default, bold]
	  path:
	    foreground: cyan
	    options: [italic]
*/
package formatter
