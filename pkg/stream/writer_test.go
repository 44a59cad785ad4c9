package stream

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/streamprinter/pkg/errors"
	"github.com/arthur-debert/streamprinter/pkg/formatter"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterWrite(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		newline  bool
		want     string
	}{
		{"single message", []string{"x"}, false, "x"},
		{"single line", []string{"x"}, true, "x\n"},
		{"ordered messages", []string{"a", "b"}, false, "ab"},
		{"ordered lines", []string{"a", "b"}, true, "a\nb\n"},
		{"blank line", []string{""}, true, "\n"},
		{"nothing", nil, true, ""},
		{"markup stripped when undecorated", []string{"<info>ok</info>"}, false, "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := New(&buf, VerbosityNormal, DecorationOff, nil)

			require.NoError(t, w.Write(tt.messages, tt.newline))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriterVerbosityGate(t *testing.T) {
	tests := []struct {
		writer  Verbosity
		message Verbosity
		shown   bool
	}{
		{VerbosityNormal, VerbosityNormal, true},
		{VerbosityNormal, VerbosityVerbose, false},
		{VerbosityVerbose, VerbosityVerbose, true},
		{VerbosityVerbose, VerbosityDebug, false},
		{VerbosityDebug, VerbosityVeryVerbose, true},
		{VerbosityQuiet, VerbosityNormal, false},
	}

	for _, tt := range tests {
		t.Run(tt.writer.String()+"/"+tt.message.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w := New(&buf, tt.writer, DecorationOff, nil)

			require.NoError(t, w.Writeln([]string{"detail"}, AtVerbosity(tt.message)))
			if tt.shown {
				assert.Equal(t, "detail\n", buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestWriterModes(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, VerbosityNormal, DecorationOn, nil)
	info, ok := w.Formatter().Style("info")
	require.True(t, ok)

	require.NoError(t, w.Write([]string{"<info>ok</info>"}, false))
	assert.Equal(t, info.Render("ok"), buf.String())

	buf.Reset()
	require.NoError(t, w.Write([]string{"<info>ok</info>"}, false, Raw()))
	assert.Equal(t, "<info>ok</info>", buf.String())

	buf.Reset()
	require.NoError(t, w.Write([]string{"<info>ok</info>"}, false, Plain()))
	assert.Equal(t, "ok", buf.String())

	buf.Reset()
	require.NoError(t, w.Write([]string{"\x1b[1mbold\x1b[0m <info>ok</info>"}, false, Plain()))
	assert.Equal(t, "bold ok", buf.String())
}

func TestWriterDecoration(t *testing.T) {
	t.Run("forced on", func(t *testing.T) {
		var buf bytes.Buffer
		w := New(&buf, VerbosityNormal, DecorationOn, nil)
		assert.True(t, w.IsDecorated())

		require.NoError(t, w.Write([]string{"<error>boom</error>"}, false))
		assert.Contains(t, buf.String(), "\x1b[")
		assert.Equal(t, "boom", ansi.Strip(buf.String()))
	})

	t.Run("auto on a buffer", func(t *testing.T) {
		var buf bytes.Buffer
		w := New(&buf, VerbosityNormal, DecorationAuto, nil)
		assert.False(t, w.IsDecorated())
	})

	t.Run("set decorated after construction", func(t *testing.T) {
		var buf bytes.Buffer
		w := New(&buf, VerbosityNormal, DecorationOff, nil)
		w.SetDecorated(true)
		assert.True(t, w.IsDecorated())
		assert.True(t, w.Formatter().IsDecorated())
	})
}

func TestWriterKeepsFormatterStyles(t *testing.T) {
	var buf bytes.Buffer
	f := formatter.New(false, formatter.WithStyles(formatter.StyleTable{"path": {Foreground: "cyan"}}))
	w := New(&buf, VerbosityNormal, DecorationOff, f)

	assert.Same(t, f, w.Formatter())
	assert.True(t, w.Formatter().HasStyle("path"))
	assert.Same(t, &buf, w.Out())
}

func TestWriterVerbosityAccessors(t *testing.T) {
	w := New(&bytes.Buffer{}, VerbosityQuiet, DecorationOff, nil)
	assert.True(t, w.IsQuiet())
	assert.False(t, w.IsVerbose())

	w.SetVerbosity(VerbosityVeryVerbose)
	assert.Equal(t, VerbosityVeryVerbose, w.Verbosity())
	assert.True(t, w.IsVerbose())
	assert.True(t, w.IsVeryVerbose())
	assert.False(t, w.IsDebug())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, stderrors.New("disk full") }

func TestWriterWriteError(t *testing.T) {
	w := New(failingWriter{}, VerbosityNormal, DecorationOff, nil)

	err := w.Write([]string{"x"}, false)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriterOnFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	w := New(file, VerbosityNormal, DecorationAuto, nil)
	assert.False(t, w.IsDecorated(), "files are not terminals")

	require.NoError(t, w.Writeln([]string{"<comment>saved</comment>"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "saved\n", string(data))
}
