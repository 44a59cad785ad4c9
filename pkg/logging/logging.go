package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileName is the log file, relative to the XDG state directory
const LogFileName = "streamprinter/streamprinter.log"

var (
	fileMu  sync.Mutex
	logFile *os.File
)

// SetupLogger configures the global logger for a -v count. Diagnostics go to
// stderr, never to printed output, with a copy appended to the log file.
// Calling it again reuses the open log file, or swaps it when the state
// directory changed.
func SetupLogger(verbosity int) {
	zerolog.SetGlobalLevel(LevelForVerbosity(verbosity))

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}}

	path := LogFilePath()
	file, fileErr := openLogFile(path)
	if file != nil {
		writers = append(writers, file)
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", path).Msg("Logger initialized")
}

// LevelForVerbosity maps a -v count to a zerolog level
func LevelForVerbosity(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogFilePath returns where SetupLogger writes, under xdg.StateHome
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, filepath.FromSlash(LogFileName))
}

// openLogFile returns the open handle for path, opening it (and closing the
// previous one) when needed
func openLogFile(path string) (*os.File, error) {
	fileMu.Lock()
	defer fileMu.Unlock()

	if logFile != nil && logFile.Name() == path {
		return logFile, nil
	}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logFile = file
	return file, nil
}

// Close releases the log file. The global logger falls back to the console
// until SetupLogger runs again.
func Close() error {
	fileMu.Lock()
	defer fileMu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen, NoColor: true})
	return err
}

// LogCommand records a command invocation at debug level
func LogCommand(cmd string, args []string) {
	log.Debug().Str("command", cmd).Strs("args", args).Msg("Executing command")
}
