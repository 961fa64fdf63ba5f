// Package logging builds the zerolog loggers dirsort components write their
// diagnostics to. Nothing in here touches the global zerolog logger; callers
// get a logger back and pass it down explicitly.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Options configures SetupLogger
type Options struct {
	// Verbosity selects the console level: 0 warn, 1 info, 2 debug, 3+ trace
	Verbosity int

	// Console receives human readable output. Defaults to os.Stderr.
	Console io.Writer

	// NoColor disables ANSI colors on the console writer
	NoColor bool

	// LogDir is where the per-run log file is created. Empty disables the file sink.
	LogDir string

	// Now is used to name the log file. Defaults to time.Now.
	Now func() time.Time
}

// Setup is the outcome of SetupLogger
type Setup struct {
	Logger  zerolog.Logger
	LogFile string
	file    *os.File
}

// Close flushes and closes the log file, if one was opened
func (s *Setup) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// LevelForVerbosity maps the -v count to a zerolog level
func LevelForVerbosity(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger configures dual output: a console writer filtered by verbosity
// and a timestamped log file that always records info and above.
func SetupLogger(opts Options) *Setup {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	consoleLevel := LevelForVerbosity(opts.Verbosity)
	fileLevel := zerolog.InfoLevel
	if consoleLevel < fileLevel {
		fileLevel = consoleLevel
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}
	writers := []io.Writer{
		&zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: consoleWriter},
			Level:  consoleLevel,
		},
	}

	setup := &Setup{}
	var fileErr error
	if opts.LogDir != "" {
		logPath := filepath.Join(opts.LogDir, now().Format("dirsort_20060102_150405.log"))
		file, err := setupLogFile(logPath)
		if err != nil {
			fileErr = err
		} else {
			setup.file = file
			setup.LogFile = logPath
			writers = append(writers, &zerolog.FilteredLevelWriter{
				Writer: zerolog.LevelWriterAdapter{Writer: file},
				Level:  fileLevel,
			})
		}
	}

	minLevel := consoleLevel
	if setup.file != nil && fileLevel < minLevel {
		minLevel = fileLevel
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(minLevel).
		With().Timestamp().Logger()
	if opts.Verbosity >= 2 {
		logger = logger.With().Caller().Logger()
	}

	if fileErr != nil {
		logger.Warn().Err(fileErr).Str("dir", opts.LogDir).Msg("Failed to create log file, logging to console only")
	}
	logger.Debug().Int("verbosity", opts.Verbosity).Str("logFile", setup.LogFile).Msg("Logger initialized")

	setup.Logger = logger
	return setup
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// GetLogger returns base with a component field attached
func GetLogger(base zerolog.Logger, name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}

// OrNop dereferences l, or returns a disabled logger when l is nil.
// Components take an optional *zerolog.Logger so callers that want no
// diagnostics can simply leave it out.
func OrNop(l *zerolog.Logger) zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return *l
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
