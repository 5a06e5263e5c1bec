package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/edna/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configures the global logger based on verbosity level
// It sets up dual output to both console and a log file
func SetupLogger(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}

	writers := []io.Writer{consoleWriter}

	logFile := getLogFilePath()
	logFileHandle, err := setupLogFile(logFile)
	if err == nil {
		writers = append(writers, logFileHandle)
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	if err != nil {
		log.Warn().Err(err).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// getLogFilePath returns the path to the log file
// It respects XDG_STATE_HOME if set, otherwise uses ~/.local/state/edna/
func getLogFilePath() string {
	p, err := paths.New()
	if err != nil {
		return paths.LogFileName
	}
	return p.LogFilePath()
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

// LogCommand logs a command execution with its arguments
func LogCommand(logger zerolog.Logger, cmd string, args []string) {
	logger.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
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
