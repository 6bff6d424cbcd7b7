package config

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation settings of the log file.
const (
	logFileMaxSize    = 10 // megabytes
	logFileMaxBackups = 3
)

// CreateLogger creates a logger with appropriate settings. The logger
// writes to stderr and, if a log file name is given, to a rotated log file.
// The returned closer closes the log file.
func CreateLogger(debug, quiet bool, logFile string) (hclog.Logger, io.Closer) {
	return createLogger(os.Stderr, debug, quiet, logFile)
}

func createLogger(output io.Writer, debug, quiet bool, logFile string) (hclog.Logger, io.Closer) {
	level := hclog.Info
	if debug {
		level = hclog.Debug
	} else if quiet {
		level = hclog.Error
	}

	var closer io.Closer = nopCloser{}
	if logFile != "" {
		rotated := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    logFileMaxSize,
			MaxBackups: logFileMaxBackups,
		}
		output = io.MultiWriter(output, rotated)
		closer = rotated
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "bdump",
		Output: output,
		Level:  level,
	})
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
