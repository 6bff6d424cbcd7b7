// Package main implements the main entry point for the BELLE disassembler
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/retroenv/bdump/internal/cli"
	"github.com/retroenv/bdump/internal/config"
	"github.com/retroenv/bdump/internal/fileprocessor"
	"github.com/tebeka/atexit"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	atexit.Register(stop)

	opts, disasmOptions, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		logger, _ := config.CreateLogger(opts.Debug, opts.Quiet, "")
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			if usageErr.Error() != "" {
				logger.Error(usageErr.Error())
			}
			usageErr.ShowUsage()
		} else {
			logger.Error("Invalid options", "error", err)
		}
		atexit.Exit(1)
	}

	logger, logCloser := config.CreateLogger(opts.Debug, opts.Quiet, opts.LogFile)
	atexit.Register(func() { _ = logCloser.Close() })
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	if opts.Watch {
		if err := fileprocessor.Watch(ctx, logger, opts, disasmOptions); err != nil {
			fatal(logger, err)
		}
		atexit.Exit(0)
	}

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		fatal(logger, err)
	}

	for _, file := range files {
		opts.Input = file
		if opts.Batch != "" {
			opts.Output = fileprocessor.GenerateOutputFilename(file)
		}

		if err := fileprocessor.ProcessFile(ctx, logger, opts, disasmOptions); err != nil {
			// Handle context cancellation (Ctrl+C) gracefully
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				atexit.Exit(1)
			}
			fatal(logger, err)
		}
	}
	atexit.Exit(0)
}

// fatal logs the error and exits after running the registered exit handlers.
func fatal(logger hclog.Logger, err error) {
	logger.Error("Disassembling failed", "error", err)
	atexit.Exit(1)
}
