// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/retroenv/bdump/internal/options"
	"github.com/retroenv/bdump/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
)

// ProcessFile disassembles the input file of the options to the output file
// or to stdout if no output file is set.
func ProcessFile(ctx context.Context, logger hclog.Logger, opts options.Program,
	disasmOptions options.Disassembler) error {

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}

	result, err := pipeline.New(logger).Execute(ctx, opts, disasmOptions, writer)
	if closeErr := writer.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("closing output file: %w", closeErr)
	}
	if err != nil {
		return err
	}

	if !opts.Quiet && opts.Output != "" {
		logger.Info("Disassembled",
			"file", opts.Input,
			"output", opts.Output,
			"instructions", result.Instructions,
			"table", result.Table,
		)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".asm"
}

func createWriter(opts options.Program) (io.WriteCloser, error) {
	if opts.Output == "" {
		return nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger hclog.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("bdump - BELLE disassembler", "version", buildinfo.Version(version, commit, date))
}

// nopCloser wraps an io.Writer to add a no-op Close method
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
