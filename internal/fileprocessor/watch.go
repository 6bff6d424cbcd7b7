package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
	"github.com/retroenv/bdump/internal/options"
)

// Watch processes the input file and processes it again whenever it is
// written or created, until the context is cancelled. Disassembly errors
// are logged and do not end the watch.
func Watch(ctx context.Context, logger hclog.Logger, opts options.Program,
	disasmOptions options.Disassembler) error {

	return watch(ctx, logger, opts, func() error {
		return ProcessFile(ctx, logger, opts, disasmOptions)
	})
}

func watch(ctx context.Context, logger hclog.Logger, opts options.Program, process func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// editors often replace files, the directory watch sees the new file
	input := filepath.Clean(opts.Input)
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("watching %s: %w", input, err)
	}

	run := func() {
		if err := process(); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Disassembling failed", "file", input, "error", err)
		}
	}
	run()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != input {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create {
				logger.Debug("Input changed", "file", input, "op", event.Op.String())
				run()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher error", "error", err)
		}
	}
}
