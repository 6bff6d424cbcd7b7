// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/retroenv/bdump/internal/isa"
	"github.com/retroenv/bdump/internal/loader"
	"github.com/retroenv/bdump/internal/options"
	"github.com/retroenv/bdump/internal/render"
	"github.com/retroenv/bdump/internal/writer"
	"github.com/sourcegraph/conc/iter"
)

// Result summarizes a disassembled input.
type Result struct {
	Table        string // name of the opcode table used
	Instructions int    // number of written instruction lines
	TrailingByte bool   // the input had an odd length
}

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger hclog.Logger
	loader *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger hclog.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute runs the complete disassembly pipeline for the input file of the
// options and writes the assembly to the writer.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler,
	output io.Writer) (*Result, error) {

	table, err := NewTable(disasmOpts)
	if err != nil {
		return nil, fmt.Errorf("creating opcode table: %w", err)
	}

	stream, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading words: %w", err)
	}
	if stream.TrailingByte {
		p.logger.Warn("Input has an odd length, ignoring the last byte", "file", opts.Input)
	}

	p.logger.Debug("Disassembling",
		"file", opts.Input,
		"words", len(stream.Words),
		"table", table.Name(),
		"opcodes", len(table.Opcodes()),
	)

	renderer := render.New(table, disasmOpts)
	emitter := writer.New(p.logger, output, disasmOpts)

	count, err := p.Disassemble(ctx, renderer, stream.Words, emitter)
	result := &Result{
		Table:        renderer.Table().Name(),
		Instructions: count,
		TrailingByte: stream.TrailingByte,
	}
	if err != nil {
		return result, fmt.Errorf("disassembling: %w", err)
	}
	return result, nil
}

// Disassemble decodes all words in parallel, then renders and writes them
// sequentially in input order. It stops at the first word that can not be
// rendered, nothing is written for it or any following word. The number of
// written lines is returned.
func (p *Pipeline) Disassemble(ctx context.Context, renderer *render.Renderer, words []isa.Word,
	lineWriter writer.LineWriter) (int, error) {

	instructions := iter.Map(words, func(w *isa.Word) isa.Instruction {
		return isa.Decode(*w)
	})

	state := render.NewState()
	for i, ins := range instructions {
		if err := ctx.Err(); err != nil {
			return i, fmt.Errorf("disassembly interrupted: %w", err)
		}

		line, err := renderer.Render(state, ins)
		if err != nil {
			return i, fmt.Errorf("rendering word %d (%s): %w", i, ins.Word.Binary(), err)
		}

		if err := lineWriter.WriteLine(line, ins); err != nil {
			return i, fmt.Errorf("writing line %d: %w", line.Number, err)
		}
	}
	return len(instructions), nil
}

// NewTable returns the opcode table for the settings. A table file takes
// precedence over the revision.
func NewTable(disasmOpts options.Disassembler) (*isa.Table, error) {
	if disasmOpts.TableFile != "" {
		table, err := isa.LoadTableFile(disasmOpts.TableFile)
		if err != nil {
			return nil, fmt.Errorf("loading table file: %w", err)
		}
		return table, nil
	}
	return isa.Revision(disasmOpts.Revision)
}
