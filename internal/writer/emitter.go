// Package writer emits rendered instruction lines.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/retroenv/bdump/internal/isa"
	"github.com/retroenv/bdump/internal/options"
	"github.com/retroenv/bdump/internal/render"
)

const indentation = "   "

// LineWriter receives the rendered lines in input order.
type LineWriter interface {
	WriteLine(line render.Line, ins isa.Instruction) error
}

// Emitter writes rendered lines to an output with optional line numbers,
// color markup and binary trace comments.
type Emitter struct {
	logger   hclog.Logger
	settings options.Disassembler
	writer   io.Writer
	palette  palette
}

// New creates a new emitter.
func New(logger hclog.Logger, writer io.Writer, settings options.Disassembler) *Emitter {
	return &Emitter{
		logger:   logger,
		settings: settings,
		writer:   writer,
		palette:  newPalette(settings.UseColor),
	}
}

// WriteLine writes the trace output for the instruction, followed by the line.
func (e *Emitter) WriteLine(line render.Line, ins isa.Instruction) error {
	if e.settings.DebugTrace {
		e.logger.Debug("decoded instruction",
			"line", line.Number,
			"word", ins.Word.Binary(),
			"opcode", ins.Opcode,
			"mnemonic", line.Entry.Mnemonic,
			"category", line.Entry.Category.String(),
			"destination", ins.Destination,
			"source", ins.Source,
			"addressing", ins.Addressing.String(),
		)
	}

	if e.settings.ShowBinary {
		if err := e.writeBinary(ins); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(e.writer, e.Format(line)); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// Format returns the line as it is written to the output, without line break.
func (e *Emitter) Format(line render.Line) string {
	var sb strings.Builder

	if e.settings.ShowLineNumbers {
		sb.WriteString(e.palette.lineNumber.Sprintf("line %3d:", line.Number))
		sb.WriteByte(' ')
	}
	if line.Indent {
		sb.WriteString(indentation)
	}

	if line.Label != "" {
		sb.WriteString(e.palette.label.Sprint(line.Label + ":"))
	}
	if line.Directive {
		sb.WriteString(e.palette.directive.Sprint(line.Mnemonic))
	} else if line.Mnemonic != "" {
		sb.WriteString(e.palette.mnemonic.Sprint(line.Mnemonic))
	}

	for i, op := range line.Operands {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(e.palette.operand(op.Kind).Sprint(op.Text))
	}

	if line.Comment != "" {
		sb.WriteByte(' ')
		sb.WriteString(e.palette.comment.Sprint("; " + line.Comment))
	}
	return sb.String()
}

// writeBinary writes the raw word and its destination and source fields
// as comment lines.
func (e *Emitter) writeBinary(ins isa.Instruction) error {
	word := e.palette.comment.Sprintf("; %s", ins.Word.Binary())
	if _, err := fmt.Fprintln(e.writer, word); err != nil {
		return fmt.Errorf("writing binary comment: %w", err)
	}

	fields := e.palette.comment.Sprintf("; dst %03b src %08b", ins.Destination, ins.Source)
	if _, err := fmt.Fprintln(e.writer, fields); err != nil {
		return fmt.Errorf("writing field comment: %w", err)
	}
	return nil
}
