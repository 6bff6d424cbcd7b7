package writer

import (
	"github.com/fatih/color"
	"github.com/retroenv/bdump/internal/render"
)

type palette struct {
	lineNumber *color.Color
	mnemonic   *color.Color
	directive  *color.Color
	label      *color.Color
	register   *color.Color
	literal    *color.Color
	address    *color.Color
	comment    *color.Color
}

// newPalette returns the color set of the emitter. Enabled colors are also
// written to files and pipes, independent of the terminal detection.
func newPalette(enabled bool) palette {
	p := palette{
		lineNumber: color.New(color.FgRed),
		mnemonic:   color.New(color.FgBlue),
		directive:  color.New(color.FgGreen),
		label:      color.New(color.FgMagenta),
		register:   color.New(color.FgGreen),
		literal:    color.New(color.FgYellow),
		address:    color.New(color.FgCyan),
		comment:    color.New(color.FgHiBlack),
	}

	for _, c := range []*color.Color{
		p.lineNumber, p.mnemonic, p.directive, p.label,
		p.register, p.literal, p.address, p.comment,
	} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) operand(kind render.OperandKind) *color.Color {
	switch kind {
	case render.RegisterOperand:
		return p.register
	case render.LiteralOperand:
		return p.literal
	default:
		return p.address
	}
}
