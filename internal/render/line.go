package render

import (
	"strings"

	"github.com/retroenv/bdump/internal/isa"
)

// OperandKind classifies an operand for color markup.
type OperandKind int

// Operand kinds.
const (
	RegisterOperand OperandKind = iota
	LiteralOperand
	AddressOperand
)

// Operand is a single rendered operand.
type Operand struct {
	Kind OperandKind
	Text string
}

// Line is one rendered instruction.
type Line struct {
	Number    int       // line number of the instruction, starting at 1
	Entry     isa.Entry // opcode table entry of the instruction
	Indent    bool      // the instruction is part of a subroutine body
	Label     string    // subroutine label, rendered as "label:"
	Mnemonic  string    // mnemonic or directive, empty for labels
	Directive bool      // the mnemonic is an assembler directive
	Operands  []Operand
	Comment   string
}

// Text returns the line without line number, indentation and color markup.
func (l Line) Text() string {
	var sb strings.Builder
	if l.Label != "" {
		sb.WriteString(l.Label)
		sb.WriteByte(':')
	}
	sb.WriteString(l.Mnemonic)
	for i, op := range l.Operands {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(op.Text)
	}
	if l.Comment != "" {
		sb.WriteString(" ; ")
		sb.WriteString(l.Comment)
	}
	return sb.String()
}
