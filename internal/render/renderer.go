// Package render turns decoded BELLE instructions into assembly lines.
package render

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/retroenv/bdump/internal/isa"
	"github.com/retroenv/bdump/internal/options"
)

// ErrMalformedAddressing is returned for an addressing type outside of the
// defined types. It can not occur for decoded words.
var ErrMalformedAddressing = errors.New("malformed addressing type")

// Sub-selectors of the destination field.
const (
	haltStart         = 1
	haltStackPointer  = 2
	haltBasePointer   = 3
	jumpIndirectFlag  = 0b100
	storeIndirectFlag = 0b100
)

var haltDirectives = map[uint8]string{
	haltStart:        ".start",
	haltStackPointer: ".ssp",
	haltBasePointer:  ".sbp",
}

// ReturnOutsideSubroutine is the verbose annotation of a return that is not
// preceded by a subroutine label.
const ReturnOutsideSubroutine = "return outside of subroutine"

// Renderer renders decoded instructions using an opcode table.
type Renderer struct {
	table    *isa.Table
	settings options.Disassembler
}

// New returns a new renderer. The settings are only read.
func New(table *isa.Table, settings options.Disassembler) *Renderer {
	return &Renderer{
		table:    table,
		settings: settings,
	}
}

// Table returns the opcode table of the renderer.
func (r *Renderer) Table() *isa.Table {
	return r.table
}

// Render renders the instruction and advances the state. On error the state
// is not modified.
func (r *Renderer) Render(state *State, ins isa.Instruction) (Line, error) {
	entry, err := r.table.Lookup(ins.Opcode)
	if err != nil {
		return Line{}, err
	}
	if !ins.Addressing.Valid() {
		return Line{}, fmt.Errorf("%w: %d", ErrMalformedAddressing, ins.Addressing)
	}

	line := Line{
		Number:   state.LineNumber,
		Entry:    entry,
		Mnemonic: entry.Mnemonic,
	}
	inSubroutine := state.InSubroutine

	switch entry.Category {
	case isa.TwoRegister:
		err = renderTwoRegister(&line, ins)
	case isa.SubroutineLabel:
		renderSubroutineLabel(&line, ins)
		inSubroutine = true
	case isa.Jump:
		renderJump(&line, ins)
	case isa.Return:
		if !state.InSubroutine && r.settings.Verbosity > 0 {
			line.Comment = ReturnOutsideSubroutine
		}
		inSubroutine = false
	case isa.LiteralOnly:
		line.Operands = []Operand{unsignedLiteral(ins.Source)}
	case isa.Halt:
		renderHalt(&line, ins)
	case isa.Load:
		line.Operands = []Operand{
			register(ins.Destination),
			address(ins.Wide()),
		}
	case isa.Store:
		renderStore(&line, ins)
	case isa.Stack:
		renderStack(&line, ins)
	case isa.NoOp:
	default:
		err = fmt.Errorf("unsupported operand category %s of '%s'", entry.Category, entry.Mnemonic)
	}
	if err != nil {
		return Line{}, err
	}

	line.Indent = state.InSubroutine &&
		entry.Category != isa.SubroutineLabel && entry.Category != isa.Halt &&
		!r.settings.DebugTrace && !r.settings.ShowBinary

	state.InSubroutine = inSubroutine
	state.LineNumber++
	return line, nil
}

// renderTwoRegister renders a destination register and a second operand
// that depends on the addressing type.
func renderTwoRegister(line *Line, ins isa.Instruction) error {
	var second Operand

	switch ins.Addressing {
	case isa.Register:
		second = register(ins.Source)
	case isa.Literal:
		second = signedLiteral(ins.Source)
	case isa.MemoryDirect:
		// strip the memory flag
		second = Operand{Kind: AddressOperand, Text: "&$" + strconv.Itoa(int(ins.Source&0x7F))}
	case isa.RegisterIndirect:
		second = registerPointer(ins.Source)
	default:
		return fmt.Errorf("%w: %d", ErrMalformedAddressing, ins.Addressing)
	}

	line.Operands = []Operand{register(ins.Destination), second}
	return nil
}

func renderSubroutineLabel(line *Line, ins isa.Instruction) {
	label, _ := ToWords(int(ins.Source)) // source is at most 255
	line.Mnemonic = ""
	line.Label = label
}

// renderJump renders a register pointer target when bit 11 of the word is
// set, otherwise an 11-bit target address.
func renderJump(line *Line, ins isa.Instruction) {
	if ins.Destination&jumpIndirectFlag != 0 {
		line.Operands = []Operand{registerPointer(ins.Source)}
		return
	}
	line.Operands = []Operand{address(ins.Packed())}
}

func renderHalt(line *Line, ins isa.Instruction) {
	directive, ok := haltDirectives[ins.Destination]
	if !ok {
		return // plain halt, also for unknown selectors
	}
	line.Mnemonic = directive
	line.Directive = true
	line.Operands = []Operand{address(ins.Wide())}
}

// renderStore unpacks the 12 bits after the opcode. The register indirect
// form holds the target register in bits 9-7, the direct form the address
// in bits 11-3. Both keep the stored register in bits 2-0.
func renderStore(line *Line, ins isa.Instruction) {
	packed := ins.Packed()
	stored := register(uint8(packed & 0b111))

	if ins.Destination&storeIndirectFlag != 0 {
		target := uint8(packed>>7) & 0b111
		line.Operands = []Operand{
			{Kind: RegisterOperand, Text: "&r" + strconv.Itoa(int(target))},
			stored,
		}
		return
	}

	line.Operands = []Operand{address(packed >> 3), stored}
}

func renderStack(line *Line, ins isa.Instruction) {
	switch ins.Addressing {
	case isa.Register:
		line.Operands = []Operand{register(ins.Source)}
	case isa.Literal:
		line.Operands = []Operand{signedLiteral(ins.Source)}
	default:
		line.Operands = []Operand{unsignedLiteral(ins.Source)}
	}
}

// register renders a register reference, only the low 3 bits select a register.
func register(value uint8) Operand {
	return Operand{Kind: RegisterOperand, Text: "%r" + strconv.Itoa(int(value&0b111))}
}

func registerPointer(value uint8) Operand {
	return Operand{Kind: RegisterOperand, Text: "&r" + strconv.Itoa(int(value&0b111))}
}

func address(value uint16) Operand {
	return Operand{Kind: AddressOperand, Text: "$" + strconv.Itoa(int(value))}
}

// signedLiteral renders a literal with the sign in bit 7 and the magnitude
// in bits 6-0.
func signedLiteral(value uint8) Operand {
	magnitude := int(value & 0x7F)
	if value&0x80 != 0 {
		return Operand{Kind: LiteralOperand, Text: "#-" + strconv.Itoa(magnitude)}
	}
	return Operand{Kind: LiteralOperand, Text: "#" + strconv.Itoa(magnitude)}
}

func unsignedLiteral(value uint8) Operand {
	return Operand{Kind: LiteralOperand, Text: "#" + strconv.Itoa(int(value))}
}
