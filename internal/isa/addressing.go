package isa

import "fmt"

// AddressingType describes how the source payload of an instruction is interpreted.
type AddressingType uint8

// Addressing types in the order of their encoding values.
const (
	Register         AddressingType = iota // source is a register
	Literal                                // source is a signed literal
	MemoryDirect                           // source is a memory pointer
	RegisterIndirect                       // source is a register pointer
)

// Flag bits of an instruction word that select the addressing type.
const (
	immediateFlag        = 1 << 8
	memoryFlag           = 1 << 7
	registerIndirectFlag = 1 << 6
)

var addressingNames = map[AddressingType]string{
	Register:         "register",
	Literal:          "literal",
	MemoryDirect:     "memory",
	RegisterIndirect: "register indirect",
}

// String returns the name of the addressing type.
func (a AddressingType) String() string {
	if name, ok := addressingNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AddressingType(%d)", uint8(a))
}

// Valid returns whether the addressing type is one of the defined types.
func (a AddressingType) Valid() bool {
	return a <= RegisterIndirect
}

// addressingOf derives the addressing type from the flag bits of a word.
// The immediate flag wins over the memory flag which wins over the
// register indirect flag.
func addressingOf(w Word) AddressingType {
	switch {
	case w&immediateFlag != 0:
		return Literal
	case w&memoryFlag != 0:
		return MemoryDirect
	case w&registerIndirectFlag != 0:
		return RegisterIndirect
	default:
		return Register
	}
}
