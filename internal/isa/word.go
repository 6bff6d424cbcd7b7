package isa

import "fmt"

// WordSize is the size of an instruction word in bytes.
const WordSize = 2

// Word is a raw 16-bit instruction word.
type Word uint16

// Binary returns the word as a 16 digit binary string.
func (w Word) Binary() string {
	return fmt.Sprintf("%016b", uint16(w))
}

// Instruction is the decoded form of a single instruction word.
type Instruction struct {
	Word        Word
	Opcode      uint8 // bits 15-12
	Destination uint8 // bits 11-9
	Source      uint8 // bits 7-0
	Addressing  AddressingType
}

// Decode splits a word into its fixed position fields. Every word is
// decodable, an unknown opcode is only detected by the Table lookup.
func Decode(w Word) Instruction {
	return Instruction{
		Word:        w,
		Opcode:      uint8(w >> 12),
		Destination: uint8(w>>9) & 0b111,
		Source:      uint8(w & 0xFF),
		Addressing:  addressingOf(w),
	}
}

// ImmediateBit returns the immediate flag of the instruction. It is recovered
// from the addressing type, which is exact as the immediate flag has the
// highest priority of all flags.
func (i Instruction) ImmediateBit() uint16 {
	if i.Addressing == Literal {
		return 1
	}
	return 0
}

// Packed returns the 12 bits following the opcode, rebuilt from the
// destination, the immediate flag and the source field.
func (i Instruction) Packed() uint16 {
	return uint16(i.Destination)<<9 | i.ImmediateBit()<<8 | uint16(i.Source)
}

// Wide returns the 9-bit value made from the immediate flag and the source field.
func (i Instruction) Wide() uint16 {
	return i.ImmediateBit()<<8 | uint16(i.Source)
}
