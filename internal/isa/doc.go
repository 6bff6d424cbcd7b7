// Package isa provides the BELLE instruction set definitions used by the disassembler.
//
// # Instruction Format
//
// Every BELLE instruction is a single big-endian 16-bit word:
//
//	15  12 11   9   8   7   6  5       0
//	+-----+------+---+---+---+---------+
//	| op  | dst  | I | M | R | payload |
//	+-----+------+---+---+---+---------+
//	               \__ source: bits 7-0 __/
//
//   - op: 4-bit opcode, keys the opcode Table
//   - dst: 3-bit destination register or sub-selector
//   - I: immediate flag, the source is a literal
//   - M: memory flag, the source is a memory pointer
//   - R: register indirect flag, the source is a register pointer
//
// The source field overlaps the M and R flags. The addressing type is derived
// from the flags in the order I, M, R and defaults to a register operand. The
// derivation is the same for every opcode, only the interpretation of the
// destination and source fields differs per operand category.
//
// # Revisions
//
// The encoding evolved over several revisions of the toolchain. The package
// ships the current revision (Belle), the revision implemented by the emulator
// (Emulator) and the first disassembler revision (Legacy). Custom tables can
// be loaded from YAML files.
package isa
