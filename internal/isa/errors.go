package isa

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedOpcode is returned for an opcode that has no table entry.
var ErrUnrecognizedOpcode = errors.New("opcode not recognized")

// UnrecognizedOpcodeError names the opcode that has no table entry.
type UnrecognizedOpcodeError struct {
	Opcode uint8
}

func (e *UnrecognizedOpcodeError) Error() string {
	return fmt.Sprintf("%s: %04b (%d)", ErrUnrecognizedOpcode, e.Opcode, e.Opcode)
}

// Unwrap returns ErrUnrecognizedOpcode.
func (e *UnrecognizedOpcodeError) Unwrap() error {
	return ErrUnrecognizedOpcode
}
