package isa

import (
	"fmt"
	"strings"
)

// Category is the operand shape of a mnemonic. It selects the operand
// rendering procedure.
type Category uint8

// Operand categories.
const (
	TwoRegister     Category = iota + 1 // register destination plus an addressing dependent operand
	SubroutineLabel                     // subroutine declaration
	Jump                                // conditional or unconditional jump
	Return                              // subroutine return
	LiteralOnly                         // interrupt and flag literals
	Halt                                // halt and the start, stack and base pointer directives
	Load                                // register from wide address
	Store                               // wide address or register pointer from register
	Stack                               // push and pop
	NoOp                                // no operands
)

var categoryNames = map[Category]string{
	TwoRegister:     "two_register",
	SubroutineLabel: "subroutine",
	Jump:            "jump",
	Return:          "return",
	LiteralOnly:     "literal",
	Halt:            "halt",
	Load:            "load",
	Store:           "store",
	Stack:           "stack",
	NoOp:            "nop",
}

// String returns the name of the category as used in ISA table files.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// ParseCategory returns the category for the given name.
func ParseCategory(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for category, categoryName := range categoryNames {
		if categoryName == name {
			return category, nil
		}
	}
	return 0, fmt.Errorf("unsupported operand category '%s'", name)
}
