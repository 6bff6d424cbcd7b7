package isa

import (
	"fmt"
	"slices"
	"strings"
)

// OpcodeCount is the number of encodable opcodes.
const OpcodeCount = 16

// Entry is a mnemonic of the opcode table.
type Entry struct {
	Mnemonic string
	Category Category
}

// Table maps the 4-bit opcode to its entry. Opcodes without entry are
// not recognized.
type Table struct {
	name    string
	entries [OpcodeCount]*Entry
}

// NewTable returns an empty table.
func NewTable(name string) *Table {
	return &Table{name: name}
}

// Name returns the name of the table.
func (t *Table) Name() string {
	return t.name
}

// Set registers the entry for the opcode, replacing an existing one.
func (t *Table) Set(opcode uint8, entry Entry) error {
	if opcode >= OpcodeCount {
		return fmt.Errorf("opcode %d exceeds 4 bits", opcode)
	}
	if entry.Mnemonic == "" {
		return fmt.Errorf("opcode %d has an empty mnemonic", opcode)
	}
	if _, ok := categoryNames[entry.Category]; !ok {
		return fmt.Errorf("opcode %d has an invalid category %d", opcode, entry.Category)
	}
	e := entry
	t.entries[opcode] = &e
	return nil
}

// Remove deletes the entry for the opcode.
func (t *Table) Remove(opcode uint8) {
	if opcode < OpcodeCount {
		t.entries[opcode] = nil
	}
}

// Lookup returns the entry for the opcode or an *UnrecognizedOpcodeError.
func (t *Table) Lookup(opcode uint8) (Entry, error) {
	if opcode >= OpcodeCount || t.entries[opcode] == nil {
		return Entry{}, &UnrecognizedOpcodeError{Opcode: opcode}
	}
	return *t.entries[opcode], nil
}

// Clone returns a copy of the table with a new name.
func (t *Table) Clone(name string) *Table {
	clone := &Table{name: name}
	for i, entry := range t.entries {
		if entry != nil {
			e := *entry
			clone.entries[i] = &e
		}
	}
	return clone
}

// Opcodes returns all opcodes that have an entry, in ascending order.
func (t *Table) Opcodes() []uint8 {
	var opcodes []uint8
	for i, entry := range t.entries {
		if entry != nil {
			opcodes = append(opcodes, uint8(i))
		}
	}
	return opcodes
}

// Names of the built-in revisions.
const (
	BelleRevision    = "belle"
	EmulatorRevision = "emulator"
	LegacyRevision   = "legacy"
)

// DefaultRevision is the revision used when none is configured.
const DefaultRevision = BelleRevision

type opcodeDefinition struct {
	opcode   uint8
	mnemonic string
	category Category
}

// common holds the opcodes that all revisions agree on.
var common = []opcodeDefinition{
	{0b0000, "hlt", Halt},
	{0b0001, "add", TwoRegister},
	{0b0100, "div", TwoRegister},
	{0b0101, "ret", Return},
	{0b0110, "ld", Load},
	{0b0111, "st", Store},
	{0b1001, "jz", Jump},
	{0b1010, "cmp", TwoRegister},
	{0b1011, "mul", TwoRegister},
	{0b1101, "int", LiteralOnly},
	{0b1110, "mov", TwoRegister},
}

var revisions = map[string][]opcodeDefinition{
	BelleRevision: {
		{0b0010, "jo", Jump},
		{0b0011, "pop", Stack},
		{0b1000, "jmp", Jump},
		{0b1100, "push", Stack},
		{0b1111, "sr", SubroutineLabel},
	},
	EmulatorRevision: {
		{0b0010, "jo", Jump},
		{0b0011, "pop", Stack},
		{0b1000, "jmp", Jump},
		{0b1100, "push", Stack},
		{0b1111, "nop", NoOp},
	},
	LegacyRevision: {
		{0b0010, "jge", Jump},
		{0b0011, "cl", LiteralOnly},
		{0b1000, "swp", TwoRegister},
		{0b1100, "set", LiteralOnly},
		{0b1111, "sr", SubroutineLabel},
	},
}

// Revisions returns the names of the built-in revisions.
func Revisions() []string {
	names := make([]string, 0, len(revisions))
	for name := range revisions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Revision returns a new table for the named built-in revision.
func Revision(name string) (*Table, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultRevision
	}
	specific, ok := revisions[name]
	if !ok {
		return nil, fmt.Errorf("unsupported ISA revision '%s', valid revisions: %s",
			name, strings.Join(Revisions(), ", "))
	}

	t := NewTable(name)
	for _, definitions := range [][]opcodeDefinition{common, specific} {
		for _, def := range definitions {
			t.entries[def.opcode] = &Entry{Mnemonic: def.mnemonic, Category: def.category}
		}
	}
	return t, nil
}
