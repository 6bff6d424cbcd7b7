package isa

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// tableFile is the YAML layout of a custom opcode table.
//
//	name: my-isa
//	base: belle
//	opcodes:
//	  0b1111: {mnemonic: nop, category: nop}
//	remove: [0b0011]
type tableFile struct {
	Name    string            `yaml:"name"`
	Base    string            `yaml:"base"`
	Opcodes map[any]entryFile `yaml:"opcodes"`
	Remove  []any             `yaml:"remove"`
}

type entryFile struct {
	Mnemonic string `yaml:"mnemonic"`
	Category string `yaml:"category"`
}

// LoadTableFile loads a custom opcode table from a YAML file.
func LoadTableFile(fileName string) (*Table, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("opening ISA table file '%s': %w", fileName, err)
	}
	defer func() { _ = file.Close() }()

	t, err := LoadTable(file)
	if err != nil {
		return nil, fmt.Errorf("loading ISA table file '%s': %w", fileName, err)
	}
	return t, nil
}

// LoadTable loads a custom opcode table from YAML. Without a base revision
// the table starts empty.
func LoadTable(reader io.Reader) (*Table, error) {
	var tf tableFile
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(&tf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}

	name := tf.Name
	if name == "" {
		name = "custom"
	}

	t := NewTable(name)
	if tf.Base != "" {
		base, err := Revision(tf.Base)
		if err != nil {
			return nil, err
		}
		t = base.Clone(name)
	}

	for _, key := range tf.Remove {
		opcode, err := parseOpcodeKey(key)
		if err != nil {
			return nil, err
		}
		t.Remove(opcode)
	}

	// sort the keys to report errors deterministically
	keys := make([]uint8, 0, len(tf.Opcodes))
	entries := make(map[uint8]entryFile, len(tf.Opcodes))
	for key, entry := range tf.Opcodes {
		opcode, err := parseOpcodeKey(key)
		if err != nil {
			return nil, err
		}
		if _, ok := entries[opcode]; ok {
			return nil, fmt.Errorf("opcode %d defined multiple times", opcode)
		}
		keys = append(keys, opcode)
		entries[opcode] = entry
	}
	slices.Sort(keys)

	for _, opcode := range keys {
		entry := entries[opcode]
		category, err := ParseCategory(entry.Category)
		if err != nil {
			return nil, fmt.Errorf("opcode %d: %w", opcode, err)
		}
		if err := t.Set(opcode, Entry{Mnemonic: entry.Mnemonic, Category: category}); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func parseOpcodeKey(key any) (uint8, error) {
	opcode, err := cast.ToUint8E(key)
	if err != nil {
		return 0, fmt.Errorf("parsing opcode '%v': %w", key, err)
	}
	if opcode >= OpcodeCount {
		return 0, fmt.Errorf("opcode %d exceeds 4 bits", opcode)
	}
	return opcode, nil
}
