// Package loader handles word stream file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/bdump/internal/isa"
)

// Stream is a loaded sequence of instruction words.
type Stream struct {
	Words []isa.Word

	// TrailingByte is set when the input had an odd length. The last
	// byte is not part of any word and is discarded.
	TrailingByte bool
}

// Loader handles loading word stream files from disk.
type Loader struct{}

// New creates a new word stream loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the file and returns its big-endian words.
func (l *Loader) Load(name string) (*Stream, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", name, err)
	}
	defer func() { _ = file.Close() }()

	stream, err := l.Read(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", name, err)
	}
	return stream, nil
}

// Read reads all words from the reader. An empty input results in an
// empty stream.
func (l *Loader) Read(reader io.Reader) (*Stream, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}

	stream := &Stream{
		Words:        make([]isa.Word, 0, len(data)/isa.WordSize),
		TrailingByte: len(data)%isa.WordSize != 0,
	}
	for i := 0; i+1 < len(data); i += isa.WordSize {
		stream.Words = append(stream.Words, isa.Word(data[i])<<8|isa.Word(data[i+1]))
	}
	return stream, nil
}
