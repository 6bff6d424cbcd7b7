// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input   string `mapstructure:"input" yaml:"input"`
	Output  string `mapstructure:"output" yaml:"output"`
	Config  string `mapstructure:"config" yaml:"config"`
	Table   string `mapstructure:"table" yaml:"table"`
	Batch   string `mapstructure:"batch" yaml:"batch"`
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
}

// Flags contains behavior options.
type Flags struct {
	Revision string `mapstructure:"revision" yaml:"revision"`
	Debug    bool   `mapstructure:"debug" yaml:"debug"`
	Quiet    bool   `mapstructure:"quiet" yaml:"quiet"`
	Watch    bool   `mapstructure:"watch" yaml:"watch"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	LineNumbers bool `mapstructure:"line_numbers" yaml:"line_numbers"`
	Colors      bool `mapstructure:"colors" yaml:"colors"`
	Binary      bool `mapstructure:"binary" yaml:"binary"`
	Verbosity   int  `mapstructure:"verbosity" yaml:"verbosity"`
}

// Program options of the disassembler.
type Program struct {
	Parameters  `mapstructure:",squash" yaml:",inline"`
	Flags       `mapstructure:",squash" yaml:",inline"`
	OutputFlags `mapstructure:",squash" yaml:",inline"`
}

// Disassembler defines the settings that control decoding and rendering.
// The disassembler only reads them.
type Disassembler struct {
	Revision  string // name of the built-in ISA revision
	TableFile string // optional YAML opcode table, overrides Revision

	ShowLineNumbers bool
	UseColor        bool
	Verbosity       int
	DebugTrace      bool
	ShowBinary      bool
}

// NewDisassembler returns the disassembler settings for the program options.
func NewDisassembler(opts Program) Disassembler {
	return Disassembler{
		Revision:  opts.Revision,
		TableFile: opts.Table,

		ShowLineNumbers: opts.LineNumbers,
		UseColor:        opts.Colors,
		Verbosity:       opts.Verbosity,
		DebugTrace:      opts.Debug,
		ShowBinary:      opts.Binary,
	}
}
