// Package cli handles command line interface logic
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/bdump/internal/config"
	"github.com/retroenv/bdump/internal/options"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const usage = "bdump [options] <file to disassemble>"

// ParseFlags parses the command line arguments without the program name and
// returns program and disassembler options. Flag values override the config
// file and environment variables.
func ParseFlags(args []string) (options.Program, options.Disassembler, error) {
	var (
		opts       options.Program
		configFile string
		parsed     bool
		loadErr    error
	)

	cmd := &cobra.Command{
		Use:           usage,
		Short:         "bdump disassembles BELLE machine code",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, loadErr = config.Load(configFile, cmd.Flags())
			if loadErr != nil {
				return loadErr
			}
			if len(args) > 0 {
				opts.Input = args[0]
			}
			parsed = true
			return nil
		},
	}
	if args == nil {
		args = []string{} // cobra falls back to os.Args for nil
	}
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	flags := cmd.Flags()
	readOptionFlags(flags, &configFile)

	if err := cmd.Execute(); err != nil {
		if loadErr != nil {
			return opts, options.Disassembler{}, fmt.Errorf("loading configuration: %w", err)
		}
		return opts, options.Disassembler{}, &UsageError{flags: flags, msg: err.Error()}
	}
	if !parsed {
		// help was requested
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if opts.Input == "" && opts.Batch == "" {
		return opts, options.Disassembler{}, &UsageError{flags: flags, msg: "no file to disassemble given"}
	}
	if opts.Watch && opts.Batch != "" {
		return opts, options.Disassembler{}, &UsageError{flags: flags, msg: "watch mode can not be combined with batch processing"}
	}

	return opts, options.NewDisassembler(opts), nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *pflag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and the flag defaults to stdout.
func (e *UsageError) ShowUsage() {
	e.writeUsage(os.Stdout)
}

func (e *UsageError) writeUsage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "usage: %s\n\n", usage)
	if e.flags != nil {
		_, _ = fmt.Fprint(w, e.flags.FlagUsages())
	}
	_, _ = fmt.Fprintln(w)
}

func readOptionFlags(flags *pflag.FlagSet, configFile *string) {
	flags.StringP("output", "o", "", "name of the output .asm file, printed on console if no name given")
	flags.StringP("revision", "r", "", "ISA revision of the input (belle/emulator/legacy)")
	flags.StringP("table", "t", "", "YAML opcode table file, overrides the revision")
	flags.StringVar(configFile, "config", "", "YAML config file to read options from")
	flags.String("batch", "", "process a batch of given path and file mask and automatically .asm file naming, for example *.bin")
	flags.String("log-file", "", "write the log additionally to a rotated log file")

	flags.BoolP("line-num", "l", false, "prefix every instruction with its line number")
	flags.BoolP("colors", "c", false, "output color markup")
	flags.CountP("verbose", "v", "increase the verbosity of comments, can be repeated")
	flags.BoolP("binary", "b", false, "output the binary of every word as comments")
	flags.BoolP("debug", "d", false, "enable debugging options for extended logging and the decode trace")
	flags.BoolP("watch", "w", false, "disassemble the input again whenever it changes")
	flags.BoolP("quiet", "q", false, "perform operations quietly")
}
