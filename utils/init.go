package utils

import (
	"flag"
	"fmt"
	"strings"
)

type options struct {
	noColorize bool
	verbose    bool
}

var opts = options{}

type optInterface struct{}

// Opts exposes the option configuration of the library.
func Opts() optInterface {
	return optInterface{}
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}

func (optInterface) Verbose() bool {
	return opts.verbose
}

// OnVerbose runs the given thunk only when verbose output is enabled.
func (optInterface) OnVerbose(do func()) {
	if opts.verbose {
		do()
	}
}

// SetNoColorize disables pretty printer colorization programmatically.
// Useful for tests and for embedders that render to non-terminals.
func (optInterface) SetNoColorize(b bool) {
	opts.noColorize = b
}

// FlagSetup registers the options of the library with the standard flag
// package. Embedding binaries call it before flag.Parse.
func FlagSetup() {
	flag.BoolVar(&opts.noColorize, "no-colorize", false, "Disable pretty printer colorization")
	flag.BoolVar(&opts.verbose, "verbose", false, "Print additional progress information")
}

// CanColorize guards a colorization function behind the no-colorize option.
func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}
