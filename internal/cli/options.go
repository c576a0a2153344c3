// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/cynthiateeters/fisher-yates/internal/output"
	"github.com/cynthiateeters/fisher-yates/internal/version"
)

// Options holds all flags for the shuffle binary.
type Options struct {
	Input   string // items file, "-" = stdin
	Seed    int64  // 0 = time-based
	Output  string // text | json
	Trace   bool   // log every swap step
	Quiet   bool
	Version bool
}

// Env carries the environment defaults (SHUFFLE_*) layered under the flags.
type Env struct {
	Seed  int64 `envconfig:"SEED" default:"0"`
	Quiet bool  `envconfig:"QUIET" default:"false"`
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: unbiased Fisher-Yates shuffle

Reads newline-delimited items from --input ("-" = stdin) and writes a
uniformly random permutation of them. The input is never reordered in place.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var env Env
	_ = envconfig.Process("shuffle", &env)

	fs.StringVar(&opt.Input, "input", "-", `items file, one per line ("-" = stdin) [-]`)
	fs.Int64Var(&opt.Seed, "seed", env.Seed, "random seed (0 = time-based) [0]")
	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: text | json [text]")
	fs.BoolVar(&opt.Trace, "trace", false, "log every swap step to stderr [false]")
	fs.BoolVar(&opt.Quiet, "quiet", env.Quiet, "suppress diagnostics on stderr [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	if opt.Output != output.FormatText && opt.Output != output.FormatJSON {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
