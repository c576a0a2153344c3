// internal/checkapp/app.go
package checkapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	pb "gopkg.in/cheggaaa/pb.v1"

	"github.com/cynthiateeters/fisher-yates/internal/checkcli"
	"github.com/cynthiateeters/fisher-yates/internal/cmdutil"
	"github.com/cynthiateeters/fisher-yates/internal/trials"
	"github.com/cynthiateeters/fisher-yates/internal/version"
	"github.com/cynthiateeters/fisher-yates/internal/writers"

	// Register the table/tsv/json report writers.
	_ "github.com/cynthiateeters/fisher-yates/internal/output"
)

func RunContext(parent context.Context, argv []string, _ io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := checkcli.NewFlagSet("shufflecheck")
	fs.SetOutput(io.Discard)

	opts, err := checkcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "shufflecheck version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	log := cmdutil.Logger(stderr, opts.Quiet)

	cfg := trials.Config{
		Trials:    opts.Trials,
		Threads:   opts.Threads,
		Seed:      opts.Seed,
		Algorithm: trials.Algorithm(opts.Algorithm),
	}

	var bar *pb.ProgressBar
	if showProgress(opts, stderr) {
		bar = pb.New(opts.Trials)
		bar.Output = stderr
		bar.Start()
		cfg.OnTrial = func() { bar.Increment() }
	}

	base := checkcli.BaseItems(opts.Items)
	log.Info().
		Str("algorithm", opts.Algorithm).
		Int("trials", opts.Trials).
		Int("items", opts.Items).
		Msg("verifying shuffle distribution")

	rep, runErr := trials.Run(parent, cfg, base)
	if bar != nil {
		bar.Finish()
	}

	canceled := errors.Is(runErr, context.Canceled)
	if runErr != nil && !canceled {
		_, _ = fmt.Fprintln(stderr, runErr)
		return 3
	}
	if canceled {
		// Partial tallies stay valid; report what completed.
		log.Warn().Int64("completed", rep.Trials).Msg("interrupted; reporting completed trials only")
	}

	if err := writers.WriteReport(opts.Output, outw, rep); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	log.Info().
		Int64("trials", rep.Trials).
		Int("distinct", len(rep.Counts)).
		Float64("stddev", rep.StdDev).
		Float64("ideal_stddev", rep.IdealStdDev).
		Msg("done")

	if code := flushCode(outw, stderr); code != 0 {
		return code
	}
	if canceled {
		return 130
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, nil, stdout, stderr)
}

// showProgress: --progress forces the bar, --quiet kills it, otherwise only
// on a real terminal.
func showProgress(opts checkcli.Options, stderr io.Writer) bool {
	if opts.Quiet {
		return false
	}
	if opts.Progress {
		return true
	}
	f, ok := stderr.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func flushCode(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
