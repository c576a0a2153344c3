// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	pkgerrors "github.com/pkg/errors"

	"fisher-yates-core/rng"
	"fisher-yates-core/shuffle"

	"github.com/cynthiateeters/fisher-yates/internal/cli"
	"github.com/cynthiateeters/fisher-yates/internal/cmdutil"
	"github.com/cynthiateeters/fisher-yates/internal/version"
	"github.com/cynthiateeters/fisher-yates/internal/writers"
	"github.com/cynthiateeters/fisher-yates/pkg/api"

	// Register the text/json shuffle writers.
	_ "github.com/cynthiateeters/fisher-yates/internal/output"
)

func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("shuffle")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "shuffle version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	log := cmdutil.Logger(stderr, opts.Quiet)

	items, err := readItems(stdin, opts.Input)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if parent.Err() != nil {
		return 130
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engOpts := []shuffle.Option[string]{}
	if opts.Trace {
		engOpts = append(engOpts, shuffle.WithObserver[string](
			shuffle.ObserverFunc[string](func(ev shuffle.StepEvent[string]) {
				log.Info().
					Int("index", ev.Index).
					Int("chosen", ev.Chosen).
					Bool("swapped", ev.Swapped()).
					Strs("before", ev.Before).
					Msg("step")
			}),
		))
	}

	eng := shuffle.New[string](rng.NewMath(seed), engOpts...)
	permuted, err := eng.Shuffle(items)
	if err != nil {
		// Only reachable through a faulty injected source; Math never fails here.
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	res := api.ShuffleResultV1{Seed: seed, Items: permuted}
	if err := writers.WriteShuffle(opts.Output, outw, res); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushCode(outw, stderr)
}

func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
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

// readItems loads newline-delimited items from path, or from stdin for "-".
func readItems(stdin io.Reader, path string) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "read input")
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var items []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		items = append(items, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "read input")
	}
	return items, nil
}
