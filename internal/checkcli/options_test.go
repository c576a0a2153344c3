// internal/checkcli/options_test.go
package checkcli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t)
	if o.Trials != 100000 || o.Items != 3 || o.Algorithm != "fisher-yates" || o.Output != "table" {
		t.Errorf("unexpected defaults %+v", o)
	}
}

func TestAllFlags(t *testing.T) {
	o := mustParse(t,
		"--trials", "5000",
		"--items", "4",
		"--threads", "2",
		"--seed", "99",
		"--algorithm", "naive",
		"--output", "json",
		"--progress",
	)
	if o.Trials != 5000 || o.Items != 4 || o.Threads != 2 || o.Seed != 99 {
		t.Errorf("bad parse %+v", o)
	}
	if o.Algorithm != "naive" || o.Output != "json" || !o.Progress {
		t.Errorf("bad parse %+v", o)
	}
}

func TestErrorZeroTrials(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--trials", "0"}); err == nil {
		t.Fatal("expected error for --trials 0")
	}
}

func TestErrorItemsOutOfRange(t *testing.T) {
	for _, n := range []string{"1", "9", "-3"} {
		if _, err := ParseArgs(newFS(), []string{"--items", n}); err == nil {
			t.Fatalf("expected error for --items %s", n)
		}
	}
}

func TestErrorUnknownAlgorithm(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--algorithm", "bogo"}); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}

func TestErrorUnknownOutput(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--output", "yaml"}); err == nil {
		t.Fatal("expected error for unknown output")
	}
}

func TestBaseItems(t *testing.T) {
	got := BaseItems(3)
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("len %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("SHUFFLECHECK_TRIALS", "777")
	o := mustParse(t)
	if o.Trials != 777 {
		t.Errorf("env default ignored, trials=%d", o.Trials)
	}
	o = mustParse(t, "--trials", "888")
	if o.Trials != 888 {
		t.Errorf("flag should win over env, trials=%d", o.Trials)
	}
}
