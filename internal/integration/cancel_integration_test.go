// internal/integration/cancel_integration_test.go
package integration

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/cynthiateeters/fisher-yates/internal/app"
	"github.com/cynthiateeters/fisher-yates/internal/checkapp"
)

func TestCheckCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errBuf bytes.Buffer
	code := checkapp.RunContext(ctx, []string{
		"--trials", "1000000", "--seed", "1", "--output", "tsv", "--quiet",
	}, nil, &out, &errBuf)

	if code != 130 {
		t.Fatalf("want exit 130 on cancellation, got %d (err=%s)", code, errBuf.String())
	}
	// The partial report is still written and well-formed.
	if !strings.HasPrefix(out.String(), "permutation\tcount\tpercent\n") {
		t.Errorf("partial report missing: %q", out.String())
	}
}

func TestShuffleCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errBuf bytes.Buffer
	code := app.RunContext(ctx, []string{"--seed", "1", "--quiet"},
		strings.NewReader("A\nB\n"), &out, &errBuf)

	if code != 130 {
		t.Fatalf("want exit 130, got %d", code)
	}
}
