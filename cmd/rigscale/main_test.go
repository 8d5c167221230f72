package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/turbomachlab/rigscale/internal/logging"
)

func writeMap(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestRun_EndToEnd(t *testing.T) {
	// The hottest admissible row (T0_ratio = 1.150) yields scale ≈ 0.635;
	// the first row sits below the pressure floor and is filtered out.
	input := writeMap(t,
		"# mdot_ref\tT0_ratio\tP0_ratio\n"+
			"15.20\t1.120\t1.0500\n"+
			"16.10\t1.150\t1.1200\n"+
			"17.35\t1.050\t1.2100\n")
	plotPath := filepath.Join(t.TempDir(), "map.png")

	var out bytes.Buffer
	if err := run(context.Background(), &out, logging.Noop(), input, plotPath, false); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	want := "Maximum Scale: 0.635\n" +
		"Operating Point:\n" +
		"• mdot_ref = 16.100 kg/s\n" +
		"• P0_ratio = 1.1200\n"
	if got := out.String(); got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}

	if info, err := os.Stat(plotPath); err != nil {
		t.Errorf("expected plot at %s: %v", plotPath, err)
	} else if info.Size() == 0 {
		t.Errorf("plot file is empty")
	}
}

func TestRun_Deterministic(t *testing.T) {
	input := writeMap(t,
		"15.20\t1.120\t1.1500\n"+
			"16.10\t1.150\t1.1200\n"+
			"17.35\t1.050\t1.2100\n")

	var first, second bytes.Buffer
	if err := run(context.Background(), &first, logging.Noop(), input, "", true); err != nil {
		t.Fatalf("first run returned error: %v", err)
	}
	if err := run(context.Background(), &second, logging.Noop(), input, "", true); err != nil {
		t.Fatalf("second run returned error: %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("runs disagree:\nfirst:\n%s\nsecond:\n%s", first.String(), second.String())
	}
}

func TestRun_NoValidSolutions(t *testing.T) {
	// Every row sits below the minimum admissible pressure ratio.
	input := writeMap(t,
		"15.20\t1.120\t1.0100\n"+
			"16.10\t1.150\t1.0500\n")
	plotPath := filepath.Join(t.TempDir(), "map.png")

	var out bytes.Buffer
	if err := run(context.Background(), &out, logging.Noop(), input, plotPath, false); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	if got, want := out.String(), "No valid solutions found!\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if _, err := os.Stat(plotPath); err == nil {
		t.Errorf("plot was written despite having no solution")
	}
}

func TestRun_MissingInputFile(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), &out, logging.Noop(), filepath.Join(t.TempDir(), "absent.txt"), "", true)
	if err == nil {
		t.Fatalf("expected error for missing input file")
	}
	if out.Len() != 0 {
		t.Errorf("result lines written despite the failure: %q", out.String())
	}
}

func TestRun_MalformedInputFile(t *testing.T) {
	input := writeMap(t, "15.20\tnot-a-number\t1.1200\n")

	var out bytes.Buffer
	err := run(context.Background(), &out, logging.Noop(), input, "", true)
	if err == nil {
		t.Fatalf("expected error for malformed input file")
	}
}
