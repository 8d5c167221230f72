package core

import (
	"strings"
	"testing"
)

func TestLoadOperatingMap_ParsesTable(t *testing.T) {
	input := "# Compressor operating map\n" +
		"# mdot_ref\tT0_ratio\tP0_ratio\n" +
		"15.20\t1.120\t1.0500\n" +
		"16.10\t1.150\t1.1200\n" +
		"\n" +
		"17.35\t1.180\t1.2100\n"

	points, err := LoadOperatingMap(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadOperatingMap returned error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 operating points, got %d", len(points))
	}

	first := points[0]
	if first.MdotRef != 15.20 || first.T0Ratio != 1.120 || first.P0Ratio != 1.05 {
		t.Errorf("first point = %+v, want {15.20 1.120 1.0500}", first)
	}

	// Input order must be preserved.
	if points[1].MdotRef != 16.10 || points[2].MdotRef != 17.35 {
		t.Errorf("points out of input order: %+v", points)
	}
}

func TestLoadOperatingMap_SkipsIndentedComments(t *testing.T) {
	input := "   # leading whitespace before the marker\n15.0\t1.1\t1.2\n"

	points, err := LoadOperatingMap(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadOperatingMap returned error: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("expected 1 operating point, got %d", len(points))
	}
}

func TestLoadOperatingMap_ColumnCountError(t *testing.T) {
	input := "15.0\t1.1\t1.2\n16.0\t1.2\n"

	_, err := LoadOperatingMap(strings.NewReader(input))
	if err == nil {
		t.Fatalf("expected error for 2-column line, got nil")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the offending line", err)
	}
}

func TestLoadOperatingMap_BadNumberError(t *testing.T) {
	input := "15.0\tabc\t1.2\n"

	_, err := LoadOperatingMap(strings.NewReader(input))
	if err == nil {
		t.Fatalf("expected error for non-numeric column, got nil")
	}
	if !strings.Contains(err.Error(), "T0_ratio") {
		t.Errorf("error %q does not name the offending column", err)
	}
}

func TestLoadOperatingMap_EmptyInput(t *testing.T) {
	points, err := LoadOperatingMap(strings.NewReader("# only comments\n\n"))
	if err != nil {
		t.Fatalf("LoadOperatingMap returned error: %v", err)
	}
	if len(points) != 0 {
		t.Fatalf("expected empty map, got %d points", len(points))
	}
}
