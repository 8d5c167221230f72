package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// columnNames gives the fixed positional meaning of the three columns in
// an operating-map file.
var columnNames = [3]string{"mdot_ref", "T0_ratio", "P0_ratio"}

// LoadOperatingMap reads a compressor operating map from r.
//
// The format is the one the rig's data-acquisition chain exports: one
// operating point per line, three whitespace- or tab-separated numeric
// columns (mdot_ref, T0_ratio, P0_ratio), no header row. Blank lines and
// lines whose first non-blank character is '#' are skipped.
//
// Input order is preserved. Any malformed line is an error carrying its
// line number; nothing is recovered or skipped beyond comments.
func LoadOperatingMap(r io.Reader) (OperatingMap, error) {
	var points OperatingMap

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("LoadOperatingMap: line %d: want 3 columns, got %d", lineNo, len(fields))
		}

		var vals [3]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("LoadOperatingMap: line %d: bad %s value %q: %w", lineNo, columnNames[i], f, err)
			}
			vals[i] = v
		}

		points = append(points, OperatingPoint{
			MdotRef: vals[0],
			T0Ratio: vals[1],
			P0Ratio: vals[2],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("LoadOperatingMap: read failed: %w", err)
	}

	return points, nil
}
