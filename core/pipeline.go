package core

// Result is the outcome of a full sizing run over one operating map.
type Result struct {
	// Valid holds the scored operating points that survived both the
	// pressure-ratio floor and the [0,1] scale check, in input order.
	Valid []ScoredOperatingPoint

	// Optimal is the valid point with the greatest scale. Only
	// meaningful when Found is true.
	Optimal ScoredOperatingPoint

	// Found is false when no operating point yields a feasible model.
	Found bool
}

// FilterAdmissible returns the operating points at or above the rig's
// minimum pressure ratio, in input order.
func FilterAdmissible(points OperatingMap, c RigConstants) OperatingMap {
	var out OperatingMap
	for _, p := range points {
		if p.P0Ratio >= c.MinPressureRatio {
			out = append(out, p)
		}
	}
	return out
}

// ScorePoints applies the scale calculator to every candidate and keeps
// the ones with a feasible scale, in input order. Candidates must already
// satisfy the pressure-ratio floor (see ModelScale).
func ScorePoints(candidates OperatingMap, c RigConstants) []ScoredOperatingPoint {
	var scored []ScoredOperatingPoint
	for _, p := range candidates {
		scale, ok := ModelScale(p, c)
		if !ok {
			continue
		}
		scored = append(scored, ScoredOperatingPoint{OperatingPoint: p, Scale: scale})
	}
	return scored
}

// SelectOptimal returns the scored point with the greatest scale. The
// comparison is strict, so of several points sharing the maximum the
// earliest in input order wins. The second return value is false for an
// empty slice.
func SelectOptimal(scored []ScoredOperatingPoint) (ScoredOperatingPoint, bool) {
	if len(scored) == 0 {
		return ScoredOperatingPoint{}, false
	}
	best := scored[0]
	for _, s := range scored[1:] {
		if s.Scale > best.Scale {
			best = s
		}
	}
	return best, true
}

// RunPipeline runs filter → score → select over a full operating map.
func RunPipeline(points OperatingMap, c RigConstants) Result {
	valid := ScorePoints(FilterAdmissible(points, c), c)
	optimal, found := SelectOptimal(valid)
	return Result{
		Valid:   valid,
		Optimal: optimal,
		Found:   found,
	}
}
