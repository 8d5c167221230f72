package core

// OperatingPoint is one row of the compressor operating map.
type OperatingPoint struct {
	// MdotRef is the reference mass-flow rate in kg/s.
	MdotRef float64
	// T0Ratio is the stagnation temperature ratio across the stage.
	T0Ratio float64
	// P0Ratio is the stagnation pressure ratio p02/p01 across the stage.
	P0Ratio float64
}

// OperatingMap is the tabulated operating envelope, in input order.
type OperatingMap []OperatingPoint

// ScoredOperatingPoint pairs an operating point with the geometric model
// scale derived for it. Instances are only created for points whose scale
// landed inside [0,1]; infeasible points are dropped, never clamped.
type ScoredOperatingPoint struct {
	OperatingPoint

	// Scale is the model-to-prototype length ratio, in (0,1].
	Scale float64
}
