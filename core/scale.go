package core

import "math"

// ModelScale computes the geometric scale of a wind-tunnel model that
// matches the rig's target Mach and Reynolds numbers at the given
// operating point.
//
// The chain follows the station numbering of the rig: the compressor
// inlet (station 1) is fed at p01 = MaxPressure / P0Ratio, which puts the
// compressor exit (station 2) exactly at the rig's maximum stagnation
// pressure; the working section (station 4) sees that pressure less a
// fixed duct loss. Because station 2 is pinned, the pressure ratio
// cancels out of the chain and the scale depends on T0Ratio alone.
// Isentropic relations at the target Mach number give the static state,
// and the target Reynolds number fixes the model length.
//
// The second return value is false when the implied scale falls outside
// [0,1] — a model that would have to be larger than the prototype (or is
// degenerate) cannot be built, so the point is infeasible.
//
// Admissibility of the operating point (P0Ratio at or above
// c.MinPressureRatio) is caller-enforced; this function does not
// re-check it.
func ModelScale(p OperatingPoint, c RigConstants) (float64, bool) {
	// Stagnation state at the working section.
	p02 := c.MaxPressure
	p04 := p02 * stagnationLossFactor
	t04 := c.InletStagnationTemp * p.T0Ratio

	// Static state at the target Mach number (isentropic).
	machTerm := 1 + (c.Gamma-1)/2*c.TargetMach*c.TargetMach
	t4 := t04 / machTerm
	p4 := p04 / math.Pow(machTerm, c.Gamma/(c.Gamma-1))

	rho4 := p4 / (c.GasConstant * t4)
	c4 := c.TargetMach * math.Sqrt(c.Gamma*c.GasConstant*t4)

	// Model length that hits the target Reynolds number at this density
	// and speed.
	lModel := c.TargetReynolds * c.Viscosity / (rho4 * c4)
	scale := lModel / c.PrototypeLength

	// The negated form also rejects NaN (negative T0Ratio inputs).
	if !(scale >= 0 && scale <= 1) {
		return 0, false
	}
	return scale, true
}
