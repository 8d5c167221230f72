package core

// stagnationLossFactor models the fixed 1.5% stagnation-pressure loss in
// the ducting between the compressor exit (station 2) and the working
// section (station 4).
const stagnationLossFactor = 0.985

// RigConstants bundles the fixed gas-dynamics parameters of a sizing run.
// A value is constructed once at startup and passed around read-only; the
// calculator never mutates it.
type RigConstants struct {
	// Gamma is the specific heat ratio of the working gas.
	Gamma float64
	// GasConstant is the specific gas constant in J/(kg·K).
	GasConstant float64
	// Viscosity is the dynamic viscosity in Pa·s.
	Viscosity float64
	// PrototypeLength is the full-size prototype chord length in metres.
	PrototypeLength float64
	// TargetMach is the design Mach number in the working section.
	TargetMach float64
	// TargetReynolds is the design Reynolds number the model must match.
	TargetReynolds float64
	// MaxPressure is the maximum stagnation pressure the rig can supply,
	// in pascals. Station 2 is pinned at this value.
	MaxPressure float64
	// InletStagnationTemp is the inlet stagnation temperature in kelvin.
	InletStagnationTemp float64
	// MinPressureRatio is the lowest stagnation pressure ratio at which
	// the compressor stage operates on this rig. Points below it are
	// excluded before scoring.
	MinPressureRatio float64
}

// DefaultRigConstants returns the parameters of the reference air rig.
func DefaultRigConstants() RigConstants {
	return RigConstants{
		Gamma:               1.4,
		GasConstant:         287.0,
		Viscosity:           1.83e-5,
		PrototypeLength:     0.2,
		TargetMach:          0.55,
		TargetReynolds:      3.0e6,
		MaxPressure:         250e3,
		InletStagnationTemp: 293.0,
		MinPressureRatio:    1.0686,
	}
}
