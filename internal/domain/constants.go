package domain

// =============================================================================
// UNIT CAPACITY CONSTANTS
// =============================================================================

const (
	// UnitPatientCapacity is the hard ceiling on simultaneously assigned patients.
	UnitPatientCapacity = 20

	// MaxIVChemoPerNurse is the per-certified-nurse cap on IV chemo patients.
	MaxIVChemoPerNurse = 2

	// IdealRatio is the patients-per-nurse count considered ideal (1:3).
	IdealRatio = 3

	// MaxRatio is the patients-per-nurse count considered maximum (1:4).
	MaxRatio = 4
)

// =============================================================================
// WEIGHT DEFAULTS
// =============================================================================

const (
	// DefaultContinuityWeight rewards reassigning the prior-shift nurse.
	DefaultContinuityWeight = 0.30

	// DefaultSkillWeight rewards skill-acuity fit and vesicant/new-admit handling.
	DefaultSkillWeight = 0.40

	// DefaultGeographyWeight rewards pod co-location.
	DefaultGeographyWeight = 0.20

	// DefaultWorkloadBalanceWeight is reserved for workload-balance scoring;
	// current objective expresses balance via the excess penalty rather than
	// a weighted score term, and Score does not read this weight.
	DefaultWorkloadBalanceWeight = 0.10
)

// =============================================================================
// GREEDY FALLBACK CONSTANTS
// =============================================================================

const (
	// FallbackWorkloadPenalty is the unexplained magic constant from the
	// original source; preserved as-is for compatibility (see spec open
	// questions).
	FallbackWorkloadPenalty = 0.3
)

// =============================================================================
// MILP SCALING CONSTANTS
// =============================================================================

const (
	// ScoreScale converts floating-point preference scores into integer-ish
	// coefficients before they reach the LP/MILP solver. Applied consistently
	// to every coefficient in a single program, including the excess penalty.
	ScoreScale = 1000.0

	// ExcessPenaltyPerPatient is the per-excess-patient objective penalty,
	// encouraging 1:3 ratios while still permitting 1:4 when necessary.
	ExcessPenaltyPerPatient = 5.0

	// ExcessCeiling is the upper end of the excess auxiliary variable's
	// [0,4] domain. buildProblem adds no row for it: with max_patients in
	// the documented 1-4 range and an ideal ratio of 3, excess is at most 1.
	ExcessCeiling = 4.0
)
