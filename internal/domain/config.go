package domain

import "dario.cat/mergo"

// ResolveWeights merges an optional per-request config onto the documented
// defaults. Any field left nil in cfg falls back to its default; any field
// present with a non-zero value overrides it, and a field set to 0 keeps
// the default. Uses mergo rather than a hand-rolled chain of
// `if cfg.X != nil` checks, since this is exactly the defaulting job mergo
// is built for.
func ResolveWeights(cfg *ConfigInput) (Weights, error) {
	weights := DefaultWeights()
	if cfg == nil {
		return weights, nil
	}

	// Only fields the caller set to a non-zero value are non-zero here;
	// mergo leaves the rest of `weights` alone, which is the defaulting
	// behavior the spec calls for. A request that wants to zero out a
	// weight entirely must do so knowing mergo treats 0 as "not set" -
	// documented as an open-question resolution, not a bug.
	override := Weights{}
	if cfg.ContinuityWeight != nil {
		override.Continuity = *cfg.ContinuityWeight
	}
	if cfg.SkillWeight != nil {
		override.Skill = *cfg.SkillWeight
	}
	if cfg.GeographyWeight != nil {
		override.Geography = *cfg.GeographyWeight
	}
	if cfg.WorkloadBalanceWeight != nil {
		override.WorkloadBalance = *cfg.WorkloadBalanceWeight
	}

	if err := mergo.Merge(&weights, override, mergo.WithOverride); err != nil {
		return Weights{}, err
	}
	return weights, nil
}
