package engine

// Policy collects the product-tuned constants the engine interprets. The
// defaults below are the shipped behavior; they are configuration, not law,
// and are overridable via the config file.
type Policy struct {
	// BlockThreshold is the completion rate below which the gate refuses the
	// next week.
	BlockThreshold float64 `mapstructure:"block_threshold"`
	// WarnThreshold is the completion rate below which the gate passes but
	// warns and holds volume flat.
	WarnThreshold float64 `mapstructure:"warn_threshold"`
	// ConsistencyPenalty is deducted from 100 per workout done materially off
	// its planned day.
	ConsistencyPenalty int `mapstructure:"consistency_penalty"`
	// DayMismatchTolerance is how many days a workout may slip from plan
	// before it counts against the consistency score.
	DayMismatchTolerance int `mapstructure:"day_mismatch_tolerance"`
	// RestScaleCap limits how far rest periods stretch when scaling a
	// session up, regardless of the overall duration scale.
	RestScaleCap float64 `mapstructure:"rest_scale_cap"`
	// StableBand is the completion-rate band (absolute) within which two
	// consecutive weeks are considered stable.
	StableBand float64 `mapstructure:"stable_band"`
	// ConcerningRPE / ConcerningRating: a single workout at or above this RPE
	// with a rating at or below this value flags the week as concerning.
	ConcerningRPE    int `mapstructure:"concerning_rpe"`
	ConcerningRating int `mapstructure:"concerning_rating"`
}

// DefaultPolicy returns the shipped policy constants.
func DefaultPolicy() Policy {
	return Policy{
		BlockThreshold:       0.60,
		WarnThreshold:        0.80,
		ConsistencyPenalty:   10,
		DayMismatchTolerance: 1,
		RestScaleCap:         1.2,
		StableBand:           0.05,
		ConcerningRPE:        9,
		ConcerningRating:     2,
	}
}
