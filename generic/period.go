package generic

import "github.com/shopspring/decimal"

// =============================================================================
// STAKE DURATION - The staking window
// =============================================================================

// StakeDuration is the window a stake is committed for.
// A reward is only earned when Finish is strictly after Start.
type StakeDuration struct {
	Start  TimePoint
	Finish TimePoint
}

// NewStakeDuration builds a duration from two calendar dates.
func NewStakeDuration(start, finish TimePoint) StakeDuration {
	return StakeDuration{Start: start, Finish: finish}
}

// IsValid reports whether Finish is strictly after Start.
func (d StakeDuration) IsValid() bool {
	return d.Finish.After(d.Start)
}

// Days returns the length of the window in days, fractional and unrounded.
// The difference is taken in whole milliseconds, so sub-millisecond parts
// of either instant are ignored. Inverted windows yield a negative value.
func (d StakeDuration) Days() decimal.Decimal {
	millis := d.Finish.UnixMilli() - d.Start.UnixMilli()
	return decimal.NewFromInt(millis).Div(decimal.NewFromInt(MillisPerDay))
}

func (d StakeDuration) String() string {
	return "[" + d.Start.String() + ", " + d.Finish.String() + ")"
}
