/*
calculator.go - Staking reward formulas

PURPOSE:
  Maps the six form inputs to one reward. Stateless and deterministic:
  the same inputs always give the same result, and nothing here fails.
  Any input that would make the formula meaningless yields exactly zero.

GUARDS (checked in order, first failure returns zero):
  - staked amount, profit share or market cap not strictly positive
  - monthly rate not strictly positive (FormulaRateScaled only)
  - any of those values NaN or infinite
  - start not strictly before finish
  - derived stake days not strictly positive
  - reward or an intermediate outside the float64 range

ARITHMETIC:
  All products run on decimal.Decimal and the reward is divided once, at
  the end, keeping generic.QuotientDigits significant digits. Rounding an
  intermediate quotient first would erase tiny profit-share ratios.
  Stake days come from the millisecond difference of the two instants
  divided by 86,400,000, with no rounding, so a 12-hour window is 0.5 days.
  A reward too large for a float64 is treated like a failed guard.

EXAMPLE:
  window := generic.NewStakeDuration(
      generic.NewTimePoint(2024, time.January, 1),
      generic.NewTimePoint(2024, time.January, 31),
  )
  reward := rewards.CalculateReward(10000, window, 10.5, 101591068, 3753480698)
  // ≈ 28.42

SEE ALSO:
  - types.go: Inputs, Breakdown, Formula
  - generic/period.go: StakeDuration.Days
*/
package rewards

import (
	"github.com/shopspring/decimal"
	"github.com/warp/epoch-rewards/generic"
)

// percent and rateScaledDivisor (100 × 30) turn a monthly percent into a daily fraction.
var (
	percent           = decimal.NewFromInt(100)
	rateScaledDivisor = decimal.NewFromInt(100 * 30)
)

// =============================================================================
// FLOAT API
// =============================================================================

// CalculateReward returns the rate-scaled reward for a stake.
func CalculateReward(stakedAmount float64, duration generic.StakeDuration, monthlyRewardRatePercent, profitShareAmount, marketCapAmount float64) float64 {
	return RateScaled(Inputs{
		StakedAmount:             stakedAmount,
		Duration:                 duration,
		MonthlyRewardRatePercent: monthlyRewardRatePercent,
		ProfitShareAmount:        profitShareAmount,
		MarketCapAmount:          marketCapAmount,
	}).Float64()
}

// CalculateRewardDurationScaled returns the legacy reward that pays the
// profit-share factor once per staked day. Prefer CalculateReward.
func CalculateRewardDurationScaled(stakedAmount float64, duration generic.StakeDuration, profitShareAmount, marketCapAmount float64) float64 {
	return DurationScaled(Inputs{
		StakedAmount:      stakedAmount,
		Duration:          duration,
		ProfitShareAmount: profitShareAmount,
		MarketCapAmount:   marketCapAmount,
	}).Float64()
}

// =============================================================================
// BREAKDOWN API
// =============================================================================

// Calculate runs the named formula. An unknown formula yields a zero breakdown.
func Calculate(formula Formula, in Inputs) Breakdown {
	switch formula {
	case FormulaRateScaled:
		return RateScaled(in)
	case FormulaDurationScaled:
		return DurationScaled(in)
	}
	return zeroBreakdown(formula, in)
}

// RateScaled computes staked × (rate/100) × (profitShare/marketCap) × days / 30.
func RateScaled(in Inputs) Breakdown {
	out := zeroBreakdown(FormulaRateScaled, in)
	if !amountsValid(in) || !positive(in.MonthlyRewardRatePercent) {
		return out
	}
	days, ok := stakeDays(in.Duration)
	if !ok {
		return out
	}

	rate := decimal.NewFromFloat(in.MonthlyRewardRatePercent)
	profitShare := decimal.NewFromFloat(in.ProfitShareAmount)
	marketCap := decimal.NewFromFloat(in.MarketCapAmount)

	reward := generic.NewAmount(in.StakedAmount, in.currency()).
		MulDiv(rate.Mul(profitShare).Mul(days), rateScaledDivisor.Mul(marketCap))
	factor := generic.Quotient(profitShare, marketCap)
	adjusted := generic.Quotient(rate.Mul(profitShare), percent.Mul(marketCap))
	if !fitsFloat64(reward.Value, factor, adjusted) {
		return out
	}

	out.StakeDurationDays = days
	out.ProfitShareFactor = factor
	out.AdjustedRate = adjusted
	out.Reward = reward
	return out
}

// DurationScaled computes staked × (profitShare/marketCap) × days.
func DurationScaled(in Inputs) Breakdown {
	out := zeroBreakdown(FormulaDurationScaled, in)
	if !amountsValid(in) {
		return out
	}
	days, ok := stakeDays(in.Duration)
	if !ok {
		return out
	}

	profitShare := decimal.NewFromFloat(in.ProfitShareAmount)
	marketCap := decimal.NewFromFloat(in.MarketCapAmount)

	reward := generic.NewAmount(in.StakedAmount, in.currency()).
		MulDiv(profitShare.Mul(days), marketCap)
	factor := generic.Quotient(profitShare, marketCap)
	if !fitsFloat64(reward.Value, factor) {
		return out
	}

	out.StakeDurationDays = days
	out.ProfitShareFactor = factor
	out.Reward = reward
	return out
}

// =============================================================================
// GUARDS
// =============================================================================

func zeroBreakdown(formula Formula, in Inputs) Breakdown {
	return Breakdown{
		Formula:           formula,
		StakeDurationDays: decimal.Zero,
		ProfitShareFactor: decimal.Zero,
		AdjustedRate:      decimal.Zero,
		Reward:            generic.ZeroAmount(in.currency()),
	}
}

func positive(f float64) bool {
	return generic.IsFinite(f) && f > 0
}

// amountsValid checks the guards shared by every formula. Market cap must be
// checked here, before any division.
func amountsValid(in Inputs) bool {
	return positive(in.StakedAmount) &&
		positive(in.ProfitShareAmount) &&
		positive(in.MarketCapAmount)
}

func stakeDays(d generic.StakeDuration) (decimal.Decimal, bool) {
	if !d.IsValid() {
		return decimal.Zero, false
	}
	days := d.Days()
	if !days.IsPositive() {
		return decimal.Zero, false
	}
	return days, true
}

// fitsFloat64 reports whether every value converts to a finite float64.
// Results are published as floats, so anything larger fails like a guard.
func fitsFloat64(values ...decimal.Decimal) bool {
	for _, v := range values {
		if !generic.IsFinite(v.InexactFloat64()) {
			return false
		}
	}
	return true
}
