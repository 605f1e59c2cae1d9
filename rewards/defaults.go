package rewards

import (
	"time"

	"github.com/warp/epoch-rewards/generic"
)

// Form defaults. The amounts are in PHP.
const (
	DefaultStakedAmount             = 10000
	DefaultMonthlyRewardRatePercent = 10.5
	DefaultProfitShareAmount        = 101591068
	DefaultMarketCapAmount          = 3753480698
	DefaultHorizonDays              = 30
)

// DefaultInputs seeds a fresh form. The window starts on now's UTC date and
// ends on the UTC date DefaultHorizonDays later.
func DefaultInputs(now time.Time) Inputs {
	start := generic.DateOf(now)
	return Inputs{
		StakedAmount:             DefaultStakedAmount,
		Duration:                 generic.NewStakeDuration(start, start.AddDays(DefaultHorizonDays)),
		MonthlyRewardRatePercent: DefaultMonthlyRewardRatePercent,
		ProfitShareAmount:        DefaultProfitShareAmount,
		MarketCapAmount:          DefaultMarketCapAmount,
		Currency:                 generic.CurrencyPHP,
	}
}

// FormatReward renders a reward with two fixed decimals.
// Non-finite values render as "0.00".
func FormatReward(reward float64) string {
	return generic.DecimalFromFloat(reward).StringFixed(2)
}
