/*
scenarios.go - Named input sets for demos and checks

PURPOSE:
  A fixed catalog of calculator inputs. The API and the CLI both serve it,
  so a reviewer can see the guard behavior and the reference figures
  without typing six numbers.

AVAILABLE SCENARIOS:
  php-30-day:        Reference stake, 30-day window (≈28.42 PHP rate-scaled)
  php-quarter:       Same stake over a 90-day window
  half-day:          12-hour window, fractional days
  same-day:          Start equals finish, always zero
  inverted-window:   Finish before start, always zero
  zero-market-cap:   Market cap 0, zero instead of a division by zero

ADDING NEW SCENARIOS:
  Append to the catalog slice below. IDs must be unique.
*/
package rewards

import (
	"fmt"
	"time"

	"github.com/warp/epoch-rewards/generic"
)

type Scenario struct {
	ID          string
	Name        string
	Description string
	Inputs      Inputs
}

func referenceInputs(start, finish generic.TimePoint) Inputs {
	return Inputs{
		StakedAmount:             DefaultStakedAmount,
		Duration:                 generic.NewStakeDuration(start, finish),
		MonthlyRewardRatePercent: DefaultMonthlyRewardRatePercent,
		ProfitShareAmount:        DefaultProfitShareAmount,
		MarketCapAmount:          DefaultMarketCapAmount,
		Currency:                 generic.CurrencyPHP,
	}
}

var jan1 = generic.NewTimePoint(2024, time.January, 1)

var catalog = []Scenario{
	{
		ID:          "php-30-day",
		Name:        "30-Day Stake",
		Description: "10,000 PHP staked for 30 days at 10.5% monthly",
		Inputs:      referenceInputs(jan1, jan1.AddDays(30)),
	},
	{
		ID:          "php-quarter",
		Name:        "Quarter Stake",
		Description: "10,000 PHP staked for 90 days at 10.5% monthly",
		Inputs:      referenceInputs(jan1, jan1.AddDays(90)),
	},
	{
		ID:          "half-day",
		Name:        "Half Day",
		Description: "12-hour window, counted as 0.5 days",
		Inputs:      referenceInputs(jan1, generic.TimePoint{Time: jan1.Time.Add(12 * time.Hour)}),
	},
	{
		ID:          "same-day",
		Name:        "Same Day",
		Description: "Start equals finish, no reward",
		Inputs:      referenceInputs(jan1, jan1),
	},
	{
		ID:          "inverted-window",
		Name:        "Inverted Window",
		Description: "Finish before start, no reward",
		Inputs:      referenceInputs(generic.NewTimePoint(2024, time.January, 31), jan1),
	},
	{
		ID:          "zero-market-cap",
		Name:        "Zero Market Cap",
		Description: "Market cap of 0, no reward",
		Inputs: func() Inputs {
			in := referenceInputs(jan1, jan1.AddDays(30))
			in.MarketCapAmount = 0
			return in
		}(),
	},
}

// Scenarios returns a copy of the catalog in display order.
func Scenarios() []Scenario {
	out := make([]Scenario, len(catalog))
	copy(out, catalog)
	return out
}

// ScenarioByID looks up a scenario.
func ScenarioByID(id string) (Scenario, error) {
	for _, s := range catalog {
		if s.ID == id {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("%w: %q", generic.ErrScenarioNotFound, id)
}
