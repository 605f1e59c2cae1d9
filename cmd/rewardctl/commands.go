package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/warp/epoch-rewards/factory"
	"github.com/warp/epoch-rewards/rewards"
)

func newRootCmd(now func() time.Time) *cobra.Command {
	root := &cobra.Command{
		Use:          "rewardctl",
		Short:        "Staking reward calculator",
		SilenceUsage: true,
	}
	root.AddCommand(
		newCalculateCmd(now),
		newDefaultsCmd(now),
		newScenariosCmd(),
	)
	return root
}

// =============================================================================
// CALCULATE
// =============================================================================

type calculateOptions struct {
	staked      float64
	start       string
	finish      string
	rate        float64
	profitShare float64
	marketCap   float64
	formula     string
	currency    string
	printJSON   bool
	verbose     bool
}

func newCalculateCmd(now func() time.Time) *cobra.Command {
	defaults := factory.ToJSON(rewards.DefaultInputs(now()), rewards.FormulaRateScaled)
	opts := calculateOptions{}

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the reward for a stake",
		Long: `Calculate the reward for a stake.

Every flag defaults to the form's initial value: 10000 staked from today
for 30 days at 10.5% monthly, with the reference profit share and market cap.
Invalid amounts or windows print a zero reward.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rate := opts.rate
			in, formula, err := factory.InputsFromJSON(factory.InputsJSON{
				StakedAmount:      opts.staked,
				StartDate:         opts.start,
				EndDate:           opts.finish,
				MonthlyRewardRate: &rate,
				ProfitShare:       opts.profitShare,
				MarketCap:         opts.marketCap,
				Formula:           opts.formula,
				Currency:          opts.currency,
			})
			if err != nil {
				return err
			}
			return printBreakdown(cmd.OutOrStdout(), in, rewards.Calculate(formula, in), opts.printJSON, opts.verbose)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.staked, "staked", defaults.StakedAmount, "staked amount")
	f.StringVar(&opts.start, "start", defaults.StartDate, "stake start (YYYY-MM-DD or RFC 3339)")
	f.StringVar(&opts.finish, "finish", defaults.EndDate, "stake finish (YYYY-MM-DD or RFC 3339)")
	f.Float64Var(&opts.rate, "rate", *defaults.MonthlyRewardRate, "monthly/epoch reward rate in percent")
	f.Float64Var(&opts.profitShare, "profit-share", defaults.ProfitShare, "profit share amount")
	f.Float64Var(&opts.marketCap, "market-cap", defaults.MarketCap, "market cap amount")
	f.StringVar(&opts.formula, "formula", string(rewards.DefaultFormula), "rate_scaled or duration_scaled")
	f.StringVar(&opts.currency, "currency", defaults.Currency, "currency label")
	f.BoolVar(&opts.printJSON, "json", false, "print the result as JSON")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "print intermediate figures")
	return cmd
}

// =============================================================================
// DEFAULTS
// =============================================================================

func newDefaultsCmd(now func() time.Time) *cobra.Command {
	var formula string
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the form's default inputs as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := rewards.ParseFormula(formula)
			if err != nil {
				return err
			}
			return writeIndented(cmd.OutOrStdout(), factory.ToJSON(rewards.DefaultInputs(now()), f))
		},
	}
	cmd.Flags().StringVar(&formula, "formula", string(rewards.DefaultFormula), "rate_scaled or duration_scaled")
	return cmd
}

// =============================================================================
// SCENARIOS
// =============================================================================

func newScenariosCmd() *cobra.Command {
	var formula string
	var verbose bool
	cmd := &cobra.Command{
		Use:   "scenarios [id]",
		Short: "List scenarios, or calculate one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, s := range rewards.Scenarios() {
					fmt.Fprintf(out, "%-18s %s\n", s.ID, s.Description)
				}
				return nil
			}

			s, err := rewards.ScenarioByID(args[0])
			if err != nil {
				return err
			}
			f, err := rewards.ParseFormula(formula)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %s\n", s.Name, s.Description)
			return printBreakdown(out, s.Inputs, rewards.Calculate(f, s.Inputs), false, verbose)
		},
	}
	cmd.Flags().StringVar(&formula, "formula", string(rewards.DefaultFormula), "rate_scaled or duration_scaled")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print intermediate figures")
	return cmd
}

// =============================================================================
// OUTPUT
// =============================================================================

type breakdownJSON struct {
	Formula           string             `json:"formula"`
	Reward            float64            `json:"reward"`
	RewardDisplay     string             `json:"reward_display"`
	Currency          string             `json:"currency"`
	StakeDurationDays string             `json:"stake_duration_days"`
	ProfitShareFactor string             `json:"profit_share_factor"`
	AdjustedRate      string             `json:"adjusted_rate"`
	Inputs            factory.InputsJSON `json:"inputs"`
}

func printBreakdown(w io.Writer, in rewards.Inputs, b rewards.Breakdown, asJSON, verbose bool) error {
	if asJSON {
		return writeIndented(w, breakdownJSON{
			Formula:           string(b.Formula),
			Reward:            b.Float64(),
			RewardDisplay:     b.Display(),
			Currency:          string(b.Reward.Currency),
			StakeDurationDays: b.StakeDurationDays.String(),
			ProfitShareFactor: b.ProfitShareFactor.String(),
			AdjustedRate:      b.AdjustedRate.String(),
			Inputs:            factory.ToJSON(in, b.Formula),
		})
	}

	if b.Formula.Deprecated() {
		fmt.Fprintf(w, "warning: %s is deprecated, prefer %s\n", b.Formula, rewards.DefaultFormula)
	}
	if verbose {
		fmt.Fprintf(w, "Stake window:        %s\n", in.Duration)
		fmt.Fprintf(w, "Stake duration days: %s\n", b.StakeDurationDays)
		fmt.Fprintf(w, "Profit share factor: %s\n", b.ProfitShareFactor.StringFixed(8))
		if b.Formula.UsesRate() {
			fmt.Fprintf(w, "Adjusted rate:       %s\n", b.AdjustedRate.StringFixed(8))
		}
	}
	_, err := fmt.Fprintf(w, "Calculated Reward: %s\n", b.Reward.StringFixed(2))
	return err
}

func writeIndented(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
