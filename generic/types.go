/*
Package generic provides the value types shared by the reward calculator,
the input factory and the API.

PURPOSE:
  Domain-agnostic building blocks: a decimal-backed Amount tagged with its
  currency, day-granular TimePoints, the StakeDuration pair of instants, and
  the sentinel errors the outer layers classify.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A quantity with a currency (e.g., 10000 PHP)
  - Currency: ISO-like code used for display only, never converted
  - Quotient: Division that keeps significant digits at any magnitude

DESIGN PRINCIPLES:
  1. Immutability: Every type here is a value type, methods return copies
  2. Precision: Uses decimal.Decimal to avoid floating-point drift
  3. Finite inputs: NaN and Inf never enter a Decimal

USAGE:
  staked := generic.NewAmount(10000, generic.CurrencyPHP)
  third := staked.MulDiv(decimal.NewFromInt(1), decimal.NewFromInt(3))
  fmt.Println(third.StringFixed(2)) // "3333.33 PHP"

SEE ALSO:
  - time.go: TimePoint
  - period.go: StakeDuration
  - errors.go: Sentinel errors
  - rewards/calculator.go: The only arithmetic that uses these types
*/
package generic

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Quantity with currency
// =============================================================================

type Amount struct {
	Value    decimal.Decimal
	Currency Currency
}

type Currency string

const CurrencyPHP Currency = "PHP"

// NewAmount builds an Amount from a float. Non-finite values become zero.
func NewAmount(value float64, currency Currency) Amount {
	return Amount{Value: DecimalFromFloat(value), Currency: currency}
}

// ZeroAmount returns a zero quantity in the given currency.
func ZeroAmount(currency Currency) Amount {
	return Amount{Value: decimal.Zero, Currency: currency}
}

// DecimalFromFloat converts f, mapping NaN and ±Inf to zero.
// decimal.NewFromFloat panics on non-finite input.
func DecimalFromFloat(f float64) decimal.Decimal {
	if !IsFinite(f) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// MulDiv returns a × num / den with a single rounding step.
func (a Amount) MulDiv(num, den decimal.Decimal) Amount {
	return Amount{Value: Quotient(a.Value.Mul(num), den), Currency: a.Currency}
}

func (a Amount) IsPositive() bool { return a.Value.IsPositive() }

// Float64 converts the value. Values outside the float64 range give ±Inf.
func (a Amount) Float64() float64 { return a.Value.InexactFloat64() }

// StringFixed renders the amount with n decimal places followed by the currency.
func (a Amount) StringFixed(n int32) string {
	if a.Currency == "" {
		return a.Value.StringFixed(n)
	}
	return a.Value.StringFixed(n) + " " + string(a.Currency)
}

// =============================================================================
// QUOTIENT - Division that keeps significant digits
// =============================================================================

// QuotientDigits is the number of significant digits Quotient keeps.
// float64 needs 17.
const QuotientDigits = 20

// Quotient returns num / den rounded to QuotientDigits significant digits,
// whatever the magnitude of the result. decimal.Div rounds to a fixed number
// of fractional digits instead, which wipes out small quotients. den must
// not be zero.
func Quotient(num, den decimal.Decimal) decimal.Decimal {
	if num.IsZero() {
		return decimal.Zero
	}
	places := QuotientDigits - (magnitude(num) - magnitude(den))
	if places < 0 {
		places = 0
	}
	return num.DivRound(den, places)
}

// magnitude is the power of ten just above the leading digit:
// 1 for 1..9, 3 for 100..999, -1 for 0.01..0.09.
func magnitude(d decimal.Decimal) int32 {
	digits := len(new(big.Int).Abs(d.Coefficient()).String())
	return int32(digits) + d.Exponent()
}
