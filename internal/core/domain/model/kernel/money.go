package kernel

import (
	"fmt"

	"courierdocs/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a monetary amount in Rand.
// It wraps shopspring/decimal to guarantee exact arithmetic for business figures
// such as courier charges, line-item prices, and VAT computations.
//
// The zero value is a valid amount of R 0.00. Money is immutable: every
// arithmetic operation returns a new Money.
//
// Example usage:
//
//	charge, err := kernel.MoneyFromString("149.90")
//	if err != nil {
//	    // handle invalid amount
//	}
//	fmt.Println(charge.Format()) // "R 149.90"
type Money struct {
	amount decimal.Decimal
}

// MoneyFromString parses a monetary amount from its decimal string representation.
// Returns a ValueIsInvalidError if the string is not a valid decimal number.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("money amount %q", s), err)
	}
	return Money{amount: d}, nil
}

// MoneyFromInt creates a Money from a whole number of Rand.
func MoneyFromInt(v int64) Money {
	return Money{amount: decimal.NewFromInt(v)}
}

// MoneyFromDecimal creates a Money from an exact decimal value.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// Add returns the sum of m and other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul returns m scaled by the given factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// Decimal returns the underlying exact decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsEqual compares two amounts for exact equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Format renders the amount as currency with exactly two decimal places,
// e.g. "R 10.00". Formatting the same amount always yields the same string.
func (m Money) Format() string {
	return "R " + m.amount.StringFixed(2)
}

// String returns the plain two-decimal representation without the currency prefix.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate rejects negative amounts. Business amounts in the courier domain
// (charges, prices, totals) are never negative.
func (m Money) Validate() error {
	if m.amount.IsNegative() {
		return errs.NewValueIsOutOfRangeError("money amount", m.amount.String(), "0", "unbounded")
	}
	return nil
}
