package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// centPlaces is the precision amounts are rounded to when they leave a calculation.
const centPlaces = 2

var hundred = decimal.NewFromInt(100)

// Money is a non-negative-by-convention currency amount. The zero value is 0.00.
//
// Arithmetic keeps full decimal precision; Round2 applies half-away-from-zero
// rounding to cents, the rounding used for tax.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("12.99")
//	subtotal := price.Mul(2)                                  // 25.98
//	tax := subtotal.Add(fee).MulRate(taxRate).Round2()        // 8% of (subtotal + fee)
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps a decimal amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromFloat converts a float amount, as read from configuration or JSON, rounded to cents.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount).Round(centPlaces))
}

// MoneyFromString parses an amount such as "2.99".
func MoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MustMoney parses a literal amount and panics if it is malformed. Intended for constants.
func MustMoney(amount string) Money {
	m, err := MoneyFromString(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns 0.00.
func Zero() Money {
	return Money{}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub subtracts other. The result may be negative; callers clamp where the domain requires it.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Mul multiplies by a quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// MulRate multiplies by a fractional rate such as 0.08.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate)}
}

// Percent returns percent/100 of the amount, rounded to cents.
func (m Money) Percent(percent decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(percent).Div(hundred).Round(centPlaces)}
}

// Round2 rounds to cents.
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(centPlaces)}
}

// Min returns the smaller of m and other.
func (m Money) Min(other Money) Money {
	if other.amount.LessThan(m.amount) {
		return other
	}
	return m
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal exposes the underlying amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 converts the amount for transport formats that carry plain numbers.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String renders the amount with exactly two decimals.
func (m Money) String() string {
	return m.amount.StringFixed(centPlaces)
}
