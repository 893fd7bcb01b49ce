// Package promo manages percentage discount codes.
package promo

import (
	"errors"
	"fmt"
	"slices"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrInvalidPromoCode is returned when a code does not resolve. Checkout reports it
// but still completes without a discount.
var ErrInvalidPromoCode = errors.New("invalid promo code")

var (
	zeroPercent    = decimal.Zero
	hundredPercent = decimal.NewFromInt(100)
)

// Code is a promo code granting a percentage off the subtotal.
type Code struct {
	code    string
	percent decimal.Decimal
}

// NewCode validates a code. The percentage must be in (0, 100].
func NewCode(code string, percent decimal.Decimal) (Code, error) {
	if code == "" {
		return Code{}, errs.NewValueIsRequiredError("promo code")
	}
	if percent.LessThanOrEqual(zeroPercent) || percent.GreaterThan(hundredPercent) {
		return Code{}, errs.NewValueIsOutOfRangeError("discount percent", percent, "0 (exclusive)", hundredPercent)
	}
	return Code{code: code, percent: percent}, nil
}

func (c Code) Code() string {
	return c.code
}

func (c Code) Percent() decimal.Decimal {
	return c.percent
}

// DiscountOn returns the discount this code grants on subtotal, rounded to cents.
func (c Code) DiscountOn(subtotal kernel.Money) kernel.Money {
	return subtotal.Percent(c.percent)
}

// Registry keeps codes in insertion order. Lookups are case-sensitive.
// The zero value is an empty registry.
type Registry struct {
	codes []Code
}

// Add registers a code. A code that is already present yields an ObjectAlreadyExistsError.
func (r *Registry) Add(code Code) error {
	if code.code == "" {
		return errs.NewValueIsRequiredError("promo code")
	}
	if _, ok := r.find(code.code); ok {
		return errs.NewObjectAlreadyExistsError("promo code", code.code)
	}
	r.codes = append(r.codes, code)
	return nil
}

// Resolve looks code up. Unknown codes produce an error matching both
// ErrInvalidPromoCode and errs.ErrObjectNotFound.
func (r *Registry) Resolve(code string) (Code, error) {
	c, ok := r.find(code)
	if !ok {
		return Code{}, fmt.Errorf("%w: %w", ErrInvalidPromoCode, errs.NewObjectNotFoundError("promo code", code))
	}
	return c, nil
}

func (r *Registry) Len() int {
	return len(r.codes)
}

// ForEach visits codes in insertion order until fn returns false.
func (r *Registry) ForEach(fn func(code Code) bool) {
	for _, c := range r.codes {
		if !fn(c) {
			return
		}
	}
}

func (r *Registry) find(code string) (Code, bool) {
	i := slices.IndexFunc(r.codes, func(c Code) bool { return c.code == code })
	if i < 0 {
		return Code{}, false
	}
	return r.codes[i], true
}
