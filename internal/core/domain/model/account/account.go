package account

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrAccountIsNotConstructed is returned when an Account was not created via NewAccount or RestoreAccount.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// pointsPerUnit is the loyalty accrual rate: ten points per currency unit spent.
var pointsPerUnit = decimal.NewFromInt(10)

// Account is a registered customer.
//
// Account follows these invariants:
//   - Username, password, address and phone are never empty
//   - Loyalty points are never negative
//   - Can only be created through NewAccount or RestoreAccount
type Account struct {
	username      string
	password      string
	address       string
	phone         string
	loyaltyPoints int

	guard guard.ConstructorGuard
}

// NewAccount registers a new account with zero loyalty points.
func NewAccount(username, password, address, phone string) (*Account, error) {
	return RestoreAccount(username, password, address, phone, 0)
}

// RestoreAccount rebuilds an account from persisted fields.
func RestoreAccount(username, password, address, phone string, loyaltyPoints int) (*Account, error) {
	a := &Account{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setUsername(username),
		a.setPassword(password),
		a.setAddress(address),
		a.setPhone(phone),
		a.setLoyaltyPoints(loyaltyPoints),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Account was properly constructed.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

func (a *Account) Username() string {
	return a.username
}

// Password returns the stored secret. It is only read by persistence adapters.
func (a *Account) Password() string {
	return a.password
}

func (a *Account) Address() string {
	return a.address
}

func (a *Account) Phone() string {
	return a.phone
}

func (a *Account) LoyaltyPoints() int {
	return a.loyaltyPoints
}

// CheckPassword reports whether password matches the stored one.
func (a *Account) CheckPassword(password string) bool {
	return a.password == password
}

// AddLoyaltyPoints credits floor(total × 10) points and returns how many were added.
// Negative totals credit nothing.
func (a *Account) AddLoyaltyPoints(total kernel.Money) int {
	if total.IsNegative() {
		return 0
	}

	earned := int(total.Decimal().Mul(pointsPerUnit).Floor().IntPart())
	a.loyaltyPoints += earned
	return earned
}

// Clone returns a detached copy.
func (a *Account) Clone() *Account {
	c := *a
	return &c
}

func (a *Account) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	a.username = username
	return nil
}

func (a *Account) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	a.password = password
	return nil
}

func (a *Account) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	a.address = address
	return nil
}

func (a *Account) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	a.phone = phone
	return nil
}

func (a *Account) setLoyaltyPoints(points int) error {
	if points < 0 {
		return errs.NewValueIsInvalidErrorWithCause("loyalty points", fmt.Errorf("%d is negative", points))
	}
	a.loyaltyPoints = points
	return nil
}
