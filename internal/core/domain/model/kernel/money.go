package kernel

import (
	"fmt"

	"sokoni/internal/pkg/errs"
)

// Money is a monetary amount in Tanzanian shillings. TZS has no minor unit,
// so amounts are whole shillings stored as int64. Negative amounts are
// invalid; the zero value is a legitimate amount of zero.
type Money struct {
	amount int64
}

// NewMoney creates a Money value. Returns an error for negative amounts.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// MustMoney creates a Money value and panics on a negative amount.
// Intended for constants and tests.
func MustMoney(amount int64) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount returns the amount in whole shillings.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// MulQuantity returns the amount multiplied by a non-negative quantity.
func (m Money) MulQuantity(quantity int) Money {
	if quantity < 0 {
		return Money{}
	}
	return Money{amount: m.amount * int64(quantity)}
}

// Percent returns the given percentage of the amount, truncated to whole
// shillings.
func (m Money) Percent(percent int64) Money {
	return Money{amount: m.amount * percent / 100}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// String renders the amount with its currency code.
func (m Money) String() string {
	return fmt.Sprintf("%d TZS", m.amount)
}
