package kernel

import (
	"fmt"
	"math"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney constructor")

// Money is a non-negative amount in minor currency units (paise, cents).
// Prices, order totals and payment amounts all use it, which keeps
// Σ(price × quantity) and the payment amount comparison exact.
type Money struct {
	amount int64
	guard  guard.ConstructorGuard
}

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is negative", amount),
		)
	}

	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// ZeroMoney is the starting point of a sum.
func ZeroMoney() Money {
	return Money{guard: guard.NewConstructorGuard()}
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Amount() int64 {
	return m.amount
}

// Add fails with a ValueIsOutOfRange error when the sum does not fit in int64.
func (m Money) Add(other Money) (Money, error) {
	if other.amount > math.MaxInt64-m.amount {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", fmt.Sprintf("%d + %d", m.amount, other.amount), 0, int64(math.MaxInt64))
	}
	return Money{amount: m.amount + other.amount, guard: guard.NewConstructorGuard()}, nil
}

// Times multiplies the amount by a non-negative line quantity.
func (m Money) Times(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	if quantity > 0 && m.amount > math.MaxInt64/int64(quantity) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", fmt.Sprintf("%d × %d", m.amount, quantity), 0, int64(math.MaxInt64))
	}
	return Money{amount: m.amount * int64(quantity), guard: guard.NewConstructorGuard()}, nil
}

func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}
