package payment

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	refSuffixLength   = 9
	refSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var ErrTransactionRefIsNotConstructed = errs.NewValueIsRequiredError(
	"transaction reference must be created via NewTransactionRef or TransactionRefFromString")

// TransactionRef correlates an attempt with gateway callbacks. It has the form
// <gateway>_<unix millis>_<9 base36 chars>; uniqueness is also enforced by storage.
type TransactionRef struct {
	value string
	guard guard.ConstructorGuard
}

// NewTransactionRef generates a fresh reference for gateway g.
func NewTransactionRef(g Gateway, now time.Time) TransactionRef {
	var suffix strings.Builder
	suffix.Grow(refSuffixLength)
	for range refSuffixLength {
		suffix.WriteByte(refSuffixAlphabet[rand.IntN(len(refSuffixAlphabet))]) //nolint:gosec // not a secret
	}

	return TransactionRef{
		value: fmt.Sprintf("%s_%d_%s", g, now.UnixMilli(), suffix.String()),
		guard: guard.NewConstructorGuard(),
	}
}

// TransactionRefFromString accepts a reference reported by a gateway callback.
func TransactionRefFromString(s string) (TransactionRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TransactionRef{}, errs.NewValueIsRequiredError("transactionId")
	}
	return TransactionRef{value: s, guard: guard.NewConstructorGuard()}, nil
}

func (r TransactionRef) Validate() error {
	return r.guard.Validate(ErrTransactionRefIsNotConstructed)
}

func (r TransactionRef) String() string {
	return r.value
}

func (r TransactionRef) IsEqual(other TransactionRef) bool {
	return r.value == other.value
}
