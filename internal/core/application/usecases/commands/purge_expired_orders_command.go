package commands

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrPurgeExpiredOrdersCommandIsNotConstructed = errors.New(
	"PurgeExpiredOrdersCommand must be created via NewPurgeExpiredOrdersCommand constructor",
)

// PurgeExpiredOrdersCommand drops orders older than the retention window.
// This is storage housekeeping, not an order transition.
type PurgeExpiredOrdersCommand struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

func NewPurgeExpiredOrdersCommand(now time.Time, retention time.Duration) (PurgeExpiredOrdersCommand, error) {
	if retention <= 0 {
		return PurgeExpiredOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"retention", fmt.Errorf("%s is not positive", retention))
	}

	return PurgeExpiredOrdersCommand{
		cutoff: now.Add(-retention),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeExpiredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredOrdersCommandIsNotConstructed)
}

// Cutoff is the creation time before which orders are removed.
func (c PurgeExpiredOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}
