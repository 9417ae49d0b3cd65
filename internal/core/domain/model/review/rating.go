package review

import (
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	RatingMin = 1
	RatingMax = 5
)

var ErrRatingIsNotConstructed = errs.NewValueIsRequiredError("rating must be created via NewRating constructor")

// Rating is an integer score from 1 to 5.
type Rating struct {
	value int
	guard guard.ConstructorGuard
}

func NewRating(value int) (Rating, error) {
	if value < RatingMin || value > RatingMax {
		return Rating{}, errs.NewValueIsOutOfRangeError("rating", value, RatingMin, RatingMax)
	}
	return Rating{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (r Rating) Validate() error {
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

func (r Rating) Value() int {
	return r.value
}
