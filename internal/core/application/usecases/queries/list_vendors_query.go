package queries

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrListVendorsQueryIsNotConstructed = errors.New("ListVendorsQuery must be created via NewListVendorsQuery constructor")

// ListVendorsQuery is the public vendor directory: best rated first, then newest.
type ListVendorsQuery struct {
	search    string
	minRating *float64
	page      Page
	guard     guard.ConstructorGuard
}

// NewListVendorsQuery accepts an optional free-text search over name and
// description and an optional minimum average rating in [0, 5].
func NewListVendorsQuery(search string, minRating *float64, page Page) (ListVendorsQuery, error) {
	if err := page.Validate(); err != nil {
		return ListVendorsQuery{}, err
	}
	if minRating != nil && (*minRating < 0 || *minRating > 5) {
		return ListVendorsQuery{}, errs.NewValueIsOutOfRangeError("rating", *minRating, 0, 5)
	}
	search = strings.TrimSpace(search)
	if len(search) > maxSearchLength {
		return ListVendorsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"search", fmt.Errorf("longer than %d bytes", maxSearchLength))
	}

	return ListVendorsQuery{
		search:    search,
		minRating: minRating,
		page:      page,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListVendorsQuery) Validate() error {
	return q.guard.Validate(ErrListVendorsQueryIsNotConstructed)
}

func (q ListVendorsQuery) Search() string      { return q.search }
func (q ListVendorsQuery) MinRating() *float64 { return q.minRating }
func (q ListVendorsQuery) Page() Page          { return q.page }
