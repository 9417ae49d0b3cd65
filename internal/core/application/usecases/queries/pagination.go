package queries

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPageNumber keeps (page-1)×size well inside int and OFFSET range.
	MaxPageNumber = 100_000
)

var ErrPageIsNotConstructed = errors.New("Page must be created via NewPage constructor")

// Page selects one slice of a listing. Page numbers start at 1.
type Page struct {
	number int
	size   int
	guard  guard.ConstructorGuard
}

// NewPage applies the defaults for zero values: page 1, DefaultPageSize items.
func NewPage(number, size int) (Page, error) {
	if number == 0 {
		number = 1
	}
	if size == 0 {
		size = DefaultPageSize
	}

	if number < 1 {
		return Page{}, errs.NewValueIsInvalidErrorWithCause("page", fmt.Errorf("%d is below 1", number))
	}
	if number > MaxPageNumber {
		return Page{}, errs.NewValueIsOutOfRangeError("page", number, 1, MaxPageNumber)
	}
	if size < 1 || size > MaxPageSize {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", size, 1, MaxPageSize)
	}

	return Page{number: number, size: size, guard: guard.NewConstructorGuard()}, nil
}

func (p Page) Validate() error {
	return p.guard.Validate(ErrPageIsNotConstructed)
}

func (p Page) Number() int { return p.number }
func (p Page) Size() int   { return p.size }

// limit and offset rely on NewPage bounds: size in [1, MaxPageSize], number in [1, MaxPageNumber].
func (p Page) limit() uint64  { return uint64(p.size) }                      //nolint:gosec // bounded by NewPage
func (p Page) offset() uint64 { return uint64(p.number-1) * uint64(p.size) } //nolint:gosec // bounded by NewPage

// totalPages is ceil(total/size).
func (p Page) totalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(p.size) - 1) / int64(p.size))
}
