package queries

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
)

// MenuItemsFilter narrows the public menu browse. Zero fields do not filter.
type MenuItemsFilter struct {
	VendorID  *kernel.UUID
	Available *bool
	Search    string
}

// ListMenuItemsQuery pages through menu items ordered by name.
type ListMenuItemsQuery struct {
	filter MenuItemsFilter
	page   Page
	guard  guard.ConstructorGuard
}

func NewListMenuItemsQuery(filter MenuItemsFilter, page Page) (ListMenuItemsQuery, error) {
	var vendorErr error
	if filter.VendorID != nil {
		vendorErr = filter.VendorID.Validate()
	}
	if err := errors.Join(vendorErr, page.Validate()); err != nil {
		return ListMenuItemsQuery{}, err
	}

	filter.Search = strings.TrimSpace(filter.Search)
	if len(filter.Search) > maxSearchLength {
		return ListMenuItemsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"search", fmt.Errorf("longer than %d bytes", maxSearchLength))
	}

	return ListMenuItemsQuery{filter: filter, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

func (q ListMenuItemsQuery) Filter() MenuItemsFilter { return q.filter }
func (q ListMenuItemsQuery) Page() Page              { return q.page }
