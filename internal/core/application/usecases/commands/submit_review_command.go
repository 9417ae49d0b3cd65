package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/guard"
)

var (
	ErrSubmitReviewCommandIsNotConstructed = errors.New(
		"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
	)
	ErrUpdateReviewCommandIsNotConstructed = errors.New(
		"UpdateReviewCommand must be created via NewUpdateReviewCommand constructor",
	)
	ErrDeleteReviewCommandIsNotConstructed = errors.New(
		"DeleteReviewCommand must be created via NewDeleteReviewCommand constructor",
	)
)

// SubmitReviewCommand rates a vendor, or one of its menu items when
// menuItemID is set.
type SubmitReviewCommand struct {
	actor      kernel.Actor
	vendorID   kernel.UUID
	menuItemID *kernel.UUID
	rating     review.Rating
	comment    string
	images     []string

	guard guard.ConstructorGuard
}

func NewSubmitReviewCommand(
	actor kernel.Actor,
	vendorID kernel.UUID,
	menuItemID *kernel.UUID,
	rating review.Rating,
	comment string,
	images []string,
) (SubmitReviewCommand, error) {
	var menuItemErr error
	if menuItemID != nil {
		menuItemErr = menuItemID.Validate()
	}

	if err := errors.Join(actor.Validate(), vendorID.Validate(), menuItemErr, rating.Validate()); err != nil {
		return SubmitReviewCommand{}, err
	}

	return SubmitReviewCommand{
		actor:      actor,
		vendorID:   vendorID,
		menuItemID: menuItemID,
		rating:     rating,
		comment:    comment,
		images:     images,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

func (c SubmitReviewCommand) Actor() kernel.Actor      { return c.actor }
func (c SubmitReviewCommand) VendorID() kernel.UUID    { return c.vendorID }
func (c SubmitReviewCommand) MenuItemID() *kernel.UUID { return c.menuItemID }
func (c SubmitReviewCommand) Rating() review.Rating    { return c.rating }
func (c SubmitReviewCommand) Comment() string          { return c.comment }
func (c SubmitReviewCommand) Images() []string         { return c.images }

// UpdateReviewCommand replaces rating, comment and images of a review.
type UpdateReviewCommand struct {
	actor    kernel.Actor
	reviewID kernel.UUID
	rating   review.Rating
	comment  string
	images   []string

	guard guard.ConstructorGuard
}

func NewUpdateReviewCommand(
	actor kernel.Actor,
	reviewID kernel.UUID,
	rating review.Rating,
	comment string,
	images []string,
) (UpdateReviewCommand, error) {
	if err := errors.Join(actor.Validate(), reviewID.Validate(), rating.Validate()); err != nil {
		return UpdateReviewCommand{}, err
	}

	return UpdateReviewCommand{
		actor:    actor,
		reviewID: reviewID,
		rating:   rating,
		comment:  comment,
		images:   images,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateReviewCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReviewCommandIsNotConstructed)
}

func (c UpdateReviewCommand) Actor() kernel.Actor   { return c.actor }
func (c UpdateReviewCommand) ReviewID() kernel.UUID { return c.reviewID }
func (c UpdateReviewCommand) Rating() review.Rating { return c.rating }
func (c UpdateReviewCommand) Comment() string       { return c.comment }
func (c UpdateReviewCommand) Images() []string      { return c.images }

type DeleteReviewCommand struct {
	actor    kernel.Actor
	reviewID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteReviewCommand(actor kernel.Actor, reviewID kernel.UUID) (DeleteReviewCommand, error) {
	if err := errors.Join(actor.Validate(), reviewID.Validate()); err != nil {
		return DeleteReviewCommand{}, err
	}

	return DeleteReviewCommand{
		actor:    actor,
		reviewID: reviewID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteReviewCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReviewCommandIsNotConstructed)
}

func (c DeleteReviewCommand) Actor() kernel.Actor   { return c.actor }
func (c DeleteReviewCommand) ReviewID() kernel.UUID { return c.reviewID }
