package review

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// CommentMaxLength bounds a review comment, in characters.
const CommentMaxLength = 500

var (
	ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview or RestoreReview constructor")

	ErrNotEligibleForReview = errs.NewStateIsInvalidError("customer has no delivered order from this vendor")
	ErrAlreadyReviewed      = errs.NewStateIsInvalidError("customer already reviewed this vendor and menu item")
	ErrNotAuthor            = errs.NewForbiddenError("actor is not the author of the review")
)

// Review is a customer's rating of a vendor, optionally scoped to one menu item.
// A customer holds at most one review per (vendor, menu item) pair, with
// "no menu item" being a pairing key of its own.
type Review struct {
	id         kernel.UUID
	customerID kernel.UUID
	vendorID   kernel.UUID
	menuItemID *kernel.UUID
	rating     Rating
	comment    string
	images     []string
	createdAt  time.Time
	updatedAt  time.Time
	guard      guard.ConstructorGuard
}

// NewReview creates a review. Eligibility and uniqueness are checked by the
// caller against stored orders and reviews.
func NewReview(
	customerID, vendorID kernel.UUID,
	menuItemID *kernel.UUID,
	rating Rating,
	comment string,
	images []string,
) (*Review, error) {
	now := time.Now().UTC()
	return RestoreReview(kernel.NewUUID(), customerID, vendorID, menuItemID, rating, comment, images, now, now)
}

func RestoreReview(
	id, customerID, vendorID kernel.UUID,
	menuItemID *kernel.UUID,
	rating Rating,
	comment string,
	images []string,
	createdAt, updatedAt time.Time,
) (*Review, error) {
	r := &Review{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		vendorID.Validate(),
		r.setMenuItemID(menuItemID),
		r.setRating(rating),
		r.setComment(comment),
	); err != nil {
		return nil, err
	}

	r.id = id
	r.customerID = customerID
	r.vendorID = vendorID
	r.setImages(images)
	return r, nil
}

func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

func (r *Review) ID() kernel.UUID          { return r.id }
func (r *Review) CustomerID() kernel.UUID  { return r.customerID }
func (r *Review) VendorID() kernel.UUID    { return r.vendorID }
func (r *Review) MenuItemID() *kernel.UUID { return r.menuItemID }
func (r *Review) Rating() Rating           { return r.rating }
func (r *Review) Comment() string          { return r.comment }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
func (r *Review) UpdatedAt() time.Time     { return r.updatedAt }

func (r *Review) Images() []string {
	out := make([]string, len(r.images))
	copy(out, r.images)
	return out
}

// AuthorizeAuthor passes only the customer who wrote the review.
func (r *Review) AuthorizeAuthor(actor kernel.Actor) error {
	if !actor.IsSelf(r.customerID) {
		return ErrNotAuthor
	}
	return nil
}

// Revise replaces rating, comment and images.
func (r *Review) Revise(rating Rating, comment string, images []string) error {
	if err := errors.Join(rating.Validate(), validateComment(comment)); err != nil {
		return err
	}
	r.rating = rating
	r.comment = strings.TrimSpace(comment)
	r.setImages(images)
	r.updatedAt = time.Now().UTC()
	return nil
}

func (r *Review) setMenuItemID(id *kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	r.menuItemID = id
	return nil
}

func (r *Review) setRating(rating Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}
	r.rating = rating
	return nil
}

func (r *Review) setComment(comment string) error {
	if err := validateComment(comment); err != nil {
		return err
	}
	r.comment = strings.TrimSpace(comment)
	return nil
}

func validateComment(comment string) error {
	if n := utf8.RuneCountInString(strings.TrimSpace(comment)); n > CommentMaxLength {
		return errs.NewValueIsOutOfRangeError("comment length", n, 0, CommentMaxLength)
	}
	return nil
}

func (r *Review) setImages(images []string) {
	r.images = make([]string, 0, len(images))
	for _, img := range images {
		if img = strings.TrimSpace(img); img != "" {
			r.images = append(r.images, img)
		}
	}
}
