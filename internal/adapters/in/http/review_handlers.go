package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"

	"github.com/labstack/echo/v4"
)

// SubmitReview handles POST /api/v1/reviews.
func (s *Server) SubmitReview(c echo.Context) error {
	var body NewReview
	if err := c.Bind(&body); err != nil {
		return s.writeError(c, badRequest("Invalid request body", err))
	}

	vendorID, err := kernel.UUIDFromString(body.VendorID)
	if err != nil {
		return s.writeError(c, err)
	}

	var menuItemID *kernel.UUID
	if body.MenuItemID != nil {
		id, parseErr := kernel.UUIDFromString(*body.MenuItemID)
		if parseErr != nil {
			return s.writeError(c, parseErr)
		}
		menuItemID = &id
	}

	rating, err := review.NewRating(body.Rating)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewSubmitReviewCommand(actorOf(c), vendorID, menuItemID, rating, body.Comment, body.Images)
	if err != nil {
		return s.writeError(c, err)
	}

	created, err := s.commands.SubmitReview.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, reviewOf(created))
}

// UpdateReview handles PUT /api/v1/reviews/{reviewId}.
func (s *Server) UpdateReview(c echo.Context) error {
	reviewID, err := pathUUID(c, "reviewId")
	if err != nil {
		return s.writeError(c, err)
	}

	var body ReviewRevision
	if err = c.Bind(&body); err != nil {
		return s.writeError(c, badRequest("Invalid request body", err))
	}

	rating, err := review.NewRating(body.Rating)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewUpdateReviewCommand(actorOf(c), reviewID, rating, body.Comment, body.Images)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.commands.UpdateReview.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteReview handles DELETE /api/v1/reviews/{reviewId}.
func (s *Server) DeleteReview(c echo.Context) error {
	reviewID, err := pathUUID(c, "reviewId")
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewDeleteReviewCommand(actorOf(c), reviewID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.commands.DeleteReview.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListVendorReviews handles GET /api/v1/vendors/{vendorId}/reviews. It is public.
func (s *Server) ListVendorReviews(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return s.writeError(c, err)
	}

	stars, err := queryInt(c, "rating")
	if err != nil {
		return s.writeError(c, err)
	}

	var rating *review.Rating
	if stars != nil {
		r, ratingErr := review.NewRating(*stars)
		if ratingErr != nil {
			return s.writeError(c, ratingErr)
		}
		rating = &r
	}

	page, err := queryPage(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewListVendorReviewsQuery(vendorID, rating, page)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.queries.ListVendorReviews.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, reviewPageOf(result))
}
