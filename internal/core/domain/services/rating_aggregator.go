package services

import (
	"math"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/review"
)

// RatingAggregator rebuilds a vendor's averageRating and totalReviews from the
// vendor's complete review set. The fields are a cache and are never updated
// incrementally.
type RatingAggregator struct{}

func NewRatingAggregator() RatingAggregator {
	return RatingAggregator{}
}

// Recompute applies the mean rating, rounded to one decimal, and the review
// count to vendor. With no reviews the vendor is left as is and Recompute
// reports false.
func (RatingAggregator) Recompute(vendor *catalog.Vendor, ratings []review.Rating) (bool, error) {
	if err := vendor.Validate(); err != nil {
		return false, err
	}
	if len(ratings) == 0 {
		return false, nil
	}

	sum := 0
	for _, r := range ratings {
		if err := r.Validate(); err != nil {
			return false, err
		}
		sum += r.Value()
	}

	mean := float64(sum) / float64(len(ratings))
	if err := vendor.ApplyRating(math.Round(mean*10)/10, len(ratings)); err != nil {
		return false, err
	}
	return true, nil
}
