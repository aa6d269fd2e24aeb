// Package rating implements score validation, the one-review-per-author
// pre-condition and aggregate rating computation for catalog titles.
package rating

import (
	"github.com/google/uuid"

	"critica/internal/domain/entity"
	domainerrors "critica/internal/domain/errors"
)

const (
	// MinScore is the lowest accepted review score.
	MinScore = 0
	// MaxScore is the highest accepted review score.
	MaxScore = 10
)

// ValidateScore accepts integer scores within the closed interval
// [MinScore, MaxScore] and fails with a validation error otherwise.
func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return domainerrors.ErrInvalidScore
	}

	return nil
}

// ValidateReleaseYear rejects negative years and years after currentYear.
//
// An earlier revision of this rule compared `0 > year > currentYear`, which
// can never hold, so the check silently accepted everything. The intended
// contract below is the one enforced.
func ValidateReleaseYear(year, currentYear int) error {
	if year < 0 || year > currentYear {
		return domainerrors.ErrInvalidReleaseYear
	}

	return nil
}

// EnsureSingleReview fails with a conflict error when the author already has
// a review among existing. It is a pre-condition for review creation only;
// the storage layer's unique index on (author, title) remains the authority,
// closing the race between two concurrent creates that both pass this check.
func EnsureSingleReview(authorID uuid.UUID, existing []*entity.Review) error {
	for _, review := range existing {
		if review != nil && review.AuthoredBy(authorID) {
			return domainerrors.ErrReviewAlreadyExists
		}
	}

	return nil
}

// Average returns the arithmetic mean of the given scores, or nil for an
// empty input so that "no reviews yet" stays distinguishable from reviews
// averaging zero.
func Average(scores []int) *float64 {
	if len(scores) == 0 {
		return nil
	}

	sum := 0
	for _, score := range scores {
		sum += score
	}
	mean := float64(sum) / float64(len(scores))

	return &mean
}
