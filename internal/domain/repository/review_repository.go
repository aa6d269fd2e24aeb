package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"critica/internal/domain/entity"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ErrDuplicateReview is returned when a create collides with the storage
// unique index on (author, title). The application pre-check cannot close
// the concurrent-create race on its own; this error is the backstop.
var ErrDuplicateReview = errors.New("author already reviewed this title")

// Page bounds list results.
type Page struct {
	Limit  int
	Offset int
}

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	// FindByID retrieves a review scoped to a title; a review belonging to
	// a different title is a not-found, not a leak across titles.
	FindByID(ctx context.Context, titleID, reviewID uuid.UUID) (*entity.Review, error)

	// ListByTitle returns the title's reviews, newest first.
	ListByTitle(ctx context.Context, titleID uuid.UUID, page Page) ([]*entity.Review, error)

	// ScoresByTitle returns all scores for a title, for rating aggregation.
	ScoresByTitle(ctx context.Context, titleID uuid.UUID) ([]int, error)

	// Create persists a new review. A (author, title) collision surfaces
	// as ErrDuplicateReview regardless of which layer caught it.
	Create(ctx context.Context, review *entity.Review) error

	// Update modifies the text and score of an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review; its comments go with it through the cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ErrCommentNotFound is returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines persistence operations for review comments.
type CommentRepository interface {
	// FindByID retrieves a comment scoped to a review.
	FindByID(ctx context.Context, reviewID, commentID uuid.UUID) (*entity.Comment, error)

	// ListByReview returns the review's comments, newest first.
	ListByReview(ctx context.Context, reviewID uuid.UUID, page Page) ([]*entity.Comment, error)

	Create(ctx context.Context, comment *entity.Comment) error

	Update(ctx context.Context, comment *entity.Comment) error

	Delete(ctx context.Context, id uuid.UUID) error
}
