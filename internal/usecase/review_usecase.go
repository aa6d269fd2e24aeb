package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"critica/internal/domain/entity"
)

// ReviewUsecase defines the operations on reviews, always scoped to a title.
type ReviewUsecase interface {
	ListReviews(ctx context.Context, actor *entity.User, titleID uuid.UUID, page *PageInput) ([]*ReviewOutput, error)
	GetReview(ctx context.Context, actor *entity.User, titleID, reviewID uuid.UUID) (*ReviewOutput, error)

	// CreateReview validates the score, enforces the one-review-per-author
	// pre-condition and persists; a concurrent duplicate caught by storage
	// surfaces as the same conflict error.
	CreateReview(ctx context.Context, actor *entity.User, titleID uuid.UUID, input *ReviewInput) (*ReviewOutput, error)

	UpdateReview(ctx context.Context, actor *entity.User, titleID, reviewID uuid.UUID, input *ReviewInput) (*ReviewOutput, error)
	DeleteReview(ctx context.Context, actor *entity.User, titleID, reviewID uuid.UUID) error
}

// CommentUsecase defines the operations on review comments, always scoped
// to a review (and transitively to its title).
type CommentUsecase interface {
	ListComments(ctx context.Context, actor *entity.User, titleID, reviewID uuid.UUID, page *PageInput) ([]*CommentOutput, error)
	GetComment(ctx context.Context, actor *entity.User, titleID, reviewID, commentID uuid.UUID) (*CommentOutput, error)
	CreateComment(ctx context.Context, actor *entity.User, titleID, reviewID uuid.UUID, input *CommentInput) (*CommentOutput, error)
	UpdateComment(ctx context.Context, actor *entity.User, titleID, reviewID, commentID uuid.UUID, input *CommentInput) (*CommentOutput, error)
	DeleteComment(ctx context.Context, actor *entity.User, titleID, reviewID, commentID uuid.UUID) error
}

// --- Input DTOs ---

// PageInput bounds list results.
type PageInput struct {
	Limit  int `query:"limit" validate:"omitempty,gte=0,lte=100"`
	Offset int `query:"offset" validate:"omitempty,gte=0"`
}

// ReviewInput defines the data to create or update a review. Score bounds
// are re-checked by the rating engine; the tag only rejects obvious misuse
// at the edge.
type ReviewInput struct {
	Text  string `json:"text" validate:"required"`
	Score int    `json:"score"`
}

// CommentInput defines the data to create or update a comment.
type CommentInput struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// --- Output DTOs ---

// ReviewOutput is the outward representation of a review.
type ReviewOutput struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// NewReviewOutput maps a review entity to its outward representation.
func NewReviewOutput(review *entity.Review) *ReviewOutput {
	return &ReviewOutput{
		ID:        review.ID,
		Author:    review.AuthorUsername,
		Text:      review.Text,
		Score:     review.Score,
		CreatedAt: review.CreatedAt,
	}
}

// CommentOutput is the outward representation of a comment.
type CommentOutput struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCommentOutput maps a comment entity to its outward representation.
func NewCommentOutput(comment *entity.Comment) *CommentOutput {
	return &CommentOutput{
		ID:        comment.ID,
		Author:    comment.AuthorUsername,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}
