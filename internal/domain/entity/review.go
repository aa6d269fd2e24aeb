package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a single user's opinion of a title with a numeric score.
// An author holds at most one review per title; the storage layer enforces
// the (AuthorID, TitleID) pair with a unique index.
type Review struct {
	ID             uuid.UUID
	TitleID        uuid.UUID // The reviewed title.
	AuthorID       uuid.UUID // The authoring user.
	AuthorUsername string    // Denormalized for read output; not persisted on the review row.
	Text           string
	Score          int       // Integer score in the closed interval [0, 10].
	CreatedAt      time.Time // Server-assigned, immutable; lists order by it descending.
}

// AuthoredBy reports whether the review was written by the given user.
func (r *Review) AuthoredBy(userID uuid.UUID) bool {
	return r.AuthorID == userID
}

// Comment is a remark on a review. Many comments per review are permitted.
type Comment struct {
	ID             uuid.UUID
	ReviewID       uuid.UUID // The commented review.
	AuthorID       uuid.UUID
	AuthorUsername string
	Text           string    // Bounded length, validated at the edge.
	CreatedAt      time.Time // Server-assigned, immutable.
}

// AuthoredBy reports whether the comment was written by the given user.
func (c *Comment) AuthoredBy(userID uuid.UUID) bool {
	return c.AuthorID == userID
}
