package entity

import (
	"time"

	"github.com/google/uuid"
)

// Title is a reviewable creative work in the catalog. Its lifecycle is
// independent of its reviews: deleting a title cascades to the reviews
// (and through them to comments), never the other way around.
type Title struct {
	ID          uuid.UUID // The unique identifier for the title.
	Name        string    // Display name of the work.
	Year        int       // Release year; never negative and never in the future.
	Description string    // Free-form description.
	Category    *Category // Optional single category, nil when uncategorized.
	Genres      []Genre   // Genres attached to the title, many-to-many.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Genre is a flat taxonomy node identified by a unique slug.
type Genre struct {
	ID   uuid.UUID
	Name string // Human-readable display name.
	Slug string // Unique URL-safe identifier.
}

// Category is a flat taxonomy node identified by a unique slug.
// A title belongs to at most one category.
type Category struct {
	ID   uuid.UUID
	Name string // Human-readable display name.
	Slug string // Unique URL-safe identifier.
}
