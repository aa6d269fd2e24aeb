package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"critica/internal/domain/entity"
)

// ErrTitleNotFound is returned when a catalog title is not found.
var ErrTitleNotFound = errors.New("title not found")

// TitleQuery filters and paginates the title listing.
type TitleQuery struct {
	Name         string // Substring match on name.
	Year         *int   // Exact release year.
	GenreSlug    string // Titles carrying the genre.
	CategorySlug string // Titles in the category.
	Limit        int
	Offset       int
}

// TitleRepository defines persistence operations for catalog titles.
type TitleRepository interface {
	// FindByID retrieves a title with its category and genres resolved.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Title, error)

	// List returns titles matching the query, ordered by name.
	List(ctx context.Context, query TitleQuery) ([]*entity.Title, error)

	// Create persists a new title together with its taxonomy links.
	Create(ctx context.Context, title *entity.Title) error

	// Update modifies an existing title, replacing its genre set.
	Update(ctx context.Context, title *entity.Title) error

	// Delete removes a title. Reviews and their comments go with it
	// through the storage-level cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
