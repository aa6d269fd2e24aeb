package repository

import (
	"context"
	"errors"

	"critica/internal/domain/entity"
)

// Taxonomy not-found and duplicate sentinels shared by genres and categories.
var (
	ErrGenreNotFound    = errors.New("genre not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateSlug    = errors.New("slug already taken")
)

// TaxonomyQuery filters and paginates flat taxonomy listings.
type TaxonomyQuery struct {
	Search string // Substring match on name or slug.
	Limit  int
	Offset int
}

// GenreRepository defines persistence operations for genres.
type GenreRepository interface {
	FindBySlug(ctx context.Context, slug string) (*entity.Genre, error)

	// FindBySlugs resolves several genres at once; any missing slug yields
	// ErrGenreNotFound.
	FindBySlugs(ctx context.Context, slugs []string) ([]entity.Genre, error)

	List(ctx context.Context, query TaxonomyQuery) ([]*entity.Genre, error)

	// Create persists a new genre; a slug collision surfaces as ErrDuplicateSlug.
	Create(ctx context.Context, genre *entity.Genre) error

	Delete(ctx context.Context, slug string) error
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)

	List(ctx context.Context, query TaxonomyQuery) ([]*entity.Category, error)

	// Create persists a new category; a slug collision surfaces as ErrDuplicateSlug.
	Create(ctx context.Context, category *entity.Category) error

	Delete(ctx context.Context, slug string) error
}
