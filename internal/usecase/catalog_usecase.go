package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"critica/internal/domain/entity"
)

// CatalogUsecase defines the operations on titles, genres and categories.
// Reads are open to anonymous actors; mutation requires admin privilege.
type CatalogUsecase interface {
	ListTitles(ctx context.Context, actor *entity.User, query *TitleQueryInput) ([]*TitleOutput, error)
	GetTitle(ctx context.Context, actor *entity.User, titleID uuid.UUID) (*TitleOutput, error)
	CreateTitle(ctx context.Context, actor *entity.User, input *TitleInput) (*TitleOutput, error)
	UpdateTitle(ctx context.Context, actor *entity.User, titleID uuid.UUID, input *TitleInput) (*TitleOutput, error)
	DeleteTitle(ctx context.Context, actor *entity.User, titleID uuid.UUID) error

	ListGenres(ctx context.Context, actor *entity.User, query *TaxonomyQueryInput) ([]*TaxonomyOutput, error)
	CreateGenre(ctx context.Context, actor *entity.User, input *TaxonomyInput) (*TaxonomyOutput, error)
	DeleteGenre(ctx context.Context, actor *entity.User, slug string) error

	ListCategories(ctx context.Context, actor *entity.User, query *TaxonomyQueryInput) ([]*TaxonomyOutput, error)
	CreateCategory(ctx context.Context, actor *entity.User, input *TaxonomyInput) (*TaxonomyOutput, error)
	DeleteCategory(ctx context.Context, actor *entity.User, slug string) error
}

// --- Input DTOs ---

// TitleQueryInput filters the title listing.
type TitleQueryInput struct {
	Name     string `query:"name"`
	Year     *int   `query:"year"`
	Genre    string `query:"genre"`
	Category string `query:"category"`
	Limit    int    `query:"limit" validate:"omitempty,gte=0,lte=100"`
	Offset   int    `query:"offset" validate:"omitempty,gte=0"`
}

// TitleInput defines the data to create or update a title. Genres and
// category are referenced by slug.
type TitleInput struct {
	Name        string   `json:"name" validate:"required,max=256"`
	Year        int      `json:"year"`
	Description string   `json:"description"`
	Genres      []string `json:"genre"`
	Category    string   `json:"category"`
}

// TaxonomyQueryInput filters genre and category listings.
type TaxonomyQueryInput struct {
	Search string `query:"search"`
	Limit  int    `query:"limit" validate:"omitempty,gte=0,lte=100"`
	Offset int    `query:"offset" validate:"omitempty,gte=0"`
}

// TaxonomyInput defines the data to create a genre or category.
type TaxonomyInput struct {
	Name string `json:"name" validate:"required,max=100"`
	Slug string `json:"slug" validate:"required,max=50"`
}

// --- Output DTOs ---

// TaxonomyOutput is the outward representation of a genre or category.
type TaxonomyOutput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// TitleOutput is the outward representation of a title. Rating is the mean
// review score, null while the title has no reviews.
type TitleOutput struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Year        int              `json:"year"`
	Description string           `json:"description"`
	Rating      *float64         `json:"rating"`
	Genres      []TaxonomyOutput `json:"genre"`
	Category    *TaxonomyOutput  `json:"category"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NewTitleOutput maps a title entity and its computed rating outward.
func NewTitleOutput(title *entity.Title, ratingValue *float64) *TitleOutput {
	genres := make([]TaxonomyOutput, 0, len(title.Genres))
	for _, genre := range title.Genres {
		genres = append(genres, TaxonomyOutput{Name: genre.Name, Slug: genre.Slug})
	}

	var category *TaxonomyOutput
	if title.Category != nil {
		category = &TaxonomyOutput{Name: title.Category.Name, Slug: title.Category.Slug}
	}

	return &TitleOutput{
		ID:          title.ID,
		Name:        title.Name,
		Year:        title.Year,
		Description: title.Description,
		Rating:      ratingValue,
		Genres:      genres,
		Category:    category,
		CreatedAt:   title.CreatedAt,
	}
}
