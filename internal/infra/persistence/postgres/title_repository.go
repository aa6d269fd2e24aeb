package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"critica/internal/domain/entity"
	domainerrors "critica/internal/domain/errors"
	"critica/internal/domain/repository"
	"critica/internal/infra/persistence/model"
)

// titleRepository implements the repository.TitleRepository interface using GORM.
type titleRepository struct {
	db *gorm.DB
}

// NewTitleRepository is the constructor for titleRepository.
func NewTitleRepository(db *gorm.DB) repository.TitleRepository {
	return &titleRepository{db: db}
}

// FindByID retrieves a title with its category and genres resolved.
func (repo *titleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Title, error) {
	var titleM model.TitleModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Genres").
		Where("id = ?", id).
		First(&titleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTitleNotFound
		}

		return nil, errors.Wrap(err, "failed to find title by id")
	}

	return toTitleDomain(&titleM), nil
}

// List returns titles matching the query, ordered by name.
func (repo *titleRepository) List(ctx context.Context, query repository.TitleQuery) ([]*entity.Title, error) {
	tx := repo.db.WithContext(ctx).
		Model(&model.TitleModel{}).
		Preload("Category").
		Preload("Genres").
		Order("name")

	if query.Name != "" {
		tx = tx.Where("name ILIKE ?", "%"+query.Name+"%")
	}
	if query.Year != nil {
		tx = tx.Where("year = ?", *query.Year)
	}
	if query.CategorySlug != "" {
		tx = tx.Joins("JOIN categories ON categories.id = titles.category_id").
			Where("categories.slug = ?", query.CategorySlug)
	}
	if query.GenreSlug != "" {
		tx = tx.Joins("JOIN title_genres ON title_genres.title_model_id = titles.id").
			Joins("JOIN genres ON genres.id = title_genres.genre_model_id").
			Where("genres.slug = ?", query.GenreSlug)
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}
	if query.Offset > 0 {
		tx = tx.Offset(query.Offset)
	}

	var models []model.TitleModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list titles")
	}

	titles := make([]*entity.Title, 0, len(models))
	for i := range models {
		titles = append(titles, toTitleDomain(&models[i]))
	}

	return titles, nil
}

// Create persists a new title together with its taxonomy links.
func (repo *titleRepository) Create(ctx context.Context, title *entity.Title) error {
	titleM := fromTitleDomain(title)

	// Genres already exist; only the join rows should be written.
	err := repo.db.WithContext(ctx).
		Omit("Genres.*", "Category").
		Create(titleM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("referenced taxonomy entry does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create title")
	}

	title.ID = titleM.ID
	title.CreatedAt = titleM.CreatedAt
	title.UpdatedAt = titleM.UpdatedAt

	return nil
}

// Update modifies an existing title, replacing its genre set.
func (repo *titleRepository) Update(ctx context.Context, title *entity.Title) error {
	titleM := fromTitleDomain(title)

	err := repo.db.WithContext(ctx).
		Model(&model.TitleModel{ID: title.ID}).
		Select("Name", "Year", "Description", "CategoryID").
		Updates(map[string]any{
			"name":        titleM.Name,
			"year":        titleM.Year,
			"description": titleM.Description,
			"category_id": titleM.CategoryID,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update title")
	}

	err = repo.db.WithContext(ctx).
		Model(&model.TitleModel{ID: title.ID}).
		Association("Genres").
		Replace(titleM.Genres)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update title genres")
	}

	return nil
}

// Delete removes a title; reviews and comments follow through the cascade.
func (repo *titleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TitleModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete title")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTitleNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toTitleDomain(data *model.TitleModel) *entity.Title {
	if data == nil {
		return nil
	}

	genres := make([]entity.Genre, 0, len(data.Genres))
	for _, genreM := range data.Genres {
		genres = append(genres, entity.Genre{
			ID:   genreM.ID,
			Name: genreM.Name,
			Slug: genreM.Slug,
		})
	}

	var category *entity.Category
	if data.Category != nil {
		category = &entity.Category{
			ID:   data.Category.ID,
			Name: data.Category.Name,
			Slug: data.Category.Slug,
		}
	}

	return &entity.Title{
		ID:          data.ID,
		Name:        data.Name,
		Year:        data.Year,
		Description: data.Description,
		Category:    category,
		Genres:      genres,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTitleDomain(data *entity.Title) *model.TitleModel {
	if data == nil {
		return nil
	}

	genres := make([]model.GenreModel, 0, len(data.Genres))
	for _, genre := range data.Genres {
		genres = append(genres, model.GenreModel{ID: genre.ID})
	}

	var categoryID *uuid.UUID
	if data.Category != nil {
		id := data.Category.ID
		categoryID = &id
	}

	return &model.TitleModel{
		ID:          data.ID,
		Name:        data.Name,
		Year:        data.Year,
		Description: data.Description,
		CategoryID:  categoryID,
		Genres:      genres,
	}
}
