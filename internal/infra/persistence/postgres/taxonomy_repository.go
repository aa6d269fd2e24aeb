package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"critica/internal/domain/entity"
	domainerrors "critica/internal/domain/errors"
	"critica/internal/domain/repository"
	"critica/internal/infra/persistence/model"
)

// genreRepository implements the repository.GenreRepository interface using GORM.
type genreRepository struct {
	db *gorm.DB
}

// NewGenreRepository is the constructor for genreRepository.
func NewGenreRepository(db *gorm.DB) repository.GenreRepository {
	return &genreRepository{db: db}
}

func (repo *genreRepository) FindBySlug(ctx context.Context, slug string) (*entity.Genre, error) {
	var genreM model.GenreModel
	err := repo.db.WithContext(ctx).Where("slug = ?", slug).First(&genreM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGenreNotFound
		}

		return nil, errors.Wrap(err, "failed to find genre by slug")
	}

	return &entity.Genre{ID: genreM.ID, Name: genreM.Name, Slug: genreM.Slug}, nil
}

// FindBySlugs resolves several genres at once; any missing slug yields
// repository.ErrGenreNotFound.
func (repo *genreRepository) FindBySlugs(ctx context.Context, slugs []string) ([]entity.Genre, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	var models []model.GenreModel
	err := repo.db.WithContext(ctx).Where("slug IN ?", slugs).Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find genres by slugs")
	}
	if len(models) != len(slugs) {
		return nil, repository.ErrGenreNotFound
	}

	genres := make([]entity.Genre, 0, len(models))
	for _, genreM := range models {
		genres = append(genres, entity.Genre{ID: genreM.ID, Name: genreM.Name, Slug: genreM.Slug})
	}

	return genres, nil
}

func (repo *genreRepository) List(ctx context.Context, query repository.TaxonomyQuery) ([]*entity.Genre, error) {
	tx := repo.db.WithContext(ctx).Model(&model.GenreModel{}).Order("slug")
	if query.Search != "" {
		tx = tx.Where("name ILIKE ? OR slug ILIKE ?", "%"+query.Search+"%", "%"+query.Search+"%")
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}
	if query.Offset > 0 {
		tx = tx.Offset(query.Offset)
	}

	var models []model.GenreModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list genres")
	}

	genres := make([]*entity.Genre, 0, len(models))
	for _, genreM := range models {
		genres = append(genres, &entity.Genre{ID: genreM.ID, Name: genreM.Name, Slug: genreM.Slug})
	}

	return genres, nil
}

func (repo *genreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	genreM := &model.GenreModel{Name: genre.Name, Slug: genre.Slug}

	if err := repo.db.WithContext(ctx).Create(genreM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugAlreadyExists.WrapMessage("genre slug already taken")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create genre")
	}

	genre.ID = genreM.ID

	return nil
}

func (repo *genreRepository) Delete(ctx context.Context, slug string) error {
	result := repo.db.WithContext(ctx).Where("slug = ?", slug).Delete(&model.GenreModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete genre")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGenreNotFound
	}

	return nil
}

// categoryRepository implements the repository.CategoryRepository interface using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var categoryM model.CategoryModel
	err := repo.db.WithContext(ctx).Where("slug = ?", slug).First(&categoryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by slug")
	}

	return &entity.Category{ID: categoryM.ID, Name: categoryM.Name, Slug: categoryM.Slug}, nil
}

func (repo *categoryRepository) List(ctx context.Context, query repository.TaxonomyQuery) ([]*entity.Category, error) {
	tx := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).Order("slug")
	if query.Search != "" {
		tx = tx.Where("name ILIKE ? OR slug ILIKE ?", "%"+query.Search+"%", "%"+query.Search+"%")
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}
	if query.Offset > 0 {
		tx = tx.Offset(query.Offset)
	}

	var models []model.CategoryModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(models))
	for _, categoryM := range models {
		categories = append(categories, &entity.Category{ID: categoryM.ID, Name: categoryM.Name, Slug: categoryM.Slug})
	}

	return categories, nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := &model.CategoryModel{Name: category.Name, Slug: category.Slug}

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugAlreadyExists.WrapMessage("category slug already taken")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID

	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, slug string) error {
	result := repo.db.WithContext(ctx).Where("slug = ?", slug).Delete(&model.CategoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}
