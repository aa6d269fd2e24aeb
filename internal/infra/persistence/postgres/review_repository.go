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

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// FindByID retrieves a review scoped to its title.
func (repo *reviewRepository) FindByID(ctx context.Context, titleID, reviewID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("id = ? AND title_id = ?", reviewID, titleID).
		First(&reviewM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// ListByTitle returns the title's reviews, newest first.
func (repo *reviewRepository) ListByTitle(ctx context.Context, titleID uuid.UUID, page repository.Page) ([]*entity.Review, error) {
	tx := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Preload("Author").
		Where("title_id = ?", titleID).
		Order("created_at DESC")
	if page.Limit > 0 {
		tx = tx.Limit(page.Limit)
	}
	if page.Offset > 0 {
		tx = tx.Offset(page.Offset)
	}

	var models []model.ReviewModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(models))
	for i := range models {
		reviews = append(reviews, toReviewDomain(&models[i]))
	}

	return reviews, nil
}

// ScoresByTitle returns all scores for a title, for rating aggregation.
func (repo *reviewRepository) ScoresByTitle(ctx context.Context, titleID uuid.UUID) ([]int, error) {
	var scores []int
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("title_id = ?", titleID).
		Pluck("score", &scores).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load review scores")
	}

	return scores, nil
}

// Create persists a new review. A unique-index hit on (author_id, title_id)
// surfaces as the same conflict error the application pre-check produces, so
// the caller cannot observe which layer caught the duplicate.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrReviewAlreadyExists.WrapMessage("duplicate review for (author, title)")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidScore.WrapMessage("score rejected by storage check constraint")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTitleNotFound.WrapMessage("review references a missing title")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// Update modifies the text and score of an existing review.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Select("Text", "Score").
		Updates(model.ReviewModel{Text: review.Text, Score: review.Score}).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidScore.WrapMessage("score rejected by storage check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update review")
	}

	return nil
}

// Delete removes a review; its comments go with it through the cascade.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:        data.ID,
		TitleID:   data.TitleID,
		AuthorID:  data.AuthorID,
		Text:      data.Text,
		Score:     data.Score,
		CreatedAt: data.CreatedAt,
	}
	if data.Author != nil {
		review.AuthorUsername = data.Author.Username
	}

	return review
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:       data.ID,
		TitleID:  data.TitleID,
		AuthorID: data.AuthorID,
		Text:     data.Text,
		Score:    data.Score,
	}
}
