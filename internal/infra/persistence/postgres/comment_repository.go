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

// commentRepository implements the repository.CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// FindByID retrieves a comment scoped to its review.
func (repo *commentRepository) FindByID(ctx context.Context, reviewID, commentID uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("id = ? AND review_id = ?", commentID, reviewID).
		First(&commentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return toCommentDomain(&commentM), nil
}

// ListByReview returns the review's comments, newest first.
func (repo *commentRepository) ListByReview(ctx context.Context, reviewID uuid.UUID, page repository.Page) ([]*entity.Comment, error) {
	tx := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Preload("Author").
		Where("review_id = ?", reviewID).
		Order("created_at DESC")
	if page.Limit > 0 {
		tx = tx.Limit(page.Limit)
	}
	if page.Offset > 0 {
		tx = tx.Offset(page.Offset)
	}

	var models []model.CommentModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(models))
	for i := range models {
		comments = append(comments, toCommentDomain(&models[i]))
	}

	return comments, nil
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReviewNotFound.WrapMessage("comment references a missing review")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

func (repo *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ?", comment.ID).
		Select("Text").
		Updates(model.CommentModel{Text: comment.Text}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update comment")
	}

	return nil
}

func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CommentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	comment := &entity.Comment{
		ID:        data.ID,
		ReviewID:  data.ReviewID,
		AuthorID:  data.AuthorID,
		Text:      data.Text,
		CreatedAt: data.CreatedAt,
	}
	if data.Author != nil {
		comment.AuthorUsername = data.Author.Username
	}

	return comment
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:       data.ID,
		ReviewID: data.ReviewID,
		AuthorID: data.AuthorID,
		Text:     data.Text,
	}
}
