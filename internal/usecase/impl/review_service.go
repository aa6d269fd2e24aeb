package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "critica/internal/delivery/context"
	"critica/internal/domain/entity"
	domainerrors "critica/internal/domain/errors"
	"critica/internal/domain/permission"
	"critica/internal/domain/rating"
	"critica/internal/domain/repository"
	"critica/internal/usecase"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	titleRepo  repository.TitleRepository
	reviewRepo repository.ReviewRepository
	policy     permission.Moderated
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	TitleRepo  repository.TitleRepository
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		titleRepo:  params.TitleRepo,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListReviews returns the title's reviews, newest first.
func (srv *reviewService) ListReviews(ctx context.Context, actor *entity.User, titleID uuid.UUID, page *usecase.PageInput) ([]*usecase.ReviewOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodList); err != nil {
		return nil, err
	}
	if err := srv.ensureTitle(ctx, titleID); err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.ListByTitle(ctx, titleID, repository.Page{Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	outputs := make([]*usecase.ReviewOutput, 0, len(reviews))
	for _, review := range reviews {
		outputs = append(outputs, usecase.NewReviewOutput(review))
	}

	return outputs, nil
}

// GetReview returns a single review scoped to the title.
func (srv *reviewService) GetReview(ctx context.Context, actor *entity.User, titleID, reviewID uuid.UUID) (*usecase.ReviewOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodRetrieve); err != nil {
		return nil, err
	}

	review, err := srv.findReview(ctx, srv.reviewRepo, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	return usecase.NewReviewOutput(review), nil
}

// CreateReview creates the actor's review of a title. The duplicate
// pre-check runs inside the transaction; the storage unique index closes
// the race between two concurrent creates that both pass it, surfacing the
// same conflict error either way.
func (srv *reviewService) CreateReview(ctx context.Context, actor *entity.User, titleID uuid.UUID, input *usecase.ReviewInput) (*usecase.ReviewOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodCreate); err != nil {
		return nil, err
	}
	if err := rating.ValidateScore(input.Score); err != nil {
		return nil, err
	}

	var created *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.TitleRepo().FindByID(ctx, titleID); err != nil {
			if errors.Is(err, repository.ErrTitleNotFound) {
				return domainerrors.ErrTitleNotFound
			}

			return errors.Wrap(err, "failed to find title for review")
		}

		reviewRepo := repoFactory.ReviewRepo()
		existing, err := reviewRepo.ListByTitle(ctx, titleID, repository.Page{})
		if err != nil {
			return errors.Wrap(err, "failed to load existing reviews")
		}
		if err := rating.EnsureSingleReview(actor.ID, existing); err != nil {
			return err
		}

		created = &entity.Review{
			ID:             uuid.New(),
			TitleID:        titleID,
			AuthorID:       actor.ID,
			AuthorUsername: actor.Username,
			Text:           input.Text,
			Score:          input.Score,
			CreatedAt:      time.Now(),
		}

		return reviewRepo.Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Review created",
		slog.Any("titleID", titleID), slog.String("author", actor.Username), slog.Int("score", input.Score))

	return usecase.NewReviewOutput(created), nil
}

// UpdateReview replaces the text and score of an existing review. Allowed to
// the author, moderators and admins.
func (srv *reviewService) UpdateReview(ctx context.Context, actor *entity.User, titleID, reviewID uuid.UUID, input *usecase.ReviewInput) (*usecase.ReviewOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodUpdate); err != nil {
		return nil, err
	}
	if err := rating.ValidateScore(input.Score); err != nil {
		return nil, err
	}

	var updated *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := srv.findReview(ctx, reviewRepo, titleID, reviewID)
		if err != nil {
			return err
		}
		if err := permission.CheckObject(srv.policy, actor, permission.MethodUpdate, review); err != nil {
			return err
		}

		review.Text = input.Text
		review.Score = input.Score

		if err := reviewRepo.Update(ctx, review); err != nil {
			return err
		}
		updated = review

		return nil
	})
	if err != nil {
		return nil, err
	}

	return usecase.NewReviewOutput(updated), nil
}

// DeleteReview removes a review and, through the cascade, its comments.
// Allowed to the author, moderators and admins.
func (srv *reviewService) DeleteReview(ctx context.Context, actor *entity.User, titleID, reviewID uuid.UUID) error {
	if err := permission.Check(srv.policy, actor, permission.MethodDelete); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := srv.findReview(ctx, reviewRepo, titleID, reviewID)
		if err != nil {
			return err
		}
		if err := permission.CheckObject(srv.policy, actor, permission.MethodDelete, review); err != nil {
			return err
		}

		return reviewRepo.Delete(ctx, review.ID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Review deleted", slog.Any("titleID", titleID), slog.Any("reviewID", reviewID))

	return nil
}

func (srv *reviewService) ensureTitle(ctx context.Context, titleID uuid.UUID) error {
	if _, err := srv.titleRepo.FindByID(ctx, titleID); err != nil {
		if errors.Is(err, repository.ErrTitleNotFound) {
			return domainerrors.ErrTitleNotFound
		}

		return errors.Wrap(err, "failed to find title")
	}

	return nil
}

// findReview translates the repository sentinel into the outward error.
func (srv *reviewService) findReview(ctx context.Context, reviewRepo repository.ReviewRepository, titleID, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := reviewRepo.FindByID(ctx, titleID, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}
