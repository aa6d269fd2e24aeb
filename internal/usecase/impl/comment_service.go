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
	"critica/internal/domain/repository"
	"critica/internal/usecase"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	txManager   repository.TransactionManager
	reviewRepo  repository.ReviewRepository
	commentRepo repository.CommentRepository
	policy      permission.Moderated
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for commentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ReviewRepo  repository.ReviewRepository
	CommentRepo repository.CommentRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		txManager:   params.TxManager,
		reviewRepo:  params.ReviewRepo,
		commentRepo: params.CommentRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListComments returns the review's comments, newest first.
func (srv *commentService) ListComments(ctx context.Context, actor *entity.User, titleID, reviewID uuid.UUID, page *usecase.PageInput) ([]*usecase.CommentOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodList); err != nil {
		return nil, err
	}
	if err := srv.ensureReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comments, err := srv.commentRepo.ListByReview(ctx, reviewID, repository.Page{Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	outputs := make([]*usecase.CommentOutput, 0, len(comments))
	for _, comment := range comments {
		outputs = append(outputs, usecase.NewCommentOutput(comment))
	}

	return outputs, nil
}

// GetComment returns a single comment scoped to the review and its title.
func (srv *commentService) GetComment(ctx context.Context, actor *entity.User, titleID, reviewID, commentID uuid.UUID) (*usecase.CommentOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodRetrieve); err != nil {
		return nil, err
	}
	if err := srv.ensureReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment, err := srv.findComment(ctx, srv.commentRepo, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	return usecase.NewCommentOutput(comment), nil
}

// CreateComment adds the actor's comment to a review. Any authenticated
// actor; a user may comment the same review any number of times.
func (srv *commentService) CreateComment(ctx context.Context, actor *entity.User, titleID, reviewID uuid.UUID, input *usecase.CommentInput) (*usecase.CommentOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodCreate); err != nil {
		return nil, err
	}

	var created *entity.Comment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ReviewRepo().FindByID(ctx, titleID, reviewID); err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound
			}

			return errors.Wrap(err, "failed to find review for comment")
		}

		created = &entity.Comment{
			ID:             uuid.New(),
			ReviewID:       reviewID,
			AuthorID:       actor.ID,
			AuthorUsername: actor.Username,
			Text:           input.Text,
			CreatedAt:      time.Now(),
		}

		return repoFactory.CommentRepo().Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Comment created", slog.Any("reviewID", reviewID), slog.String("author", actor.Username))

	return usecase.NewCommentOutput(created), nil
}

// UpdateComment replaces the text of an existing comment. Allowed to the
// author, moderators and admins.
func (srv *commentService) UpdateComment(ctx context.Context, actor *entity.User, titleID, reviewID, commentID uuid.UUID, input *usecase.CommentInput) (*usecase.CommentOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodUpdate); err != nil {
		return nil, err
	}
	if err := srv.ensureReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	var updated *entity.Comment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.CommentRepo()

		comment, err := srv.findComment(ctx, commentRepo, reviewID, commentID)
		if err != nil {
			return err
		}
		if err := permission.CheckObject(srv.policy, actor, permission.MethodUpdate, comment); err != nil {
			return err
		}

		comment.Text = input.Text

		if err := commentRepo.Update(ctx, comment); err != nil {
			return err
		}
		updated = comment

		return nil
	})
	if err != nil {
		return nil, err
	}

	return usecase.NewCommentOutput(updated), nil
}

// DeleteComment removes a comment. Allowed to the author, moderators and
// admins.
func (srv *commentService) DeleteComment(ctx context.Context, actor *entity.User, titleID, reviewID, commentID uuid.UUID) error {
	if err := permission.Check(srv.policy, actor, permission.MethodDelete); err != nil {
		return err
	}
	if err := srv.ensureReview(ctx, titleID, reviewID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.CommentRepo()

		comment, err := srv.findComment(ctx, commentRepo, reviewID, commentID)
		if err != nil {
			return err
		}
		if err := permission.CheckObject(srv.policy, actor, permission.MethodDelete, comment); err != nil {
			return err
		}

		return commentRepo.Delete(ctx, comment.ID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Comment deleted", slog.Any("reviewID", reviewID), slog.Any("commentID", commentID))

	return nil
}

// ensureReview confirms the (title, review) pair exists before touching its
// comments.
func (srv *commentService) ensureReview(ctx context.Context, titleID, reviewID uuid.UUID) error {
	if _, err := srv.reviewRepo.FindByID(ctx, titleID, reviewID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to find review")
	}

	return nil
}

// findComment translates the repository sentinel into the outward error.
func (srv *commentService) findComment(ctx context.Context, commentRepo repository.CommentRepository, reviewID, commentID uuid.UUID) (*entity.Comment, error) {
	comment, err := commentRepo.FindByID(ctx, reviewID, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	return comment, nil
}
