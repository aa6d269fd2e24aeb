package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"critica/internal/domain/entity"
	domainerrors "critica/internal/domain/errors"
	"critica/internal/domain/repository"
	mockRepo "critica/internal/mocks/repository"
	"critica/internal/usecase"
)

// commentServiceFixtures holds all test dependencies for comment service tests.
type commentServiceFixtures struct {
	service     usecase.CommentUsecase
	txManager   *mockRepo.MockTransactionManager
	reviewRepo  *mockRepo.MockReviewRepository
	commentRepo *mockRepo.MockCommentRepository
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)

	service := NewCommentService(CommentServiceParams{
		TxManager:   txManager,
		ReviewRepo:  reviewRepo,
		CommentRepo: commentRepo,
		Logger:      newDiscardLogger(),
	})

	return commentServiceFixtures{
		service:     service,
		txManager:   txManager,
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
	}
}

func TestCommentService_CreateComment_Success(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	titleID := uuid.New()
	reviewID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)

			mockReviewRepo.EXPECT().
				FindByID(ctx, titleID, reviewID).
				Return(&entity.Review{ID: reviewID, TitleID: titleID}, nil)
			mockCommentRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Comment")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.CreateComment(ctx, actor, titleID, reviewID, &usecase.CommentInput{Text: "agreed"})

	require.NoError(t, err)
	assert.Equal(t, actor.Username, output.Author)
	assert.Equal(t, "agreed", output.Text)
}

func TestCommentService_CreateComment_Anonymous(t *testing.T) {
	fx := createTestCommentService(t)

	_, err := fx.service.CreateComment(context.Background(), nil, uuid.New(), uuid.New(), &usecase.CommentInput{Text: "x"})
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestCommentService_CreateComment_ReviewMissing(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	titleID := uuid.New()
	reviewID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().
				FindByID(ctx, titleID, reviewID).
				Return(nil, repository.ErrReviewNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.CreateComment(ctx, actor, titleID, reviewID, &usecase.CommentInput{Text: "x"})

	require.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestCommentService_UpdateComment_AuthorMayEdit(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	titleID := uuid.New()
	reviewID := uuid.New()
	commentID := uuid.New()

	fx.reviewRepo.EXPECT().
		FindByID(ctx, titleID, reviewID).
		Return(&entity.Review{ID: reviewID, TitleID: titleID}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)

			mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)
			mockCommentRepo.EXPECT().
				FindByID(ctx, reviewID, commentID).
				Return(&entity.Comment{ID: commentID, ReviewID: reviewID, AuthorID: actor.ID, Text: "old"}, nil)
			mockCommentRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Comment")).
				Run(func(ctx context.Context, comment *entity.Comment) {
					assert.Equal(t, "new", comment.Text)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.UpdateComment(ctx, actor, titleID, reviewID, commentID, &usecase.CommentInput{Text: "new"})

	require.NoError(t, err)
	assert.Equal(t, "new", output.Text)
}

func TestCommentService_DeleteComment_ForbiddenForStranger(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	titleID := uuid.New()
	reviewID := uuid.New()
	commentID := uuid.New()

	fx.reviewRepo.EXPECT().
		FindByID(ctx, titleID, reviewID).
		Return(&entity.Review{ID: reviewID, TitleID: titleID}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)

			mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)
			mockCommentRepo.EXPECT().
				FindByID(ctx, reviewID, commentID).
				Return(&entity.Comment{ID: commentID, ReviewID: reviewID, AuthorID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteComment(ctx, actor, titleID, reviewID, commentID)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCommentService_ListComments_OpenToAnonymous(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	titleID := uuid.New()
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().
		FindByID(ctx, titleID, reviewID).
		Return(&entity.Review{ID: reviewID, TitleID: titleID}, nil)
	fx.commentRepo.EXPECT().
		ListByReview(ctx, reviewID, repository.Page{}).
		Return([]*entity.Comment{{ID: uuid.New(), AuthorUsername: "bob", Text: "hi"}}, nil)

	outputs, err := fx.service.ListComments(ctx, nil, titleID, reviewID, &usecase.PageInput{})

	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, "bob", outputs[0].Author)
}
