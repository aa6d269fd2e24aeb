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

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	txManager  *mockRepo.MockTransactionManager
	titleRepo  *mockRepo.MockTitleRepository
	reviewRepo *mockRepo.MockReviewRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	titleRepo := mockRepo.NewMockTitleRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)

	service := NewReviewService(ReviewServiceParams{
		TxManager:  txManager,
		TitleRepo:  titleRepo,
		ReviewRepo: reviewRepo,
		Logger:     newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:    service,
		txManager:  txManager,
		titleRepo:  titleRepo,
		reviewRepo: reviewRepo,
	}
}

// expectCreateTransaction wires a transactional factory whose title lookup
// succeeds and whose review repo behaves per the given callbacks.
func (fx reviewServiceFixtures) expectCreateTransaction(
	t *testing.T,
	ctx context.Context,
	titleID uuid.UUID,
	existing []*entity.Review,
	createErr error,
) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTitleRepo := mockRepo.NewMockTitleRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().TitleRepo().Return(mockTitleRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)

			mockTitleRepo.EXPECT().
				FindByID(ctx, titleID).
				Return(&entity.Title{ID: titleID, Name: "Solaris", Year: 1972}, nil)
			mockReviewRepo.EXPECT().
				ListByTitle(ctx, titleID, repository.Page{}).
				Return(existing, nil)

			mockReviewRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Review")).
				Return(createErr)

			return fn(mockFactory)
		})
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	titleID := uuid.New()

	fx.expectCreateTransaction(t, ctx, titleID, nil, nil)

	output, err := fx.service.CreateReview(ctx, actor, titleID, &usecase.ReviewInput{Text: "great", Score: 8})

	require.NoError(t, err)
	assert.Equal(t, actor.Username, output.Author)
	assert.Equal(t, 8, output.Score)
}

func TestReviewService_CreateReview_Anonymous(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.CreateReview(context.Background(), nil, uuid.New(), &usecase.ReviewInput{Text: "x", Score: 5})
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestReviewService_CreateReview_ScoreOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)

	for _, score := range []int{-1, 11} {
		_, err := fx.service.CreateReview(ctx, actor, uuid.New(), &usecase.ReviewInput{Text: "x", Score: score})
		require.ErrorIs(t, err, domainerrors.ErrInvalidScore)
	}
}

func TestReviewService_CreateReview_SecondReviewConflicts(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	titleID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTitleRepo := mockRepo.NewMockTitleRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().TitleRepo().Return(mockTitleRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)

			mockTitleRepo.EXPECT().
				FindByID(ctx, titleID).
				Return(&entity.Title{ID: titleID}, nil)
			// The actor already has a review; the pre-check must refuse
			// before any create reaches storage.
			mockReviewRepo.EXPECT().
				ListByTitle(ctx, titleID, repository.Page{}).
				Return([]*entity.Review{{ID: uuid.New(), TitleID: titleID, AuthorID: actor.ID, Score: 7}}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.CreateReview(ctx, actor, titleID, &usecase.ReviewInput{Text: "again", Score: 9})

	require.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
}

func TestReviewService_CreateReview_ConcurrentDuplicateSurfacesSameConflict(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	titleID := uuid.New()

	// The pre-check saw no duplicate, but a concurrent create won the race
	// and storage rejects on the unique index. The caller sees the same
	// conflict error either way.
	storageConflict := domainerrors.ErrReviewAlreadyExists.WrapMessage("duplicate review for (author, title)")
	fx.expectCreateTransaction(t, ctx, titleID, nil, storageConflict)

	_, err := fx.service.CreateReview(ctx, actor, titleID, &usecase.ReviewInput{Text: "racing", Score: 6})

	require.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
}

func TestReviewService_CreateReview_TitleMissing(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	titleID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTitleRepo := mockRepo.NewMockTitleRepository(t)

			mockFactory.EXPECT().TitleRepo().Return(mockTitleRepo)
			mockTitleRepo.EXPECT().FindByID(ctx, titleID).Return(nil, repository.ErrTitleNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.CreateReview(ctx, actor, titleID, &usecase.ReviewInput{Text: "x", Score: 5})

	require.ErrorIs(t, err, domainerrors.ErrTitleNotFound)
}

func TestReviewService_UpdateReview_ForbiddenForStranger(t *testing.T) {
	fx := createTestReviewService(t)
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
				Return(&entity.Review{ID: reviewID, TitleID: titleID, AuthorID: uuid.New(), Score: 3}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.UpdateReview(ctx, actor, titleID, reviewID, &usecase.ReviewInput{Text: "mine now", Score: 1})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReviewService_DeleteReview_ModeratorMayDelete(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	moderator := newTestUser(entity.RoleModerator)
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
				Return(&entity.Review{ID: reviewID, TitleID: titleID, AuthorID: uuid.New(), Score: 2}, nil)
			mockReviewRepo.EXPECT().Delete(ctx, reviewID).Return(nil)

			return fn(mockFactory)
		})

	require.NoError(t, fx.service.DeleteReview(ctx, moderator, titleID, reviewID))
}

func TestReviewService_ListReviews_TitleMissing(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	titleID := uuid.New()

	fx.titleRepo.EXPECT().FindByID(ctx, titleID).Return(nil, repository.ErrTitleNotFound)

	_, err := fx.service.ListReviews(ctx, nil, titleID, &usecase.PageInput{})
	require.ErrorIs(t, err, domainerrors.ErrTitleNotFound)
}

func TestReviewService_ListReviews_NewestFirstPassthrough(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	titleID := uuid.New()

	fx.titleRepo.EXPECT().FindByID(ctx, titleID).Return(&entity.Title{ID: titleID}, nil)
	fx.reviewRepo.EXPECT().
		ListByTitle(ctx, titleID, repository.Page{Limit: 2}).
		Return([]*entity.Review{
			{ID: uuid.New(), AuthorUsername: "bob", Score: 9},
			{ID: uuid.New(), AuthorUsername: "alice", Score: 4},
		}, nil)

	outputs, err := fx.service.ListReviews(ctx, nil, titleID, &usecase.PageInput{Limit: 2})

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "bob", outputs[0].Author)
}
