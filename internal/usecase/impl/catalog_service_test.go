package impl

import (
	"context"
	"testing"
	"time"

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

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	txManager    *mockRepo.MockTransactionManager
	titleRepo    *mockRepo.MockTitleRepository
	genreRepo    *mockRepo.MockGenreRepository
	categoryRepo *mockRepo.MockCategoryRepository
	reviewRepo   *mockRepo.MockReviewRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	titleRepo := mockRepo.NewMockTitleRepository(t)
	genreRepo := mockRepo.NewMockGenreRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		TxManager:    txManager,
		TitleRepo:    titleRepo,
		GenreRepo:    genreRepo,
		CategoryRepo: categoryRepo,
		ReviewRepo:   reviewRepo,
		Logger:       newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:      service,
		txManager:    txManager,
		titleRepo:    titleRepo,
		genreRepo:    genreRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
	}
}

func TestCatalogService_GetTitle_OpenToAnonymous(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	title := &entity.Title{ID: uuid.New(), Name: "Solaris", Year: 1972}

	fx.titleRepo.EXPECT().FindByID(ctx, title.ID).Return(title, nil)
	fx.reviewRepo.EXPECT().ScoresByTitle(ctx, title.ID).Return([]int{6, 8, 10}, nil)

	output, err := fx.service.GetTitle(ctx, nil, title.ID)

	require.NoError(t, err)
	require.NotNil(t, output.Rating)
	assert.InDelta(t, 8.0, *output.Rating, 0.0001)
}

func TestCatalogService_GetTitle_NoReviewsMeansNullRating(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	title := &entity.Title{ID: uuid.New(), Name: "Stalker", Year: 1979}

	fx.titleRepo.EXPECT().FindByID(ctx, title.ID).Return(title, nil)
	fx.reviewRepo.EXPECT().ScoresByTitle(ctx, title.ID).Return(nil, nil)

	output, err := fx.service.GetTitle(ctx, nil, title.ID)

	require.NoError(t, err)
	assert.Nil(t, output.Rating)
}

func TestCatalogService_GetTitle_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.titleRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrTitleNotFound)

	_, err := fx.service.GetTitle(ctx, nil, id)
	require.ErrorIs(t, err, domainerrors.ErrTitleNotFound)
}

func TestCatalogService_CreateTitle_RequiresAdmin(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	input := &usecase.TitleInput{Name: "Solaris", Year: 1972}

	_, err := fx.service.CreateTitle(ctx, nil, input)
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = fx.service.CreateTitle(ctx, newTestUser(entity.RoleUser), input)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.CreateTitle(ctx, newTestUser(entity.RoleModerator), input)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCatalogService_CreateTitle_RejectsBadYears(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	admin := newTestUser(entity.RoleAdmin)

	for _, year := range []int{-1, time.Now().Year() + 1} {
		_, err := fx.service.CreateTitle(ctx, admin, &usecase.TitleInput{Name: "X", Year: year})
		require.ErrorIs(t, err, domainerrors.ErrInvalidReleaseYear)
	}
}

func TestCatalogService_CreateTitle_ResolvesTaxonomy(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	admin := newTestUser(entity.RoleAdmin)

	category := &entity.Category{ID: uuid.New(), Name: "Movies", Slug: "movies"}
	genres := []entity.Genre{{ID: uuid.New(), Name: "Drama", Slug: "drama"}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTitleRepo := mockRepo.NewMockTitleRepository(t)
			mockGenreRepo := mockRepo.NewMockGenreRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().TitleRepo().Return(mockTitleRepo)
			mockFactory.EXPECT().GenreRepo().Return(mockGenreRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockCategoryRepo.EXPECT().FindBySlug(ctx, "movies").Return(category, nil)
			mockGenreRepo.EXPECT().FindBySlugs(ctx, []string{"drama"}).Return(genres, nil)
			mockTitleRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Title")).
				Run(func(ctx context.Context, title *entity.Title) {
					assert.Equal(t, "movies", title.Category.Slug)
					assert.Len(t, title.Genres, 1)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.CreateTitle(ctx, admin, &usecase.TitleInput{
		Name:     "Solaris",
		Year:     1972,
		Genres:   []string{"drama"},
		Category: "movies",
	})

	require.NoError(t, err)
	assert.Nil(t, output.Rating)
	require.NotNil(t, output.Category)
	assert.Equal(t, "movies", output.Category.Slug)
}

func TestCatalogService_CreateTitle_UnknownGenreSlug(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	admin := newTestUser(entity.RoleAdmin)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGenreRepo := mockRepo.NewMockGenreRepository(t)

			mockFactory.EXPECT().GenreRepo().Return(mockGenreRepo)
			mockGenreRepo.EXPECT().FindBySlugs(ctx, []string{"nope"}).Return(nil, repository.ErrGenreNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.CreateTitle(ctx, admin, &usecase.TitleInput{
		Name:   "Solaris",
		Year:   1972,
		Genres: []string{"nope"},
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateGenre_RequiresAdmin(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	_, err := fx.service.CreateGenre(ctx, newTestUser(entity.RoleUser), &usecase.TaxonomyInput{Name: "Drama", Slug: "drama"})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCatalogService_ListGenres_OpenToAnonymous(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.genreRepo.EXPECT().
		List(ctx, repository.TaxonomyQuery{}).
		Return([]*entity.Genre{{Name: "Drama", Slug: "drama"}}, nil)

	outputs, err := fx.service.ListGenres(ctx, nil, &usecase.TaxonomyQueryInput{})

	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, "drama", outputs[0].Slug)
}

func TestCatalogService_DeleteCategory_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().Delete(ctx, "ghost").Return(repository.ErrCategoryNotFound)

	err := fx.service.DeleteCategory(ctx, newTestUser(entity.RoleAdmin), "ghost")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
