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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager    repository.TransactionManager
	titleRepo    repository.TitleRepository
	genreRepo    repository.GenreRepository
	categoryRepo repository.CategoryRepository
	reviewRepo   repository.ReviewRepository
	policy       permission.Catalog
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TitleRepo    repository.TitleRepository
	GenreRepo    repository.GenreRepository
	CategoryRepo repository.CategoryRepository
	ReviewRepo   repository.ReviewRepository
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:    params.TxManager,
		titleRepo:    params.TitleRepo,
		genreRepo:    params.GenreRepo,
		categoryRepo: params.CategoryRepo,
		reviewRepo:   params.ReviewRepo,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// titleOutput assembles the outward representation with the current rating.
func (srv *catalogService) titleOutput(ctx context.Context, title *entity.Title) (*usecase.TitleOutput, error) {
	scores, err := srv.reviewRepo.ScoresByTitle(ctx, title.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load scores for rating")
	}

	return usecase.NewTitleOutput(title, rating.Average(scores)), nil
}

// ListTitles returns titles matching the query, each with its rating.
func (srv *catalogService) ListTitles(ctx context.Context, actor *entity.User, query *usecase.TitleQueryInput) ([]*usecase.TitleOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodList); err != nil {
		return nil, err
	}

	titles, err := srv.titleRepo.List(ctx, repository.TitleQuery{
		Name:         query.Name,
		Year:         query.Year,
		GenreSlug:    query.Genre,
		CategorySlug: query.Category,
		Limit:        query.Limit,
		Offset:       query.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list titles")
	}

	outputs := make([]*usecase.TitleOutput, 0, len(titles))
	for _, title := range titles {
		output, err := srv.titleOutput(ctx, title)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}

	return outputs, nil
}

// GetTitle returns a single title with its rating.
func (srv *catalogService) GetTitle(ctx context.Context, actor *entity.User, titleID uuid.UUID) (*usecase.TitleOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodRetrieve); err != nil {
		return nil, err
	}

	title, err := srv.findTitle(ctx, srv.titleRepo, titleID)
	if err != nil {
		return nil, err
	}

	return srv.titleOutput(ctx, title)
}

// CreateTitle creates a title with its taxonomy links. Admin only.
func (srv *catalogService) CreateTitle(ctx context.Context, actor *entity.User, input *usecase.TitleInput) (*usecase.TitleOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodCreate); err != nil {
		return nil, err
	}
	if err := rating.ValidateReleaseYear(input.Year, time.Now().Year()); err != nil {
		return nil, err
	}

	var created *entity.Title
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		category, genres, err := srv.resolveTaxonomy(ctx, repoFactory, input)
		if err != nil {
			return err
		}

		created = &entity.Title{
			ID:          uuid.New(),
			Name:        input.Name,
			Year:        input.Year,
			Description: input.Description,
			Category:    category,
			Genres:      genres,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		return repoFactory.TitleRepo().Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Title created", slog.String("name", created.Name), slog.Any("titleID", created.ID))

	// A fresh title has no reviews, so the rating is necessarily null.
	return usecase.NewTitleOutput(created, nil), nil
}

// UpdateTitle replaces the title's fields and genre set. Admin only.
func (srv *catalogService) UpdateTitle(ctx context.Context, actor *entity.User, titleID uuid.UUID, input *usecase.TitleInput) (*usecase.TitleOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodUpdate); err != nil {
		return nil, err
	}
	if err := rating.ValidateReleaseYear(input.Year, time.Now().Year()); err != nil {
		return nil, err
	}

	var updated *entity.Title
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		titleRepo := repoFactory.TitleRepo()

		title, err := srv.findTitle(ctx, titleRepo, titleID)
		if err != nil {
			return err
		}

		category, genres, err := srv.resolveTaxonomy(ctx, repoFactory, input)
		if err != nil {
			return err
		}

		title.Name = input.Name
		title.Year = input.Year
		title.Description = input.Description
		title.Category = category
		title.Genres = genres
		title.UpdatedAt = time.Now()

		if err := titleRepo.Update(ctx, title); err != nil {
			return err
		}
		updated = title

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.titleOutput(ctx, updated)
}

// DeleteTitle removes a title; its reviews and their comments go with it.
// Admin only.
func (srv *catalogService) DeleteTitle(ctx context.Context, actor *entity.User, titleID uuid.UUID) error {
	if err := permission.Check(srv.policy, actor, permission.MethodDelete); err != nil {
		return err
	}

	if err := srv.titleRepo.Delete(ctx, titleID); err != nil {
		if errors.Is(err, repository.ErrTitleNotFound) {
			return domainerrors.ErrTitleNotFound
		}

		return errors.Wrap(err, "failed to delete title")
	}

	srv.log(ctx).Info("Title deleted", slog.Any("titleID", titleID))

	return nil
}

// ListGenres returns genres matching the query.
func (srv *catalogService) ListGenres(ctx context.Context, actor *entity.User, query *usecase.TaxonomyQueryInput) ([]*usecase.TaxonomyOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodList); err != nil {
		return nil, err
	}

	genres, err := srv.genreRepo.List(ctx, repository.TaxonomyQuery{
		Search: query.Search,
		Limit:  query.Limit,
		Offset: query.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list genres")
	}

	outputs := make([]*usecase.TaxonomyOutput, 0, len(genres))
	for _, genre := range genres {
		outputs = append(outputs, &usecase.TaxonomyOutput{Name: genre.Name, Slug: genre.Slug})
	}

	return outputs, nil
}

// CreateGenre creates a genre. Admin only.
func (srv *catalogService) CreateGenre(ctx context.Context, actor *entity.User, input *usecase.TaxonomyInput) (*usecase.TaxonomyOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodCreate); err != nil {
		return nil, err
	}

	genre := &entity.Genre{ID: uuid.New(), Name: input.Name, Slug: input.Slug}
	if err := srv.genreRepo.Create(ctx, genre); err != nil {
		return nil, err
	}

	return &usecase.TaxonomyOutput{Name: genre.Name, Slug: genre.Slug}, nil
}

// DeleteGenre removes a genre by slug. Admin only. Titles carrying it lose
// the link but are otherwise untouched.
func (srv *catalogService) DeleteGenre(ctx context.Context, actor *entity.User, slug string) error {
	if err := permission.Check(srv.policy, actor, permission.MethodDelete); err != nil {
		return err
	}

	if err := srv.genreRepo.Delete(ctx, slug); err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("genre not found")
		}

		return errors.Wrap(err, "failed to delete genre")
	}

	return nil
}

// ListCategories returns categories matching the query.
func (srv *catalogService) ListCategories(ctx context.Context, actor *entity.User, query *usecase.TaxonomyQueryInput) ([]*usecase.TaxonomyOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodList); err != nil {
		return nil, err
	}

	categories, err := srv.categoryRepo.List(ctx, repository.TaxonomyQuery{
		Search: query.Search,
		Limit:  query.Limit,
		Offset: query.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	outputs := make([]*usecase.TaxonomyOutput, 0, len(categories))
	for _, category := range categories {
		outputs = append(outputs, &usecase.TaxonomyOutput{Name: category.Name, Slug: category.Slug})
	}

	return outputs, nil
}

// CreateCategory creates a category. Admin only.
func (srv *catalogService) CreateCategory(ctx context.Context, actor *entity.User, input *usecase.TaxonomyInput) (*usecase.TaxonomyOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodCreate); err != nil {
		return nil, err
	}

	category := &entity.Category{ID: uuid.New(), Name: input.Name, Slug: input.Slug}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return &usecase.TaxonomyOutput{Name: category.Name, Slug: category.Slug}, nil
}

// DeleteCategory removes a category by slug. Admin only. Titles in it fall
// back to uncategorized through the storage-level SET NULL.
func (srv *catalogService) DeleteCategory(ctx context.Context, actor *entity.User, slug string) error {
	if err := permission.Check(srv.policy, actor, permission.MethodDelete); err != nil {
		return err
	}

	if err := srv.categoryRepo.Delete(ctx, slug); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("category not found")
		}

		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

// findTitle translates the repository sentinel into the outward error.
func (srv *catalogService) findTitle(ctx context.Context, titleRepo repository.TitleRepository, titleID uuid.UUID) (*entity.Title, error) {
	title, err := titleRepo.FindByID(ctx, titleID)
	if err != nil {
		if errors.Is(err, repository.ErrTitleNotFound) {
			return nil, domainerrors.ErrTitleNotFound
		}

		return nil, errors.Wrap(err, "failed to find title")
	}

	return title, nil
}

// resolveTaxonomy looks up the referenced category and genres by slug.
// Unknown slugs are an input error, not a missing resource.
func (srv *catalogService) resolveTaxonomy(ctx context.Context, repoFactory repository.RepositoryFactory, input *usecase.TitleInput) (*entity.Category, []entity.Genre, error) {
	var category *entity.Category
	if input.Category != "" {
		found, err := repoFactory.CategoryRepo().FindBySlug(ctx, input.Category)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, nil, domainerrors.ErrValidationFailed.WrapMessage("unknown category slug")
			}

			return nil, nil, errors.Wrap(err, "failed to resolve category")
		}
		category = found
	}

	var genres []entity.Genre
	if len(input.Genres) > 0 {
		found, err := repoFactory.GenreRepo().FindBySlugs(ctx, input.Genres)
		if err != nil {
			if errors.Is(err, repository.ErrGenreNotFound) {
				return nil, nil, domainerrors.ErrValidationFailed.WrapMessage("unknown genre slug")
			}

			return nil, nil, errors.Wrap(err, "failed to resolve genres")
		}
		genres = found
	}

	return category, genres, nil
}
