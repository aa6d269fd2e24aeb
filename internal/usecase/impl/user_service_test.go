package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"critica/internal/domain/entity"
	domainerrors "critica/internal/domain/errors"
	"critica/internal/domain/repository"
	mockRepo "critica/internal/mocks/repository"
	"critica/internal/usecase"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func TestUserService_ListUsers_RequiresAdmin(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	query := &usecase.UserQueryInput{}

	_, err := fx.service.ListUsers(ctx, nil, query)
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = fx.service.ListUsers(ctx, newTestUser(entity.RoleUser), query)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.ListUsers(ctx, newTestUser(entity.RoleModerator), query)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_ListUsers_AsAdmin(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		List(ctx, repository.UserQuery{Search: "al", Limit: 10}).
		Return([]*entity.User{newTestUser(entity.RoleUser)}, nil)

	outputs, err := fx.service.ListUsers(ctx, newTestUser(entity.RoleAdmin), &usecase.UserQueryInput{Search: "al", Limit: 10})

	require.NoError(t, err)
	assert.Len(t, outputs, 1)
}

func TestUserService_ListUsers_SuperuserActsAsAdmin(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	superuser := newTestUser(entity.RoleUser)
	superuser.IsSuperuser = true

	fx.userRepo.EXPECT().
		List(ctx, repository.UserQuery{}).
		Return(nil, nil)

	_, err := fx.service.ListUsers(ctx, superuser, &usecase.UserQueryInput{})
	require.NoError(t, err)
}

func TestUserService_CreateUser_ReservedUsername(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.CreateUser(context.Background(), newTestUser(entity.RoleAdmin), &usecase.CreateUserInput{
		Username: "ME",
		Email:    "me@example.com",
	})

	require.ErrorIs(t, err, domainerrors.ErrReservedUsername)
}

func TestUserService_CreateUser_DefaultsToUserRole(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	var created *entity.User
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			created = user
		}).
		Return(nil)

	output, err := fx.service.CreateUser(ctx, newTestUser(entity.RoleAdmin), &usecase.CreateUserInput{
		Username: "bob",
		Email:    "bob@example.com",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.RoleUser, created.Role)
	assert.Equal(t, "user", output.Role)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUser(ctx, newTestUser(entity.RoleAdmin), "ghost")
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_DeleteUser_AsAdmin(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().Delete(ctx, "bob").Return(nil)

	require.NoError(t, fx.service.DeleteUser(ctx, newTestUser(entity.RoleAdmin), "bob"))
}

func TestUserService_GetMe_Anonymous(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.GetMe(context.Background(), nil)
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestUserService_GetMe_ReturnsOwnProfile(t *testing.T) {
	fx := createTestUserService(t)

	actor := newTestUser(entity.RoleUser)
	actor.Bio = "hello"

	output, err := fx.service.GetMe(context.Background(), actor)

	require.NoError(t, err)
	assert.Equal(t, actor.Username, output.Username)
	assert.Equal(t, "hello", output.Bio)
}

func TestUserService_UpdateMe_RoleIgnoredForNonAdmin(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	actor := newTestUser(entity.RoleUser)
	stored := *actor
	requestedRole := "admin"
	bio := "new bio"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(&stored, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, entity.RoleUser, user.Role)
					assert.Equal(t, "new bio", user.Bio)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.UpdateMe(ctx, actor, &usecase.UpdateMeInput{Role: &requestedRole, Bio: &bio})

	require.NoError(t, err)
	assert.Equal(t, "user", output.Role)
}

func TestUserService_UpdateMe_AdminMayChangeOwnRole(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	actor := newTestUser(entity.RoleAdmin)
	stored := *actor
	requestedRole := "moderator"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(&stored, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.UpdateMe(ctx, actor, &usecase.UpdateMeInput{Role: &requestedRole})

	require.NoError(t, err)
	assert.Equal(t, "moderator", output.Role)
}
