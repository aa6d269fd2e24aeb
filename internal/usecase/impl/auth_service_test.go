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
	mockSvc "critica/internal/mocks/service"
	"critica/internal/usecase"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	codeService  *mockSvc.MockCodeService
	codeSender   *mockSvc.MockCodeSender
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	codeService := mockSvc.NewMockCodeService(t)
	codeSender := mockSvc.NewMockCodeSender(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		CodeService:  codeService,
		CodeSender:   codeSender,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		codeService:  codeService,
		codeSender:   codeSender,
		tokenService: tokenService,
	}
}

func TestAuthService_Signup_NewUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{Username: "alice", Email: "alice@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUsernameEmail(ctx, "alice", "alice@example.com").
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.codeService.EXPECT().
		IssueCode(ctx, mock.AnythingOfType("*entity.User")).
		Return("A2C4E6G8", nil)
	fx.codeSender.EXPECT().
		SendCode(ctx, mock.AnythingOfType("*entity.User"), "A2C4E6G8").
		Return(nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "alice", output.Username)
	assert.Equal(t, "alice@example.com", output.Email)
}

func TestAuthService_Signup_ExistingPairResendsCode(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com", Role: entity.RoleUser}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			// Exact match means no create, just a fresh code.
			mockUserRepo.EXPECT().
				FindByUsernameEmail(ctx, "alice", "alice@example.com").
				Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.codeService.EXPECT().IssueCode(ctx, existing).Return("B3D5F7H9", nil)
	fx.codeSender.EXPECT().SendCode(ctx, existing, "B3D5F7H9").Return(nil)

	output, err := fx.service.Signup(ctx, &usecase.SignupInput{Username: "alice", Email: "alice@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "alice", output.Username)
}

func TestAuthService_Signup_ReservedUsername(t *testing.T) {
	fx := createTestAuthService(t)

	for _, username := range []string{"me", "Me", "ME"} {
		_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
			Username: username,
			Email:    "me@example.com",
		})

		require.ErrorIs(t, err, domainerrors.ErrReservedUsername)
	}
}

func TestAuthService_IssueToken_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.User{ID: uuid.New(), Username: "alice", Role: entity.RoleUser}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(account, nil)
	fx.codeService.EXPECT().VerifyCode(ctx, "alice", "A2C4E6G8").Return(true, nil)
	fx.tokenService.EXPECT().MintToken(account).Return("signed.jwt.token", nil)

	output, err := fx.service.IssueToken(ctx, &usecase.IssueTokenInput{
		Username:         "alice",
		ConfirmationCode: "A2C4E6G8",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.Token)
}

func TestAuthService_IssueToken_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.IssueToken(ctx, &usecase.IssueTokenInput{
		Username:         "ghost",
		ConfirmationCode: "A2C4E6G8",
	})

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_IssueToken_WrongCode(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.User{ID: uuid.New(), Username: "alice", Role: entity.RoleUser}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(account, nil)
	fx.codeService.EXPECT().VerifyCode(ctx, "alice", "WRONG").Return(false, nil)

	_, err := fx.service.IssueToken(ctx, &usecase.IssueTokenInput{
		Username:         "alice",
		ConfirmationCode: "WRONG",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidConfirmationCode)
}
