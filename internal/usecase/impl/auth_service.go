// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "critica/internal/delivery/context"
	"critica/internal/domain/entity"
	domainerrors "critica/internal/domain/errors"
	"critica/internal/domain/repository"
	"critica/internal/domain/service"
	"critica/internal/usecase"
)

// reservedUsername is claimed by the self-service profile endpoint and can
// never name an account; the comparison is case-insensitive.
const reservedUsername = "me"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	codeService  service.CodeService
	codeSender   service.CodeSender
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	CodeService  service.CodeService
	CodeSender   service.CodeSender
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		codeService:  params.CodeService,
		codeSender:   params.CodeSender,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers the (username, email) pair or re-uses the matching
// account, then issues and dispatches a fresh confirmation code. Re-signup
// with the same pair is the supported "resend my code" path.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	if strings.EqualFold(input.Username, reservedUsername) {
		return nil, domainerrors.ErrReservedUsername
	}

	var account *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, err := userRepo.FindByUsernameEmail(ctx, input.Username, input.Email)
		if err == nil {
			account = existing

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up account for signup")
		}

		// No exact match. A create will collide on the unique indexes when
		// the username or email is taken by a different pair.
		account = &entity.User{
			ID:        uuid.New(),
			Username:  input.Username,
			Email:     input.Email,
			Role:      entity.RoleUser,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		return userRepo.Create(ctx, account)
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	code, err := srv.codeService.IssueCode(ctx, account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue confirmation code")
	}
	if err := srv.codeSender.SendCode(ctx, account, code); err != nil {
		return nil, errors.Wrap(err, "failed to send confirmation code")
	}

	srv.log(ctx).Info("Confirmation code dispatched", slog.String("username", account.Username))

	return &usecase.SignupOutput{Username: account.Username, Email: account.Email}, nil
}

// IssueToken exchanges a valid confirmation code for a bearer token.
func (srv *authService) IssueToken(ctx context.Context, input *usecase.IssueTokenInput) (*usecase.IssueTokenOutput, error) {
	account, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to look up account for token issuance")
	}

	ok, err := srv.codeService.VerifyCode(ctx, account.Username, input.ConfirmationCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify confirmation code")
	}
	if !ok {
		srv.log(ctx).Warn("Confirmation code rejected", slog.String("username", account.Username))

		return nil, domainerrors.ErrInvalidConfirmationCode
	}

	token, err := srv.tokenService.MintToken(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint access token")
	}

	return &usecase.IssueTokenOutput{Token: token}, nil
}
