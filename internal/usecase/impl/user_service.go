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
	"critica/internal/domain/permission"
	"critica/internal/domain/repository"
	"critica/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	policy    permission.UserAdmin
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns users matching the query. Admin only.
func (srv *userService) ListUsers(ctx context.Context, actor *entity.User, query *usecase.UserQueryInput) ([]*usecase.UserOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodList); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.List(ctx, repository.UserQuery{
		Search: query.Search,
		Limit:  query.Limit,
		Offset: query.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	outputs := make([]*usecase.UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, usecase.NewUserOutput(user))
	}

	return outputs, nil
}

// GetUser returns a single user by username. Admin only.
func (srv *userService) GetUser(ctx context.Context, actor *entity.User, username string) (*usecase.UserOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodRetrieve); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return usecase.NewUserOutput(user), nil
}

// CreateUser creates an account with an explicit role. Admin only.
func (srv *userService) CreateUser(ctx context.Context, actor *entity.User, input *usecase.CreateUserInput) (*usecase.UserOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodCreate); err != nil {
		return nil, err
	}
	if strings.EqualFold(input.Username, reservedUsername) {
		return nil, domainerrors.ErrReservedUsername
	}

	role := entity.RoleUser
	if input.Role != "" {
		role = entity.Role(input.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
		}
	}

	user := &entity.User{
		ID:        uuid.New(),
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Bio:       input.Bio,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User created", slog.String("username", user.Username), slog.String("role", user.Role.String()))

	return usecase.NewUserOutput(user), nil
}

// UpdateUser applies a partial update to the named account. Admin only.
func (srv *userService) UpdateUser(ctx context.Context, actor *entity.User, username string, input *usecase.UpdateUserInput) (*usecase.UserOutput, error) {
	if err := permission.Check(srv.policy, actor, permission.MethodUpdate); err != nil {
		return nil, err
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user for update")
		}

		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.FirstName != nil {
			user.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			user.LastName = *input.LastName
		}
		if input.Bio != nil {
			user.Bio = *input.Bio
		}
		if input.Role != nil {
			role := entity.Role(*input.Role)
			if !role.IsValid() {
				return domainerrors.ErrValidationFailed.WrapMessage("unknown role")
			}
			user.Role = role
		}
		user.UpdatedAt = time.Now()

		if err := userRepo.Update(ctx, user); err != nil {
			return err
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return usecase.NewUserOutput(updated), nil
}

// DeleteUser removes the named account. Admin only.
func (srv *userService) DeleteUser(ctx context.Context, actor *entity.User, username string) error {
	if err := permission.Check(srv.policy, actor, permission.MethodDelete); err != nil {
		return err
	}

	if err := srv.userRepo.Delete(ctx, username); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("username", username))

	return nil
}

// GetMe returns the actor's own profile. Any authenticated actor.
func (srv *userService) GetMe(ctx context.Context, actor *entity.User) (*usecase.UserOutput, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	return usecase.NewUserOutput(actor), nil
}

// UpdateMe applies a partial update to the actor's own profile. The role
// field is silently ignored unless the actor already holds admin privilege,
// so nobody escalates themselves through the self-service path.
func (srv *userService) UpdateMe(ctx context.Context, actor *entity.User, input *usecase.UpdateMeInput) (*usecase.UserOutput, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find own profile")
		}

		if input.FirstName != nil {
			user.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			user.LastName = *input.LastName
		}
		if input.Bio != nil {
			user.Bio = *input.Bio
		}
		if input.Role != nil && entity.PrivilegeOf(actor) == entity.PrivilegeAdmin {
			role := entity.Role(*input.Role)
			if !role.IsValid() {
				return domainerrors.ErrValidationFailed.WrapMessage("unknown role")
			}
			user.Role = role
		}
		user.UpdatedAt = time.Now()

		if err := userRepo.Update(ctx, user); err != nil {
			return err
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return usecase.NewUserOutput(updated), nil
}
