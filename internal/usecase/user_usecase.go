package usecase

import (
	"context"

	"critica/internal/domain/entity"
)

// UserUsecase defines the administrative user surface plus the self-service
// "me" operations. Every method takes the acting user; nil means anonymous.
type UserUsecase interface {
	ListUsers(ctx context.Context, actor *entity.User, query *UserQueryInput) ([]*UserOutput, error)
	GetUser(ctx context.Context, actor *entity.User, username string) (*UserOutput, error)
	CreateUser(ctx context.Context, actor *entity.User, input *CreateUserInput) (*UserOutput, error)
	UpdateUser(ctx context.Context, actor *entity.User, username string, input *UpdateUserInput) (*UserOutput, error)
	DeleteUser(ctx context.Context, actor *entity.User, username string) error

	// GetMe and UpdateMe are the self-service path: any authenticated actor,
	// own profile only. UpdateMe never lets a non-admin change their role.
	GetMe(ctx context.Context, actor *entity.User) (*UserOutput, error)
	UpdateMe(ctx context.Context, actor *entity.User, input *UpdateMeInput) (*UserOutput, error)
}

// --- Input DTOs ---

// UserQueryInput filters the administrative user listing.
type UserQueryInput struct {
	Search string `query:"search"`
	Limit  int    `query:"limit" validate:"omitempty,gte=0,lte=100"`
	Offset int    `query:"offset" validate:"omitempty,gte=0"`
}

// CreateUserInput defines the data for administrative user creation.
type CreateUserInput struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"required,email,max=254"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Bio       string `json:"bio"`
	Role      string `json:"role" validate:"omitempty,oneof=user moderator admin"`
}

// UpdateUserInput defines the data for administrative user updates.
type UpdateUserInput struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Bio       *string `json:"bio,omitempty"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=user moderator admin"`
}

// UpdateMeInput defines the self-service profile update. It accepts a role
// field for wire compatibility with the admin surface, but the field is
// ignored unless the actor holds admin privilege.
type UpdateMeInput struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Bio       *string `json:"bio,omitempty"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=user moderator admin"`
}

// --- Output DTOs ---

// UserOutput is the outward representation of a user.
type UserOutput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

// NewUserOutput maps a user entity to its outward representation.
func NewUserOutput(user *entity.User) *UserOutput {
	return &UserOutput{
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Bio:       user.Bio,
		Role:      user.Role.String(),
	}
}
