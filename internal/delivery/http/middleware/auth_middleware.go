package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "critica/internal/delivery/context"
	"critica/internal/domain/entity"
	domainerrors "critica/internal/domain/errors"
	"critica/internal/domain/repository"
	"critica/internal/domain/service"
)

// AuthMiddleware validates bearer tokens and resolves the acting user.
// The token only asserts identity; role and superuser status are loaded
// fresh from storage on every request, so a demotion takes effect
// immediately instead of at token expiry.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate requires a valid bearer token and stores the resolved user
// on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := m.resolveActor(c)
		if err != nil {
			return err
		}
		if actor == nil {
			return domainerrors.ErrUnauthenticated
		}
		deliverycontext.SetActor(c, actor)

		return next(c)
	}
}

// OptionalAuthenticate resolves the actor when a token is present and lets
// anonymous requests through. A token that is present but invalid is still
// rejected; silently downgrading it to anonymous would mask client bugs.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := m.resolveActor(c)
		if err != nil {
			return err
		}
		if actor != nil {
			deliverycontext.SetActor(c, actor)
		}

		return next(c)
	}
}

// resolveActor returns nil without error when no credentials are presented.
func (m *AuthMiddleware) resolveActor(c echo.Context) (*entity.User, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("authorization header is not a bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
	if err != nil {
		// A token for a deleted account is no longer a valid credential.
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token subject no longer exists")
	}

	return user, nil
}
