package permission

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"critica/internal/domain/entity"
	domainerrors "critica/internal/domain/errors"
	"critica/internal/errors"
)

func newActor(role entity.Role) *entity.User {
	return &entity.User{ID: uuid.New(), Role: role}
}

func TestCheck_AnonymousBeforeRole(t *testing.T) {
	// Anonymous refusals must be unauthenticated, not forbidden.
	err := Check(Catalog{}, nil, MethodDelete)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	// An identity with insufficient privilege is forbidden.
	err = Check(Catalog{}, newActor(entity.RoleUser), MethodDelete)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserAdmin(t *testing.T) {
	policy := UserAdmin{}

	for _, method := range []Method{MethodList, MethodRetrieve, MethodCreate, MethodUpdate, MethodDelete} {
		assert.False(t, policy.CanPerform(nil, method), "anonymous %s", method)
		assert.False(t, policy.CanPerform(newActor(entity.RoleUser), method), "user %s", method)
		assert.False(t, policy.CanPerform(newActor(entity.RoleModerator), method), "moderator %s", method)
		assert.True(t, policy.CanPerform(newActor(entity.RoleAdmin), method), "admin %s", method)
	}

	// Superusers carry admin privilege regardless of role.
	superuser := &entity.User{ID: uuid.New(), Role: entity.RoleUser, IsSuperuser: true}
	assert.True(t, policy.CanPerform(superuser, MethodDelete))
}

func TestCatalog(t *testing.T) {
	policy := Catalog{}

	// Safe methods are open to everyone, including anonymous actors.
	assert.True(t, policy.CanPerform(nil, MethodList))
	assert.True(t, policy.CanPerform(nil, MethodRetrieve))
	assert.True(t, policy.CanPerform(newActor(entity.RoleUser), MethodList))

	// Mutation is admin-only.
	assert.False(t, policy.CanPerform(nil, MethodCreate))
	assert.False(t, policy.CanPerform(newActor(entity.RoleUser), MethodCreate))
	assert.False(t, policy.CanPerform(newActor(entity.RoleModerator), MethodDelete))
	assert.True(t, policy.CanPerform(newActor(entity.RoleAdmin), MethodDelete))
}

func TestModerated_Collection(t *testing.T) {
	policy := Moderated{}

	assert.True(t, policy.CanPerform(nil, MethodList))
	assert.True(t, policy.CanPerform(nil, MethodRetrieve))
	assert.False(t, policy.CanPerform(nil, MethodCreate))
	assert.True(t, policy.CanPerform(newActor(entity.RoleUser), MethodCreate))
}

func TestModerated_ObjectMutation(t *testing.T) {
	policy := Moderated{}
	author := newActor(entity.RoleUser)
	review := &entity.Review{ID: uuid.New(), AuthorID: author.ID}

	// Anyone may read, even anonymously.
	assert.True(t, policy.CanPerformOnObject(nil, MethodRetrieve, review))

	// A non-author regular user may not delete someone else's review.
	assert.False(t, policy.CanPerformOnObject(newActor(entity.RoleUser), MethodDelete, review))

	// The author, a moderator and an admin all may.
	assert.True(t, policy.CanPerformOnObject(author, MethodDelete, review))
	assert.True(t, policy.CanPerformOnObject(newActor(entity.RoleModerator), MethodDelete, review))
	assert.True(t, policy.CanPerformOnObject(newActor(entity.RoleAdmin), MethodDelete, review))

	// Same rule set applies to comments.
	comment := &entity.Comment{ID: uuid.New(), AuthorID: author.ID}
	assert.True(t, policy.CanPerformOnObject(author, MethodUpdate, comment))
	assert.False(t, policy.CanPerformOnObject(newActor(entity.RoleUser), MethodUpdate, comment))
}

func TestCheckObject_Failures(t *testing.T) {
	review := &entity.Review{ID: uuid.New(), AuthorID: uuid.New()}

	err := CheckObject(Moderated{}, nil, MethodDelete, review)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	err = CheckObject(Moderated{}, newActor(entity.RoleUser), MethodDelete, review)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	assert.NoError(t, CheckObject(Moderated{}, newActor(entity.RoleModerator), MethodDelete, review))
}
