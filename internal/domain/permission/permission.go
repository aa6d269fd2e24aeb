// Package permission centralizes every privilege decision in the system.
// Each resource family implements one Policy; no handler or usecase
// re-implements role logic on its own.
package permission

import (
	"github.com/google/uuid"

	"critica/internal/domain/entity"
	domainerrors "critica/internal/domain/errors"
)

// Method classifies the operation being attempted on a resource family.
type Method string

const (
	MethodList     Method = "list"
	MethodRetrieve Method = "retrieve"
	MethodCreate   Method = "create"
	MethodUpdate   Method = "update"
	MethodDelete   Method = "delete"
)

// Safe reports whether the method is read-only.
func (m Method) Safe() bool {
	return m == MethodList || m == MethodRetrieve
}

// Authored is implemented by objects that carry an author, letting one
// policy cover every moderated resource family.
type Authored interface {
	AuthoredBy(userID uuid.UUID) bool
}

// Policy decides access for one resource family. CanPerform is the
// collection-level (pre-object) check; CanPerformOnObject is the
// instance-level check, consulted only after the collection-level check
// passed and the target object was resolved.
type Policy interface {
	CanPerform(actor *entity.User, method Method) bool
	CanPerformOnObject(actor *entity.User, method Method, object Authored) bool
}

// Check evaluates the collection-level rule and translates a refusal into
// the right failure: anonymous actors are rejected as unauthenticated before
// any role reasoning, everyone else as forbidden.
func Check(policy Policy, actor *entity.User, method Method) error {
	if policy.CanPerform(actor, method) {
		return nil
	}
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}

	return domainerrors.ErrForbidden
}

// CheckObject evaluates the instance-level rule for a resolved object.
// Callers resolve the object first; a missing object is a not-found failure
// independent of permission and never reaches this function.
func CheckObject(policy Policy, actor *entity.User, method Method, object Authored) error {
	if policy.CanPerformOnObject(actor, method, object) {
		return nil
	}
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}

	return domainerrors.ErrForbidden
}

// UserAdmin guards the administrative user surface (/users). Every method,
// including reads, requires admin privilege. The self-service "me" endpoint
// is a distinct path and does not go through this policy.
type UserAdmin struct{}

func (UserAdmin) CanPerform(actor *entity.User, _ Method) bool {
	return entity.PrivilegeOf(actor) == entity.PrivilegeAdmin
}

func (p UserAdmin) CanPerformOnObject(actor *entity.User, method Method, _ Authored) bool {
	return p.CanPerform(actor, method)
}

// Catalog guards titles, genres and categories: safe methods are open to
// anyone, mutation requires admin privilege. A historical variant let
// moderators delete taxonomy entries; that behavior is superseded.
type Catalog struct{}

func (Catalog) CanPerform(actor *entity.User, method Method) bool {
	if method.Safe() {
		return true
	}

	return entity.PrivilegeOf(actor) == entity.PrivilegeAdmin
}

func (p Catalog) CanPerformOnObject(actor *entity.User, method Method, _ Authored) bool {
	return p.CanPerform(actor, method)
}

// Moderated guards reviews and comments. Safe methods are open to anyone,
// creation requires any authenticated actor, and mutation of an existing
// object is allowed to its author, moderators and admins.
type Moderated struct{}

func (Moderated) CanPerform(actor *entity.User, method Method) bool {
	if method.Safe() {
		return true
	}

	return actor != nil
}

func (Moderated) CanPerformOnObject(actor *entity.User, method Method, object Authored) bool {
	if method.Safe() {
		return true
	}
	if actor == nil {
		return false
	}
	if object != nil && object.AuthoredBy(actor.ID) {
		return true
	}
	if actor.Role.AtLeast(entity.RoleModerator) {
		return true
	}

	return entity.PrivilegeOf(actor) == entity.PrivilegeAdmin
}
