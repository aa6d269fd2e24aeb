// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
// Roles are mutually exclusive and totally ordered by privilege:
// user < moderator < admin.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleModerator indicates a moderator role.
	RoleModerator Role = "moderator"
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "admin"
)

// roleRank maps each role to its position in the privilege order.
var roleRank = map[Role]int{
	RoleUser:      1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	default:
		return false
	}
}

// AtLeast reports whether the role carries at least the privilege of other.
func (r Role) AtLeast(other Role) bool {
	return roleRank[r] >= roleRank[other]
}

// Privilege is the effective access level derived from a user's role and
// superuser flag. Unlike Role it has a value for unauthenticated requesters.
type Privilege string

const (
	// PrivilegeAnonymous is the privilege of an unauthenticated requester.
	PrivilegeAnonymous Privilege = "anonymous"
	// PrivilegeUser is the privilege of a regular authenticated user.
	PrivilegeUser Privilege = "user"
	// PrivilegeModerator is the privilege of a moderator.
	PrivilegeModerator Privilege = "moderator"
	// PrivilegeAdmin is the privilege of an administrator or superuser.
	PrivilegeAdmin Privilege = "admin"
)

// PrivilegeOf resolves the effective privilege of a user. A nil user is an
// anonymous requester. The superuser flag grants admin privilege regardless
// of the stored role; it exists for bootstrap and operational accounts.
func PrivilegeOf(user *User) Privilege {
	if user == nil {
		return PrivilegeAnonymous
	}
	if user.IsSuperuser || user.Role == RoleAdmin {
		return PrivilegeAdmin
	}

	switch user.Role {
	case RoleModerator:
		return PrivilegeModerator
	default:
		return PrivilegeUser
	}
}
