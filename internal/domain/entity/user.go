// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. The (Username, Email) pair is
// globally unique; each field is also unique on its own, which the storage
// layer enforces with unique indexes.
type User struct {
	ID          uuid.UUID // The unique identifier for the user.
	Username    string    // Unique login/handle. "me" is reserved for the self-service endpoint.
	Email       string    // The user's unique contact email; confirmation codes are sent here.
	FirstName   string    // Optional given name.
	LastName    string    // Optional family name.
	Bio         string    // Free-form self description.
	Role        Role      // The user's assigned role. Mutable only through admin-privileged updates.
	IsSuperuser bool      // Orthogonal elevated flag; grants admin privilege regardless of Role.
	CreatedAt   time.Time // Timestamp of when this account was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this account.
}

// Privilege resolves the user's effective privilege.
func (u *User) Privilege() Privilege {
	return PrivilegeOf(u)
}
