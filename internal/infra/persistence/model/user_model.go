// Package model holds the GORM persistence models. The uniqueness and
// cascade rules the domain relies on are declared here so the database, not
// just the application, enforces them.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). Username and email each carry a unique index, which
// also makes the (username, email) pair unique.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username    string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email       string    `gorm:"type:varchar(254);uniqueIndex;not null"`
	FirstName   string    `gorm:"type:varchar(150)"`
	LastName    string    `gorm:"type:varchar(150)"`
	Bio         string    `gorm:"type:text"`
	Role        string    `gorm:"type:varchar(20);not null;default:'user'"`
	IsSuperuser bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
