package model

import (
	"time"

	"github.com/google/uuid"
)

// TitleModel mirrors the 'titles' table. Deleting a category detaches it
// from its titles; deleting a title cascades to its reviews.
type TitleModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string         `gorm:"type:varchar(256);not null;index"`
	Year        int            `gorm:"not null;index"`
	Description string         `gorm:"type:text"`
	CategoryID  *uuid.UUID     `gorm:"type:uuid;index"`
	Category    *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Genres      []GenreModel   `gorm:"many2many:title_genres;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TitleModel) TableName() string {
	return "titles"
}

// GenreModel mirrors the 'genres' table.
type GenreModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Slug      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GenreModel) TableName() string {
	return "genres"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Slug      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
