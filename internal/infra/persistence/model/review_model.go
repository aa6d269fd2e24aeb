package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. The composite unique index on
// (author_id, title_id) is the authoritative guard against duplicate reviews;
// the application-level pre-check alone cannot close the concurrent-create
// race. Title and author deletions cascade to reviews.
type ReviewModel struct {
	ID        uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TitleID   uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_author_title;index"`
	Title     *TitleModel `gorm:"foreignKey:TitleID;constraint:OnDelete:CASCADE"`
	AuthorID  uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_author_title"`
	Author    *UserModel  `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Text      string      `gorm:"type:text;not null"`
	Score     int         `gorm:"not null;check:score >= 0 AND score <= 10"`
	CreatedAt time.Time   `gorm:"index:,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// CommentModel mirrors the 'comments' table. Review deletions cascade to
// their comments.
type CommentModel struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ReviewID  uuid.UUID    `gorm:"type:uuid;not null;index"`
	Review    *ReviewModel `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
	AuthorID  uuid.UUID    `gorm:"type:uuid;not null;index"`
	Author    *UserModel   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Text      string       `gorm:"type:varchar(2000);not null"`
	CreatedAt time.Time    `gorm:"index:,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
