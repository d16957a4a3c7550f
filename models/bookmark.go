package models

import (
	"time"

	"gorm.io/gorm"
)

// Bookmark is created once and never updated.
type Bookmark struct {
	gorm.Model
	UserID       uint      `gorm:"not null;uniqueIndex:idx_user_article_bm"`
	ArticleID    uint      `gorm:"not null;uniqueIndex:idx_user_article_bm"`
	BookmarkedAt time.Time `gorm:"not null"`

	Article Article `gorm:"foreignKey:ArticleID"`
}
