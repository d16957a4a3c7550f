package models

import "gorm.io/gorm"

// ReportedArticle is append-only; reports are never edited or resolved here.
type ReportedArticle struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	ArticleID uint   `gorm:"index;not null"`
	Message   string `gorm:"size:1024;not null"`

	User    User    `gorm:"foreignKey:UserID"`
	Article Article `gorm:"foreignKey:ArticleID"`
}
