package models

import "gorm.io/gorm"

// Rating is one user's score for one article. The composite unique index is
// the authoritative guard against a racing duplicate submission.
type Rating struct {
	gorm.Model
	ArticleID uint `gorm:"not null;uniqueIndex:idx_article_rater"`
	RatedByID uint `gorm:"not null;uniqueIndex:idx_article_rater"`
	Rating    int  `gorm:"not null"`

	Article Article `gorm:"foreignKey:ArticleID"`
	RatedBy User    `gorm:"foreignKey:RatedByID"`
}
