package models

import "gorm.io/gorm"

// Like holds a user's reaction to an article: like=true, dislike=false.
// At most one row exists per (article, user); resubmitting the same reaction
// deletes the row, submitting the opposite one flips it.
type Like struct {
	gorm.Model
	UserID    uint `gorm:"not null;uniqueIndex:idx_article_user_like"`
	ArticleID uint `gorm:"not null;uniqueIndex:idx_article_user_like"`
	Like      bool `gorm:"not null"`
}
