package models

import "gorm.io/gorm"

// FavoriteArticle is a join row; its existence means "user favorited article".
type FavoriteArticle struct {
	gorm.Model
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_article_fav"`
	ArticleID uint `gorm:"not null;uniqueIndex:idx_user_article_fav"`
}
