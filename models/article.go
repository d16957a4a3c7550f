package models

import "gorm.io/gorm"

type Article struct {
	gorm.Model
	Title       string `gorm:"size:255;not null"`
	Slug        string `gorm:"size:255;uniqueIndex;not null"`
	Description string `gorm:"size:512"`
	Body        string `gorm:"type:text"`
	Image       string `gorm:"size:512"`
	ReadTime    int
	AuthorID    uint  `gorm:"index;not null"`
	Author      User  `gorm:"foreignKey:AuthorID"`
	Tags        []Tag `gorm:"many2many:article_tags;"`

	// Aggregates computed from rating/like/favorite rows, never persisted.
	AverageRating  float64 `gorm:"-"`
	FavoritesCount int64   `gorm:"-"`
	Likes          int64   `gorm:"-"`
	Dislikes       int64   `gorm:"-"`
	// UsersRating is the requesting user's own rating; nil when anonymous
	// or not yet rated.
	UsersRating *int `gorm:"-"`
}

// Tag is a unique label shared across articles.
type Tag struct {
	gorm.Model
	Tag string `gorm:"size:64;uniqueIndex;not null"`
}
