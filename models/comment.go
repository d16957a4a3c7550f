package models

import "gorm.io/gorm"

// Comment belongs to an article; a non-nil ParentCommentID makes it a reply.
// Only one level of nesting is surfaced: top-level comments list their direct
// replies, replies do not list anything.
type Comment struct {
	gorm.Model
	Body            string `gorm:"type:text;not null"`
	AuthorID        uint   `gorm:"index;not null"`
	ArticleID       uint   `gorm:"index;not null"`
	ParentCommentID *uint  `gorm:"index"`

	Author  User      `gorm:"foreignKey:AuthorID"`
	Replies []Comment `gorm:"foreignKey:ParentCommentID"`
}
