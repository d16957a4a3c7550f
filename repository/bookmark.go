package repository

import (
	"authorshaven/models"

	"gorm.io/gorm"
)

type BookmarkRepository interface {
	GetByID(id uint) (*models.Bookmark, error)
	GetByArticleAndUser(articleID, userID uint) (*models.Bookmark, error)
	ListByUser(userID uint) ([]models.Bookmark, error)
	Create(bookmark *models.Bookmark) error
	Delete(bookmark *models.Bookmark) error
}

type bookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) GetByID(id uint) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	err := r.db.Preload("Article").Preload("Article.Author").First(&bookmark, id).Error
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

func (r *bookmarkRepository) GetByArticleAndUser(articleID, userID uint) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	err := r.db.Where("article_id = ? AND user_id = ?", articleID, userID).First(&bookmark).Error
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

func (r *bookmarkRepository) ListByUser(userID uint) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := r.db.Preload("Article").Preload("Article.Author").
		Where("user_id = ?", userID).
		Order("bookmarked_at DESC").
		Find(&bookmarks).Error
	return bookmarks, err
}

func (r *bookmarkRepository) Create(bookmark *models.Bookmark) error {
	return r.db.Create(bookmark).Error
}

func (r *bookmarkRepository) Delete(bookmark *models.Bookmark) error {
	return r.db.Unscoped().Delete(bookmark).Error
}
