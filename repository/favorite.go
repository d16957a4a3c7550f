package repository

import (
	"authorshaven/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	GetByArticleAndUser(articleID, userID uint) (*models.FavoriteArticle, error)
	Create(favorite *models.FavoriteArticle) error
	Delete(favorite *models.FavoriteArticle) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) GetByArticleAndUser(articleID, userID uint) (*models.FavoriteArticle, error) {
	var favorite models.FavoriteArticle
	err := r.db.Where("article_id = ? AND user_id = ?", articleID, userID).First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) Create(favorite *models.FavoriteArticle) error {
	return r.db.Create(favorite).Error
}

// Delete removes the row for good; a soft-deleted join row would keep
// occupying the (user, article) unique index and block re-favoriting.
func (r *favoriteRepository) Delete(favorite *models.FavoriteArticle) error {
	return r.db.Unscoped().Delete(favorite).Error
}
