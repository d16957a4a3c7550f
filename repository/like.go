package repository

import (
	"authorshaven/models"

	"gorm.io/gorm"
)

type LikeRepository interface {
	GetByArticleAndUser(articleID, userID uint) (*models.Like, error)
	Create(like *models.Like) error
	Update(like *models.Like) error
	Delete(like *models.Like) error
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) GetByArticleAndUser(articleID, userID uint) (*models.Like, error) {
	var like models.Like
	err := r.db.Where("article_id = ? AND user_id = ?", articleID, userID).First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) Create(like *models.Like) error {
	return r.db.Create(like).Error
}

func (r *likeRepository) Update(like *models.Like) error {
	return r.db.Save(like).Error
}

func (r *likeRepository) Delete(like *models.Like) error {
	return r.db.Unscoped().Delete(like).Error
}
