package repository

import (
	"authorshaven/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	GetByArticleAndUser(articleID, userID uint) (*models.Rating, error)
	Create(rating *models.Rating) error
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) GetByArticleAndUser(articleID, userID uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("article_id = ? AND rated_by_id = ?", articleID, userID).First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}
