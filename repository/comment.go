package repository

import (
	"authorshaven/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	GetByID(id uint) (*models.Comment, error)
	ListTopLevel(articleID uint) ([]models.Comment, error)
	Create(comment *models.Comment) error
	Update(comment *models.Comment) error
	Delete(comment *models.Comment) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("Author").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListTopLevel returns parentless comments with their direct replies loaded.
func (r *commentRepository) ListTopLevel(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").
		Preload("Replies").Preload("Replies.Author").
		Where("article_id = ? AND parent_comment_id IS NULL", articleID).
		Order("created_at").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *commentRepository) Delete(comment *models.Comment) error {
	return r.db.Delete(comment).Error
}
