package repository

import (
	"authorshaven/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	GetOrCreate(name string) (*models.Tag, error)
	List() ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetOrCreate(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where(models.Tag{Tag: name}).FirstOrCreate(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) List() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("tag").Find(&tags).Error
	return tags, err
}
