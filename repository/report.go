package repository

import (
	"authorshaven/models"

	"gorm.io/gorm"
)

type ReportRepository interface {
	List() ([]models.ReportedArticle, error)
	Create(report *models.ReportedArticle) error
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) List() ([]models.ReportedArticle, error) {
	var reports []models.ReportedArticle
	err := r.db.Preload("User").Preload("Article").Order("created_at DESC").Find(&reports).Error
	return reports, err
}

func (r *reportRepository) Create(report *models.ReportedArticle) error {
	return r.db.Create(report).Error
}
