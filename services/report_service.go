package services

import (
	"errors"

	"authorshaven/models"
	"authorshaven/repository"

	"gorm.io/gorm"
)

type ReportService struct {
	articles repository.ArticleRepository
	users    repository.UserRepository
	reports  repository.ReportRepository
}

func NewReportService(
	articles repository.ArticleRepository,
	users repository.UserRepository,
	reports repository.ReportRepository,
) *ReportService {
	return &ReportService{articles: articles, users: users, reports: reports}
}

// Create appends a report against the article; reports are write-once.
func (s *ReportService) Create(slug string, userID uint, message string) (*models.ReportedArticle, error) {
	if message == "" {
		return nil, ErrInvalidInput("A report must carry a message")
	}

	article, err := s.articles.GetBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound("Article with that slug does not exist")
	} else if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound("User does not exist")
	} else if err != nil {
		return nil, err
	}

	report := &models.ReportedArticle{
		UserID:    user.ID,
		ArticleID: article.ID,
		Message:   message,
	}
	if err := s.reports.Create(report); err != nil {
		return nil, err
	}
	report.User = *user
	report.Article = *article
	return report, nil
}

func (s *ReportService) List() ([]models.ReportedArticle, error) {
	return s.reports.List()
}
