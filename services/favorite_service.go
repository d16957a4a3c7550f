package services

import (
	"errors"

	"authorshaven/models"
	"authorshaven/repository"

	"gorm.io/gorm"
)

type FavoriteService struct {
	articles  repository.ArticleRepository
	users     repository.UserRepository
	favorites repository.FavoriteRepository
}

func NewFavoriteService(
	articles repository.ArticleRepository,
	users repository.UserRepository,
	favorites repository.FavoriteRepository,
) *FavoriteService {
	return &FavoriteService{articles: articles, users: users, favorites: favorites}
}

// Add favorites an article for a user. Favoriting twice is a conflict; the
// caller selects removal through the DELETE verb instead.
func (s *FavoriteService) Add(slug string, userID uint) (*models.Article, error) {
	article, existing, err := s.resolve(slug, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict("The article is already in your favorites, use DELETE to remove it")
	}

	favorite := &models.FavoriteArticle{ArticleID: article.ID, UserID: userID}
	if err := s.favorites.Create(favorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict("The article is already in your favorites, use DELETE to remove it")
		}
		return nil, err
	}
	return article, nil
}

// Remove un-favorites an article; removing one that was never favorited is a
// conflict, the mirror image of Add.
func (s *FavoriteService) Remove(slug string, userID uint) (*models.Article, error) {
	article, existing, err := s.resolve(slug, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrConflict("The article is already not in your favorites, use POST to add it")
	}

	if err := s.favorites.Delete(existing); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *FavoriteService) resolve(slug string, userID uint) (*models.Article, *models.FavoriteArticle, error) {
	article, err := s.articles.GetBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrNotFound("Article with that slug does not exist")
	} else if err != nil {
		return nil, nil, err
	}
	if _, err := s.users.GetByID(userID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrNotFound("User does not exist")
	} else if err != nil {
		return nil, nil, err
	}

	existing, err := s.favorites.GetByArticleAndUser(article.ID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return article, nil, nil
	} else if err != nil {
		return nil, nil, err
	}
	return article, existing, nil
}
