package services

import (
	"errors"
	"time"

	"authorshaven/models"
	"authorshaven/repository"

	"gorm.io/gorm"
)

type BookmarkService struct {
	articles  repository.ArticleRepository
	bookmarks repository.BookmarkRepository
}

func NewBookmarkService(
	articles repository.ArticleRepository,
	bookmarks repository.BookmarkRepository,
) *BookmarkService {
	return &BookmarkService{articles: articles, bookmarks: bookmarks}
}

// Create bookmarks the article for the user. Bookmarks are never updated;
// bookmarking the same article again is a conflict.
func (s *BookmarkService) Create(slug string, userID uint) (*models.Bookmark, error) {
	article, err := s.articles.GetBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound("Article with that slug does not exist")
	} else if err != nil {
		return nil, err
	}

	if _, err := s.bookmarks.GetByArticleAndUser(article.ID, userID); err == nil {
		return nil, ErrConflict("You already bookmarked this article")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	bookmark := &models.Bookmark{
		UserID:       userID,
		ArticleID:    article.ID,
		BookmarkedAt: time.Now(),
	}
	if err := s.bookmarks.Create(bookmark); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict("You already bookmarked this article")
		}
		return nil, err
	}
	return s.bookmarks.GetByID(bookmark.ID)
}

func (s *BookmarkService) List(userID uint) ([]models.Bookmark, error) {
	return s.bookmarks.ListByUser(userID)
}

// Delete removes the user's own bookmark.
func (s *BookmarkService) Delete(id, userID uint) error {
	bookmark, err := s.bookmarks.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("Bookmark does not exist")
	} else if err != nil {
		return err
	}
	if bookmark.UserID != userID {
		return ErrForbidden("You are not authorised to remove this bookmark")
	}
	return s.bookmarks.Delete(bookmark)
}
