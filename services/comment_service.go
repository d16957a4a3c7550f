package services

import (
	"errors"

	"authorshaven/models"
	"authorshaven/repository"

	"gorm.io/gorm"
)

const minCommentLength = 2

type CommentService struct {
	articles repository.ArticleRepository
	comments repository.CommentRepository
}

func NewCommentService(
	articles repository.ArticleRepository,
	comments repository.CommentRepository,
) *CommentService {
	return &CommentService{articles: articles, comments: comments}
}

func validateCommentBody(body string) error {
	if len(body) < minCommentLength {
		return ErrInvalidInput("Your comment must have at least 2 characters")
	}
	return nil
}

// Create adds a comment to the article; a non-nil parentID makes it a reply
// to an existing comment on the same article.
func (s *CommentService) Create(slug string, authorID uint, body string, parentID *uint) (*models.Comment, error) {
	if err := validateCommentBody(body); err != nil {
		return nil, err
	}

	article, err := s.articles.GetBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound("Article with that slug does not exist")
	} else if err != nil {
		return nil, err
	}

	if parentID != nil {
		parent, err := s.comments.GetByID(*parentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("Comment you are replying to does not exist")
		} else if err != nil {
			return nil, err
		}
		if parent.ArticleID != article.ID {
			return nil, ErrNotFound("Comment you are replying to does not exist")
		}
	}

	comment := &models.Comment{
		Body:            body,
		AuthorID:        authorID,
		ArticleID:       article.ID,
		ParentCommentID: parentID,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return s.comments.GetByID(comment.ID)
}

// UpdateBody re-validates and replaces the comment body. Ownership is
// enforced at the caller boundary, not here.
func (s *CommentService) UpdateBody(comment *models.Comment, body string) (*models.Comment, error) {
	if err := validateCommentBody(body); err != nil {
		return nil, err
	}
	comment.Body = body
	if err := s.comments.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Get(id uint) (*models.Comment, error) {
	comment, err := s.comments.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound("Comment does not exist")
	} else if err != nil {
		return nil, err
	}
	return comment, nil
}

// List returns the article's top-level comments, each with its direct
// replies.
func (s *CommentService) List(slug string) ([]models.Comment, error) {
	article, err := s.articles.GetBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound("Article with that slug does not exist")
	} else if err != nil {
		return nil, err
	}
	return s.comments.ListTopLevel(article.ID)
}
