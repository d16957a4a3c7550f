package services

import (
	"errors"

	"authorshaven/models"
	"authorshaven/repository"

	"gorm.io/gorm"
)

type LikeAction string

const (
	LikeCreated LikeAction = "created"
	LikeUpdated LikeAction = "updated"
	LikeDeleted LikeAction = "deleted"
)

type LikeResult struct {
	Action   LikeAction   `json:"action_performed"`
	Like     *models.Like `json:"like,omitempty"`
	Likes    int64        `json:"likes"`
	Dislikes int64        `json:"dislikes"`
}

type LikeService struct {
	articles repository.ArticleRepository
	users    repository.UserRepository
	likes    repository.LikeRepository
}

func NewLikeService(
	articles repository.ArticleRepository,
	users repository.UserRepository,
	likes repository.LikeRepository,
) *LikeService {
	return &LikeService{articles: articles, users: users, likes: likes}
}

// likeOutcome decides what a reaction submission does given the row that
// already exists for (article, user), if any.
func likeOutcome(existing *models.Like, like bool) LikeAction {
	switch {
	case existing == nil:
		return LikeCreated
	case existing.Like == like:
		return LikeDeleted
	default:
		return LikeUpdated
	}
}

// React applies a like (true) or dislike (false) submission. A first
// submission creates the row, repeating the same reaction retracts it, and
// the opposite reaction flips the stored value. The performed action is
// reported to the caller beside the resulting state.
func (s *LikeService) React(articleID, userID uint, like bool) (*LikeResult, error) {
	article, err := s.articles.GetByID(articleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound("Article does not exist")
	} else if err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(userID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound("User does not exist")
	} else if err != nil {
		return nil, err
	}

	existing, err := s.likes.GetByArticleAndUser(article.ID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	result := &LikeResult{Action: likeOutcome(existing, like)}
	switch result.Action {
	case LikeCreated:
		row := &models.Like{ArticleID: article.ID, UserID: userID, Like: like}
		if err := s.likes.Create(row); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrConflict("Reaction already recorded")
			}
			return nil, err
		}
		result.Like = row
	case LikeDeleted:
		if err := s.likes.Delete(existing); err != nil {
			return nil, err
		}
	case LikeUpdated:
		existing.Like = like
		if err := s.likes.Update(existing); err != nil {
			return nil, err
		}
		result.Like = existing
	}

	likes, dislikes, err := s.articles.ReactionCounts(article.ID)
	if err != nil {
		return nil, err
	}
	result.Likes = likes
	result.Dislikes = dislikes

	return result, nil
}
