package services

import (
	"errors"
	"fmt"
	"strings"

	"authorshaven/models"
	"authorshaven/repository"
	"authorshaven/utils"

	"gorm.io/gorm"
)

type ArticleInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Body        string `json:"body" binding:"required"`
	Image       string `json:"image"`
	Tags        string `json:"tags"`
}

// ArticleUpdateInput uses pointers so absent fields keep their stored value.
type ArticleUpdateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Body        *string `json:"body"`
	Image       *string `json:"image"`
	Tags        string  `json:"tags"`
}

type ArticleService struct {
	articles repository.ArticleRepository
	users    repository.UserRepository
	tags     repository.TagRepository
}

func NewArticleService(
	articles repository.ArticleRepository,
	users repository.UserRepository,
	tags repository.TagRepository,
) *ArticleService {
	return &ArticleService{articles: articles, users: users, tags: tags}
}

// Create stores a new article for the author and associates every tag from
// the comma-separated list, reusing tag rows that already exist.
func (s *ArticleService) Create(authorID uint, input ArticleInput) (*models.Article, error) {
	author, err := s.users.GetByID(authorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound("User does not exist")
	} else if err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(input.Title)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:       input.Title,
		Slug:        slug,
		Description: input.Description,
		Body:        input.Body,
		Image:       input.Image,
		ReadTime:    utils.ReadTime(input.Body),
		AuthorID:    author.ID,
	}
	if err := s.articles.Create(article); err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(input.Tags)
	if err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		if err := s.articles.ReplaceTags(article, tags); err != nil {
			return nil, err
		}
	}

	return s.Get(article.Slug)
}

// Update is author-only. The tag set is replaced wholesale from the supplied
// list; title/description/body/image keep their stored value when absent.
func (s *ArticleService) Update(slug string, userID uint, input ArticleUpdateInput) (*models.Article, error) {
	article, err := s.articles.GetBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound("Article with that slug does not exist")
	} else if err != nil {
		return nil, err
	}

	if article.AuthorID != userID {
		return nil, ErrForbidden("You are not authorised to edit this article")
	}

	tags, err := s.resolveTags(input.Tags)
	if err != nil {
		return nil, err
	}
	if err := s.articles.ReplaceTags(article, tags); err != nil {
		return nil, err
	}

	if input.Title != nil {
		article.Title = *input.Title
	}
	if input.Description != nil {
		article.Description = *input.Description
	}
	if input.Body != nil {
		article.Body = *input.Body
		article.ReadTime = utils.ReadTime(article.Body)
	}
	if input.Image != nil {
		article.Image = *input.Image
	}
	article.Tags = tags

	if err := s.articles.Update(article); err != nil {
		return nil, err
	}
	return s.Get(article.Slug)
}

func (s *ArticleService) Delete(slug string, userID uint) error {
	article, err := s.articles.GetBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("Article with that slug does not exist")
	} else if err != nil {
		return err
	}
	if article.AuthorID != userID {
		return ErrForbidden("You are not authorised to delete this article")
	}
	return s.articles.Delete(article)
}

// Get loads one article with its computed aggregates filled in.
func (s *ArticleService) Get(slug string) (*models.Article, error) {
	return s.GetForUser(slug, 0)
}

// GetForUser additionally fills in the requesting user's own rating; a zero
// userID means anonymous.
func (s *ArticleService) GetForUser(slug string, userID uint) (*models.Article, error) {
	article, err := s.articles.GetBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound("Article with that slug does not exist")
	} else if err != nil {
		return nil, err
	}
	if err := s.loadAggregates(article, userID); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) List() ([]models.Article, error) {
	return s.ListForUser(0)
}

func (s *ArticleService) ListForUser(userID uint) ([]models.Article, error) {
	articles, err := s.articles.List()
	if err != nil {
		return nil, err
	}
	for i := range articles {
		if err := s.loadAggregates(&articles[i], userID); err != nil {
			return nil, err
		}
	}
	return articles, nil
}

func (s *ArticleService) loadAggregates(article *models.Article, userID uint) error {
	average, err := s.articles.AverageRating(article.ID)
	if err != nil {
		return err
	}
	likes, dislikes, err := s.articles.ReactionCounts(article.ID)
	if err != nil {
		return err
	}
	favorites, err := s.articles.FavoritesCount(article.ID)
	if err != nil {
		return err
	}
	article.AverageRating = average
	article.Likes = likes
	article.Dislikes = dislikes
	article.FavoritesCount = favorites

	if userID != 0 {
		usersRating, err := s.articles.UserRating(article.ID, userID)
		if err != nil {
			return err
		}
		article.UsersRating = usersRating
	}
	return nil
}

// resolveTags splits the comma-separated list, trims each name and returns
// the matching tag rows, creating the missing ones.
func (s *ArticleService) resolveTags(list string) ([]models.Tag, error) {
	var tags []models.Tag
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tag, err := s.tags.GetOrCreate(name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

func (s *ArticleService) uniqueSlug(title string) (string, error) {
	base := utils.Slugify(title)
	if base == "" {
		base = "article"
	}
	slug := base
	for i := 1; ; i++ {
		exists, err := s.articles.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
