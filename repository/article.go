package repository

import (
	"errors"

	"authorshaven/models"

	"gorm.io/gorm"
)

// ArticleRepository is the entity-store boundary for articles. Lookups return
// gorm.ErrRecordNotFound when no row matches; services translate that into
// their own error taxonomy.
type ArticleRepository interface {
	GetBySlug(slug string) (*models.Article, error)
	GetByID(id uint) (*models.Article, error)
	List() ([]models.Article, error)
	Create(article *models.Article) error
	Update(article *models.Article) error
	Delete(article *models.Article) error
	ReplaceTags(article *models.Article, tags []models.Tag) error
	SlugExists(slug string) (bool, error)
	AverageRating(articleID uint) (float64, error)
	ReactionCounts(articleID uint) (likes int64, dislikes int64, err error)
	FavoritesCount(articleID uint) (int64, error)
	UserRating(articleID, userID uint) (*int, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").Preload("Tags").Where("slug = ?", slug).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").Preload("Tags").First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) List() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").Preload("Tags").Order("created_at DESC").Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(article *models.Article) error {
	return r.db.Select("Tags").Delete(article).Error
}

func (r *articleRepository) ReplaceTags(article *models.Article, tags []models.Tag) error {
	if len(tags) == 0 {
		return r.db.Model(article).Association("Tags").Clear()
	}
	return r.db.Model(article).Association("Tags").Replace(tags)
}

// SlugExists looks through soft-deleted rows too: a deleted article still
// holds its slug in the unique index, so the suffix loop must step past it.
func (r *articleRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Unscoped().Model(&models.Article{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *articleRepository) AverageRating(articleID uint) (float64, error) {
	var avg *float64
	err := r.db.Model(&models.Rating{}).
		Where("article_id = ?", articleID).
		Select("AVG(rating)").Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

func (r *articleRepository) ReactionCounts(articleID uint) (int64, int64, error) {
	var likes, dislikes int64
	if err := r.db.Model(&models.Like{}).
		Where("article_id = ? AND `like` = ?", articleID, true).
		Count(&likes).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Model(&models.Like{}).
		Where("article_id = ? AND `like` = ?", articleID, false).
		Count(&dislikes).Error; err != nil {
		return 0, 0, err
	}
	return likes, dislikes, nil
}

// UserRating returns one user's rating for the article, nil when they have
// not rated it.
func (r *articleRepository) UserRating(articleID, userID uint) (*int, error) {
	var rating models.Rating
	err := r.db.Where("article_id = ? AND rated_by_id = ?", articleID, userID).First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &rating.Rating, nil
}

func (r *articleRepository) FavoritesCount(articleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.FavoriteArticle{}).Where("article_id = ?", articleID).Count(&count).Error
	return count, err
}
