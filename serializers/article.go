package serializers

import (
	"time"

	"authorshaven/models"
)

type ArticleResponse struct {
	Title          string      `json:"title"`
	Slug           string      `json:"slug"`
	Description    string      `json:"description"`
	Body           string      `json:"body"`
	Image          string      `json:"image"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	Author         UserPayload `json:"author"`
	TagsList       []string    `json:"tagsList"`
	ReadTime       int         `json:"read_time"`
	AverageRating  float64     `json:"average_rating"`
	FavoritesCount int64       `json:"favorites_count"`
	Likes          int64       `json:"likes"`
	Dislikes       int64       `json:"dislikes"`
	UsersRating    *int        `json:"users_rating"`
}

func NewArticleResponse(article *models.Article) ArticleResponse {
	// Tags flatten to their labels; an article without tags still serializes
	// as an empty list, not null.
	tags := make([]string, 0, len(article.Tags))
	for _, tag := range article.Tags {
		tags = append(tags, tag.Tag)
	}

	return ArticleResponse{
		Title:          article.Title,
		Slug:           article.Slug,
		Description:    article.Description,
		Body:           article.Body,
		Image:          article.Image,
		CreatedAt:      article.CreatedAt,
		UpdatedAt:      article.UpdatedAt,
		Author:         NewUserPayload(article.Author),
		TagsList:       tags,
		ReadTime:       article.ReadTime,
		AverageRating:  article.AverageRating,
		FavoritesCount: article.FavoritesCount,
		Likes:          article.Likes,
		Dislikes:       article.Dislikes,
		UsersRating:    article.UsersRating,
	}
}

func NewArticleListResponse(articles []models.Article) []ArticleResponse {
	list := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		list = append(list, NewArticleResponse(&articles[i]))
	}
	return list
}
