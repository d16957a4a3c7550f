package serializers

import (
	"time"

	"authorshaven/models"
)

type BookmarkResponse struct {
	ID           uint            `json:"id"`
	Article      ArticleResponse `json:"article"`
	BookmarkedAt time.Time       `json:"bookmarked_at"`
}

func NewBookmarkResponse(bookmark *models.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:           bookmark.ID,
		Article:      NewArticleResponse(&bookmark.Article),
		BookmarkedAt: bookmark.BookmarkedAt,
	}
}

func NewBookmarkListResponse(bookmarks []models.Bookmark) []BookmarkResponse {
	list := make([]BookmarkResponse, 0, len(bookmarks))
	for i := range bookmarks {
		list = append(list, NewBookmarkResponse(&bookmarks[i]))
	}
	return list
}
