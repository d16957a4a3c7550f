package controllers

import (
	"net/http"
	"strconv"

	"authorshaven/global"
	"authorshaven/repository"
	"authorshaven/serializers"
	"authorshaven/services"

	"github.com/gin-gonic/gin"
)

func newBookmarkService() *services.BookmarkService {
	return services.NewBookmarkService(
		repository.NewArticleRepository(global.Db),
		repository.NewBookmarkRepository(global.Db),
	)
}

func BookmarkArticle(ctx *gin.Context) {
	bookmark, err := newBookmarkService().Create(ctx.Param("slug"), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, serializers.NewBookmarkResponse(bookmark))
}

func ListBookmarks(ctx *gin.Context) {
	bookmarks, err := newBookmarkService().List(currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"bookmarks": serializers.NewBookmarkListResponse(bookmarks)})
}

func DeleteBookmark(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid bookmark id"})
		return
	}

	if err := newBookmarkService().Delete(uint(id), currentUserID(ctx)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "bookmark removed"})
}
