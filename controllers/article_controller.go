package controllers

import (
	"net/http"

	"authorshaven/global"
	"authorshaven/repository"
	"authorshaven/serializers"
	"authorshaven/services"

	"github.com/gin-gonic/gin"
)

func newArticleService() *services.ArticleService {
	return services.NewArticleService(
		repository.NewArticleRepository(global.Db),
		repository.NewUserRepository(global.Db),
		repository.NewTagRepository(global.Db),
	)
}

func CreateArticle(ctx *gin.Context) {
	var input services.ArticleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := newArticleService().Create(currentUserID(ctx), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, serializers.NewArticleResponse(article))
}

func UpdateArticle(ctx *gin.Context) {
	var input services.ArticleUpdateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := newArticleService().Update(ctx.Param("slug"), currentUserID(ctx), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, serializers.NewArticleResponse(article))
}

func GetArticle(ctx *gin.Context) {
	article, err := newArticleService().GetForUser(ctx.Param("slug"), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, serializers.NewArticleResponse(article))
}

func ListArticles(ctx *gin.Context) {
	articles, err := newArticleService().ListForUser(currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"articles": serializers.NewArticleListResponse(articles)})
}

func DeleteArticle(ctx *gin.Context) {
	if err := newArticleService().Delete(ctx.Param("slug"), currentUserID(ctx)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}
