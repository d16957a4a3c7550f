package controllers

import (
	"net/http"
	"strconv"

	"authorshaven/global"
	"authorshaven/models"
	"authorshaven/repository"
	"authorshaven/serializers"
	"authorshaven/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis"
)

const favoriteRankKey = "rank:article:favorites"

func newFavoriteService() *services.FavoriteService {
	return services.NewFavoriteService(
		repository.NewArticleRepository(global.Db),
		repository.NewUserRepository(global.Db),
		repository.NewFavoriteRepository(global.Db),
	)
}

// FavoriteArticle adds the article to the caller's favorites; the DELETE
// handler below is the only way back out.
func FavoriteArticle(ctx *gin.Context) {
	article, err := newFavoriteService().Add(ctx.Param("slug"), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	bumpFavoriteRank(article, 1)

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Article added to favorites",
		"article": article.Slug,
	})
}

func UnfavoriteArticle(ctx *gin.Context) {
	article, err := newFavoriteService().Remove(ctx.Param("slug"), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	bumpFavoriteRank(article, -1)

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Article removed from favorites",
		"article": article.Slug,
	})
}

func bumpFavoriteRank(article *models.Article, delta float64) {
	if global.RedisDB == nil {
		return
	}
	global.RedisDB.ZIncrBy(favoriteRankKey, delta, strconv.FormatUint(uint64(article.ID), 10))
}

// GetTopFavorited returns the most-favorited articles from the Redis ZSET.
func GetTopFavorited(ctx *gin.Context) {
	topStr := ctx.DefaultQuery("top", "10")
	top, err := strconv.Atoi(topStr)
	if err != nil || top <= 0 {
		top = 10
	}

	if global.RedisDB == nil {
		ctx.JSON(http.StatusOK, gin.H{"list": []serializers.ArticleResponse{}})
		return
	}

	zres, err := global.RedisDB.ZRevRangeWithScores(favoriteRankKey, 0, int64(top-1)).Result()
	if err != nil {
		if err == redis.Nil {
			ctx.JSON(http.StatusOK, gin.H{"list": []serializers.ArticleResponse{}})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	articles := repository.NewArticleRepository(global.Db)
	list := make([]map[string]interface{}, 0, len(zres))
	for idx, z := range zres {
		memberStr, _ := z.Member.(string)
		item := map[string]interface{}{"id": memberStr, "favorites": int64(z.Score), "rank": idx + 1}
		id, err := strconv.ParseUint(memberStr, 10, 64)
		if err == nil {
			if article, err := articles.GetByID(uint(id)); err == nil {
				item["title"] = article.Title
				item["slug"] = article.Slug
			}
		}
		list = append(list, item)
	}

	ctx.JSON(http.StatusOK, gin.H{"list": list})
}
