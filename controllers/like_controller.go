package controllers

import (
	"net/http"
	"strconv"

	"authorshaven/global"
	"authorshaven/repository"
	"authorshaven/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis"
)

type likeRequest struct {
	Like *bool `json:"like" binding:"required"`
}

func newLikeService() *services.LikeService {
	return services.NewLikeService(
		repository.NewArticleRepository(global.Db),
		repository.NewUserRepository(global.Db),
		repository.NewLikeRepository(global.Db),
	)
}

// ReactToArticle records a like or dislike. The same payload twice retracts
// the reaction; the opposite payload flips it. The response carries the
// action that was performed.
func ReactToArticle(ctx *gin.Context) {
	articleIDStr := ctx.Param("id")
	articleID, err := strconv.ParseUint(articleIDStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	var req likeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := newLikeService().React(uint(articleID), currentUserID(ctx), *req.Like)
	if err != nil {
		respondError(ctx, err)
		return
	}

	// Write the fresh counts through to Redis; the DB stays authoritative.
	if global.RedisDB != nil {
		pipe := global.RedisDB.TxPipeline()
		pipe.Set("article:"+articleIDStr+":likes", result.Likes, 0)
		pipe.Set("article:"+articleIDStr+":dislikes", result.Dislikes, 0)
		pipe.ZAdd("rank:article:likes", redis.Z{Score: float64(result.Likes), Member: articleIDStr})
		if _, err := pipe.Exec(); err != nil {
			ctx.JSON(http.StatusOK, gin.H{
				"action_performed": result.Action,
				"like":             result.Like,
				"likes":            result.Likes,
				"dislikes":         result.Dislikes,
				"cache_error":      err.Error(),
			})
			return
		}
	}

	ctx.JSON(http.StatusOK, result)
}

// parseCachedCounts turns the raw redis strings back into numbers so the
// cache-hit payload has the same shape as the database fallback.
func parseCachedCounts(likesStr, dislikesStr string) (int64, int64, error) {
	likes, err := strconv.ParseInt(likesStr, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	dislikes, err := strconv.ParseInt(dislikesStr, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return likes, dislikes, nil
}

// GetArticleReactions serves reaction counts from Redis and falls back to
// the database when the cache is cold.
func GetArticleReactions(ctx *gin.Context) {
	articleIDStr := ctx.Param("id")

	if global.RedisDB != nil {
		likesStr, errL := global.RedisDB.Get("article:" + articleIDStr + ":likes").Result()
		dislikesStr, errD := global.RedisDB.Get("article:" + articleIDStr + ":dislikes").Result()
		if errL == nil && errD == nil {
			if likes, dislikes, err := parseCachedCounts(likesStr, dislikesStr); err == nil {
				ctx.JSON(http.StatusOK, gin.H{"likes": likes, "dislikes": dislikes})
				return
			}
			// A mangled cache entry falls through to the database.
		} else if (errL != nil && errL != redis.Nil) || (errD != nil && errD != redis.Nil) {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "cache unavailable"})
			return
		}
	}

	articleID, err := strconv.ParseUint(articleIDStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}
	likes, dislikes, err := repository.NewArticleRepository(global.Db).ReactionCounts(uint(articleID))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"likes": likes, "dislikes": dislikes})
}
