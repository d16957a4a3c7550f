package controllers

import (
	"net/http"

	"authorshaven/global"
	"authorshaven/repository"
	"authorshaven/services"

	"github.com/gin-gonic/gin"
)

// Rating is a pointer so an explicit 0 reaches the range validation instead
// of tripping the required check.
type rateRequest struct {
	Rating *int `json:"rating" binding:"required"`
}

func newRatingService() *services.RatingService {
	return services.NewRatingService(
		repository.NewArticleRepository(global.Db),
		repository.NewUserRepository(global.Db),
		repository.NewRatingRepository(global.Db),
	)
}

func RateArticle(ctx *gin.Context) {
	var req rateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := newRatingService().Rate(services.RatingInput{
		Article: ctx.Param("slug"),
		Rating:  *req.Rating,
		RatedBy: currentUserID(ctx),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, result)
}
