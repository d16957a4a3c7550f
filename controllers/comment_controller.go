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

type commentRequest struct {
	Body string `json:"body" binding:"required"`
}

func newCommentService() *services.CommentService {
	return services.NewCommentService(
		repository.NewArticleRepository(global.Db),
		repository.NewCommentRepository(global.Db),
	)
}

func CreateComment(ctx *gin.Context) {
	var req commentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := newCommentService().Create(ctx.Param("slug"), currentUserID(ctx), req.Body, nil)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, serializers.NewCommentResponse(comment))
}

// ReplyToComment creates a one-level reply under an existing comment.
func ReplyToComment(ctx *gin.Context) {
	parentID64, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}
	parentID := uint(parentID64)

	var req commentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := newCommentService().Create(ctx.Param("slug"), currentUserID(ctx), req.Body, &parentID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, serializers.NewCommentResponse(comment))
}

func ListComments(ctx *gin.Context) {
	comments, err := newCommentService().List(ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"comments": serializers.NewCommentListResponse(comments)})
}

// UpdateComment edits a comment body. Only the comment's author may edit it;
// that check lives here at the caller boundary.
func UpdateComment(ctx *gin.Context) {
	commentID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	var req commentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := newCommentService()
	comment, err := svc.Get(uint(commentID))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if comment.AuthorID != currentUserID(ctx) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You are not authorised to edit this comment"})
		return
	}

	comment, err = svc.UpdateBody(comment, req.Body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, serializers.NewCommentResponse(comment))
}
