package controllers

import (
	"errors"
	"net/http"

	"authorshaven/services"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the HTTP status of its kind;
// anything that is not an AppError is a plain 500.
func respondError(ctx *gin.Context, err error) {
	var appErr *services.AppError
	if errors.As(err, &appErr) {
		ctx.JSON(appErr.Status(), gin.H{"error": appErr.Message})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// currentUserID reads the user id the auth middleware stored.
func currentUserID(ctx *gin.Context) uint {
	value, _ := ctx.Get("userID")
	id, _ := value.(uint)
	return id
}
