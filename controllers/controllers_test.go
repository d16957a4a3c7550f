package controllers

import (
	"testing"

	"authorshaven/global"
	"authorshaven/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points global.Db at a fresh in-memory database for the test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Article{},
		&models.Rating{},
		&models.Like{},
		&models.Comment{},
		&models.FavoriteArticle{},
		&models.Bookmark{},
		&models.ReportedArticle{},
	))

	global.Db = db
	t.Cleanup(func() { global.Db = nil })
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Password: "hashed"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedArticle(t *testing.T, db *gorm.DB, author *models.User, title, slug string) *models.Article {
	t.Helper()
	article := &models.Article{Title: title, Slug: slug, Body: "body", AuthorID: author.ID}
	require.NoError(t, db.Create(article).Error)
	return article
}

// asUser injects the context keys the auth middleware would have set.
func asUser(userID uint, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set("userID", userID)
		handler(ctx)
	}
}
