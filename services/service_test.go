package services

import (
	"fmt"
	"testing"

	"authorshaven/models"
	"authorshaven/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection would see a different in-memory database.
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

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createArticle(t *testing.T, db *gorm.DB, author *models.User, title string) *models.Article {
	t.Helper()
	svc := newArticleService(db)
	article, err := svc.Create(author.ID, ArticleInput{
		Title: title,
		Body:  "Some body of text that is long enough to read.",
	})
	require.NoError(t, err)
	return article
}

func newArticleService(db *gorm.DB) *ArticleService {
	return NewArticleService(
		repository.NewArticleRepository(db),
		repository.NewUserRepository(db),
		repository.NewTagRepository(db),
	)
}

func newRatingService(db *gorm.DB) *RatingService {
	return NewRatingService(
		repository.NewArticleRepository(db),
		repository.NewUserRepository(db),
		repository.NewRatingRepository(db),
	)
}

func newLikeService(db *gorm.DB) *LikeService {
	return NewLikeService(
		repository.NewArticleRepository(db),
		repository.NewUserRepository(db),
		repository.NewLikeRepository(db),
	)
}

func newFavoriteService(db *gorm.DB) *FavoriteService {
	return NewFavoriteService(
		repository.NewArticleRepository(db),
		repository.NewUserRepository(db),
		repository.NewFavoriteRepository(db),
	)
}

func newCommentService(db *gorm.DB) *CommentService {
	return NewCommentService(
		repository.NewArticleRepository(db),
		repository.NewCommentRepository(db),
	)
}

func newBookmarkService(db *gorm.DB) *BookmarkService {
	return NewBookmarkService(
		repository.NewArticleRepository(db),
		repository.NewBookmarkRepository(db),
	)
}

func newReportService(db *gorm.DB) *ReportService {
	return NewReportService(
		repository.NewArticleRepository(db),
		repository.NewUserRepository(db),
		repository.NewReportRepository(db),
	)
}
