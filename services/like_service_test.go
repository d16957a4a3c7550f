package services

import (
	"testing"

	"authorshaven/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeOutcome(t *testing.T) {
	liked := &models.Like{Like: true}
	disliked := &models.Like{Like: false}

	assert.Equal(t, LikeCreated, likeOutcome(nil, true))
	assert.Equal(t, LikeCreated, likeOutcome(nil, false))
	assert.Equal(t, LikeDeleted, likeOutcome(liked, true))
	assert.Equal(t, LikeDeleted, likeOutcome(disliked, false))
	assert.Equal(t, LikeUpdated, likeOutcome(liked, false))
	assert.Equal(t, LikeUpdated, likeOutcome(disliked, true))
}

func TestSameReactionTwiceRetracts(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author")
	reader := createUser(t, db, "reader")
	article := createArticle(t, db, author, "Retractable")
	svc := newLikeService(db)

	first, err := svc.React(article.ID, reader.ID, true)
	require.NoError(t, err)
	assert.Equal(t, LikeCreated, first.Action)
	assert.Equal(t, int64(1), first.Likes)

	second, err := svc.React(article.ID, reader.ID, true)
	require.NoError(t, err)
	assert.Equal(t, LikeDeleted, second.Action)
	assert.Nil(t, second.Like)
	assert.Equal(t, int64(0), second.Likes)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Where("article_id = ?", article.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestOppositeReactionFlips(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author")
	reader := createUser(t, db, "reader")
	article := createArticle(t, db, author, "Fickle")
	svc := newLikeService(db)

	first, err := svc.React(article.ID, reader.ID, true)
	require.NoError(t, err)
	assert.Equal(t, LikeCreated, first.Action)

	second, err := svc.React(article.ID, reader.ID, false)
	require.NoError(t, err)
	assert.Equal(t, LikeUpdated, second.Action)
	require.NotNil(t, second.Like)
	assert.False(t, second.Like.Like)
	assert.Equal(t, int64(0), second.Likes)
	assert.Equal(t, int64(1), second.Dislikes)
}

func TestReactToMissingArticle(t *testing.T) {
	db := newTestDB(t)
	reader := createUser(t, db, "reader")
	svc := newLikeService(db)

	_, err := svc.React(4242, reader.ID, true)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestReactionCountsAcrossUsers(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author")
	article := createArticle(t, db, author, "Crowd Opinions")
	svc := newLikeService(db)

	for i, like := range []bool{true, true, false} {
		reader := createUser(t, db, "reader"+string(rune('a'+i)))
		_, err := svc.React(article.ID, reader.ID, like)
		require.NoError(t, err)
	}

	likes, dislikes, err := newArticleService(db).articles.ReactionCounts(article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), likes)
	assert.Equal(t, int64(1), dislikes)
}
