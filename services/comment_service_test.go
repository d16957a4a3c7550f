package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentBodyLength(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author")
	reader := createUser(t, db, "reader")
	article := createArticle(t, db, author, "Commentable")
	svc := newCommentService(db)

	for _, body := range []string{"", "x"} {
		_, err := svc.Create(article.Slug, reader.ID, body, nil)
		require.Error(t, err, "body %q", body)
		assert.True(t, IsKind(err, KindInvalidInput))
	}

	comment, err := svc.Create(article.Slug, reader.ID, "ok", nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", comment.Body)
	assert.Equal(t, reader.Username, comment.Author.Username)
}

func TestReplyNesting(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author")
	reader := createUser(t, db, "reader")
	article := createArticle(t, db, author, "Threaded")
	svc := newCommentService(db)

	top, err := svc.Create(article.Slug, reader.ID, "top-level thoughts", nil)
	require.NoError(t, err)

	reply, err := svc.Create(article.Slug, author.ID, "a direct reply", &top.ID)
	require.NoError(t, err)
	require.NotNil(t, reply.ParentCommentID)
	assert.Equal(t, top.ID, *reply.ParentCommentID)

	comments, err := svc.List(article.Slug)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Len(t, comments[0].Replies, 1)
	assert.Equal(t, "a direct reply", comments[0].Replies[0].Body)
}

func TestReplyToMissingCommentNotFound(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author")
	article := createArticle(t, db, author, "Lonely")
	svc := newCommentService(db)

	missing := uint(404)
	_, err := svc.Create(article.Slug, author.ID, "into the void", &missing)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestReplyToCommentOnOtherArticle(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author")
	first := createArticle(t, db, author, "First")
	second := createArticle(t, db, author, "Second")
	svc := newCommentService(db)

	top, err := svc.Create(first.Slug, author.ID, "belongs to first", nil)
	require.NoError(t, err)

	_, err = svc.Create(second.Slug, author.ID, "wrong thread", &top.ID)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestUpdateCommentBodyRevalidates(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author")
	article := createArticle(t, db, author, "Editable")
	svc := newCommentService(db)

	comment, err := svc.Create(article.Slug, author.ID, "first draft", nil)
	require.NoError(t, err)

	_, err = svc.UpdateBody(comment, "x")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInvalidInput))

	updated, err := svc.UpdateBody(comment, "second draft")
	require.NoError(t, err)
	assert.Equal(t, "second draft", updated.Body)
}
