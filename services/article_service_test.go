package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateArticleWithTags(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author")
	svc := newArticleService(db)

	article, err := svc.Create(author.ID, ArticleInput{
		Title: "Go for Writers",
		Body:  "words words words",
		Tags:  "go, writing , go-tools",
	})
	require.NoError(t, err)

	assert.Equal(t, "go-for-writers", article.Slug)
	assert.Equal(t, author.Username, article.Author.Username)
	require.Len(t, article.Tags, 3)

	names := []string{article.Tags[0].Tag, article.Tags[1].Tag, article.Tags[2].Tag}
	assert.ElementsMatch(t, []string{"go", "writing", "go-tools"}, names)
}

func TestCreateReusesExistingTags(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author")
	svc := newArticleService(db)

	first, err := svc.Create(author.ID, ArticleInput{Title: "One", Body: "b o d y", Tags: "go"})
	require.NoError(t, err)
	second, err := svc.Create(author.ID, ArticleInput{Title: "Two", Body: "b o d y", Tags: "go"})
	require.NoError(t, err)

	require.Len(t, first.Tags, 1)
	require.Len(t, second.Tags, 1)
	assert.Equal(t, first.Tags[0].ID, second.Tags[0].ID)
}

func TestDuplicateTitlesGetDistinctSlugs(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author")
	svc := newArticleService(db)

	first, err := svc.Create(author.ID, ArticleInput{Title: "Same Title", Body: "body"})
	require.NoError(t, err)
	second, err := svc.Create(author.ID, ArticleInput{Title: "Same Title", Body: "body"})
	require.NoError(t, err)

	assert.Equal(t, "same-title", first.Slug)
	assert.Equal(t, "same-title-1", second.Slug)
}

func TestUpdateByNonAuthorForbiddenAndUnchanged(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author")
	intruder := createUser(t, db, "intruder")
	svc := newArticleService(db)

	article, err := svc.Create(author.ID, ArticleInput{
		Title: "Untouchable",
		Body:  "original body",
		Tags:  "history",
	})
	require.NoError(t, err)

	title := "Defaced"
	body := "vandalism"
	_, err = svc.Update(article.Slug, intruder.ID, ArticleUpdateInput{
		Title: &title,
		Body:  &body,
		Tags:  "graffiti",
	})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindForbidden))

	got, err := svc.Get(article.Slug)
	require.NoError(t, err)
	assert.Equal(t, "Untouchable", got.Title)
	assert.Equal(t, "original body", got.Body)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "history", got.Tags[0].Tag)
}

func TestUpdateReplacesTagSetWholesale(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author")
	svc := newArticleService(db)

	article, err := svc.Create(author.ID, ArticleInput{
		Title: "Retagged",
		Body:  "body",
		Tags:  "old-one, old-two",
	})
	require.NoError(t, err)

	updated, err := svc.Update(article.Slug, author.ID, ArticleUpdateInput{Tags: "fresh"})
	require.NoError(t, err)

	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "fresh", updated.Tags[0].Tag)
}

func TestUpdateKeepsAbsentFields(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author")
	svc := newArticleService(db)

	article, err := svc.Create(author.ID, ArticleInput{
		Title:       "Partial",
		Description: "original description",
		Body:        "original body",
	})
	require.NoError(t, err)

	body := "new body with more words in it"
	updated, err := svc.Update(article.Slug, author.ID, ArticleUpdateInput{Body: &body})
	require.NoError(t, err)

	assert.Equal(t, "Partial", updated.Title)
	assert.Equal(t, "original description", updated.Description)
	assert.Equal(t, body, updated.Body)
}

func TestRecreateArticleAfterDelete(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author")
	svc := newArticleService(db)

	first, err := svc.Create(author.ID, ArticleInput{Title: "Reborn", Body: "body"})
	require.NoError(t, err)
	assert.Equal(t, "reborn", first.Slug)

	require.NoError(t, svc.Delete(first.Slug, author.ID))

	// The deleted row still owns "reborn" in the unique index; the new
	// article must get the next free slug instead of a duplicate-key error.
	second, err := svc.Create(author.ID, ArticleInput{Title: "Reborn", Body: "body"})
	require.NoError(t, err)
	assert.Equal(t, "reborn-1", second.Slug)
}

func TestUsersRatingOnArticle(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author")
	reader := createUser(t, db, "reader")
	other := createUser(t, db, "other")
	article := createArticle(t, db, author, "Rated By Me")
	svc := newArticleService(db)

	_, err := newRatingService(db).Rate(RatingInput{Article: article.Slug, Rating: 4, RatedBy: reader.ID})
	require.NoError(t, err)

	mine, err := svc.GetForUser(article.Slug, reader.ID)
	require.NoError(t, err)
	require.NotNil(t, mine.UsersRating)
	assert.Equal(t, 4, *mine.UsersRating)

	theirs, err := svc.GetForUser(article.Slug, other.ID)
	require.NoError(t, err)
	assert.Nil(t, theirs.UsersRating)

	anonymous, err := svc.Get(article.Slug)
	require.NoError(t, err)
	assert.Nil(t, anonymous.UsersRating)

	list, err := svc.ListForUser(reader.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].UsersRating)
	assert.Equal(t, 4, *list[0].UsersRating)
}

func TestDeleteArticleAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author")
	intruder := createUser(t, db, "intruder")
	svc := newArticleService(db)

	article, err := svc.Create(author.ID, ArticleInput{Title: "Doomed", Body: "body"})
	require.NoError(t, err)

	err = svc.Delete(article.Slug, intruder.ID)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindForbidden))

	require.NoError(t, svc.Delete(article.Slug, author.ID))

	_, err = svc.Get(article.Slug)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}
