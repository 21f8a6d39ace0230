package services

import (
	"testing"

	"blog-cms/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateArticleSetsAuthorAndEmptyComments(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	svc := NewArticleService(articleRepo, newFakeCommentRepo(), zerolog.Nop())

	article, err := svc.CreateArticle(models.CreateArticleRequest{
		Title:      "Intro to Go",
		Perex:      "A short summary",
		Content:    "# Hello",
		PrivateDoc: true,
		Image:      models.FeaturedImage{URL: "https://img.example/x.png", ID: "img-1"},
	}, 7)
	require.NoError(t, err)

	assert.Equal(t, uint(7), article.AuthorID)
	assert.True(t, article.PrivateDoc)
	assert.Equal(t, "img-1", article.FeaturedImage.ID)
	assert.NotNil(t, article.Comments)
	assert.Empty(t, article.Comments)
}

func TestDeleteArticleCascadesComments(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	commentRepo := newFakeCommentRepo()
	article := newTestArticle(articleRepo)

	_ = commentRepo.Create(&models.Comment{ID: "c1", ArticleID: article.ID, Author: "bob", Content: "hi"})
	_ = commentRepo.Create(&models.Comment{ID: "c2", ArticleID: article.ID, Author: "carol", Content: "ho"})
	_ = commentRepo.Create(&models.Comment{ID: "c3", ArticleID: 999, Author: "dave", Content: "elsewhere"})

	svc := NewArticleService(articleRepo, commentRepo, zerolog.Nop())

	require.NoError(t, svc.DeleteArticle(article.ID, article.AuthorID))

	_, err := articleRepo.GetByID(article.ID)
	assert.Error(t, err)

	// Only the article's own comments are cascaded.
	count, _ := commentRepo.CountByArticleID(article.ID)
	assert.Zero(t, count)
	other, _ := commentRepo.CountByArticleID(999)
	assert.EqualValues(t, 1, other)
}

func TestDeleteArticleRequiresAuthor(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	article := newTestArticle(articleRepo)

	svc := NewArticleService(articleRepo, newFakeCommentRepo(), zerolog.Nop())

	err := svc.DeleteArticle(article.ID, article.AuthorID+1)

	var unauthorized models.ErrorUnauthorized
	require.ErrorAs(t, err, &unauthorized)

	_, getErr := articleRepo.GetByID(article.ID)
	assert.NoError(t, getErr)
}

func TestDeleteArticleNotFound(t *testing.T) {
	svc := NewArticleService(newFakeArticleRepo(), newFakeCommentRepo(), zerolog.Nop())

	err := svc.DeleteArticle(404, 1)

	var notFound models.ErrorNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestGetArticleHidesPrivateFromPublic(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	article := &models.Article{AuthorID: 1, Title: "secret", Content: "x", PrivateDoc: true}
	_ = articleRepo.Create(article)

	svc := NewArticleService(articleRepo, newFakeCommentRepo(), zerolog.Nop())

	_, err := svc.GetArticle(article.ID, 0, true)
	var notFound models.ErrorNotFound
	require.ErrorAs(t, err, &notFound)

	// The author still sees it on the dashboard path.
	got, err := svc.GetArticle(article.ID, 1, false)
	require.NoError(t, err)
	assert.Equal(t, "secret", got.Title)
}

func TestUpdateArticleKeepsCommentsAndAuthor(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	article := newTestArticle(articleRepo, models.Comment{ID: "c1", Author: "bob", Content: "hi"})

	svc := NewArticleService(articleRepo, newFakeCommentRepo(), zerolog.Nop())

	updated, err := svc.UpdateArticle(article.ID, models.UpdateArticleRequest{
		Title:   "New title",
		Content: "new body",
	}, article.AuthorID)
	require.NoError(t, err)

	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, article.AuthorID, updated.AuthorID)
	require.Len(t, updated.Comments, 1)
	assert.Equal(t, "c1", updated.Comments[0].ID)
}
