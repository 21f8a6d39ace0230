package services

import (
	"errors"

	"blog-cms/models"

	"gorm.io/gorm"
)

// In-memory repository fakes used by the service tests.

type fakeCommentRepo struct {
	comments  map[string]models.Comment
	createErr error
	deleteErr error
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]models.Comment)}
}

func (f *fakeCommentRepo) Create(comment *models.Comment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.comments[comment.ID] = *comment
	return nil
}

func (f *fakeCommentRepo) GetByID(id string) (*models.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (f *fakeCommentRepo) GetByArticleID(articleID uint) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range f.comments {
		if c.ArticleID == articleID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) CountByArticleID(articleID uint) (int64, error) {
	var count int64
	for _, c := range f.comments {
		if c.ArticleID == articleID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCommentRepo) DeleteByArticleID(articleID uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for id, c := range f.comments {
		if c.ArticleID == articleID {
			delete(f.comments, id)
		}
	}
	return nil
}

type fakeArticleRepo struct {
	articles  map[uint]*models.Article
	nextID    uint
	updateErr error
	deleteErr error
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[uint]*models.Article), nextID: 1}
}

func (f *fakeArticleRepo) Create(article *models.Article) error {
	article.ID = f.nextID
	f.nextID++
	stored := *article
	f.articles[article.ID] = &stored
	return nil
}

func (f *fakeArticleRepo) GetByID(id uint) (*models.Article, error) {
	a, ok := f.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeArticleRepo) GetList(params models.ArticleListParams, authorID uint, isPublic bool) ([]models.Article, int64, error) {
	var out []models.Article
	for _, a := range f.articles {
		if isPublic && a.PrivateDoc {
			continue
		}
		if !isPublic && authorID > 0 && a.AuthorID != authorID {
			continue
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeArticleRepo) Update(article *models.Article) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.articles[article.ID]; !ok {
		return errors.New("article missing")
	}
	stored := *article
	f.articles[article.ID] = &stored
	return nil
}

func (f *fakeArticleRepo) Delete(id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.articles, id)
	return nil
}
