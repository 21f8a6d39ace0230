package services

import (
	"errors"

	"blog-cms/models"
	"blog-cms/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest, userID uint) (*models.Article, error)
	GetArticle(id uint, userID uint, isPublic bool) (*models.Article, error)
	GetArticles(params models.ArticleListParams, userID uint, isPublic bool) ([]models.Article, int64, error)
	UpdateArticle(id uint, req models.UpdateArticleRequest, userID uint) (*models.Article, error)
	DeleteArticle(id uint, userID uint) error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	commentRepo repositories.CommentRepository
	log         zerolog.Logger
}

func NewArticleService(articleRepo repositories.ArticleRepository, commentRepo repositories.CommentRepository, log zerolog.Logger) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		commentRepo: commentRepo,
		log:         log,
	}
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest, userID uint) (*models.Article, error) {
	article := &models.Article{
		AuthorID:      userID,
		Title:         req.Title,
		Perex:         req.Perex,
		Content:       req.Content,
		PrivateDoc:    req.PrivateDoc,
		FeaturedImage: req.Image,
		Comments:      models.CommentList{},
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, models.ErrorStore{Message: "failed to create article"}
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) GetArticle(id uint, userID uint, isPublic bool) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return nil, err
	}

	// Private articles are only visible to their author.
	if article.PrivateDoc && (isPublic || article.AuthorID != userID) {
		return nil, models.ErrorNotFound{Message: "article not found"}
	}

	return article, nil
}

func (s *articleService) GetArticles(params models.ArticleListParams, userID uint, isPublic bool) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(params, userID, isPublic)
}

// UpdateArticle replaces the editable fields. Author and creation time are
// immutable; the embedded comment list is owned by the comment flow and is
// left untouched here.
func (s *articleService) UpdateArticle(id uint, req models.UpdateArticleRequest, userID uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return nil, err
	}

	if article.AuthorID != userID {
		return nil, models.ErrorUnauthorized{Message: "not the article author"}
	}

	article.Title = req.Title
	article.Perex = req.Perex
	article.Content = req.Content
	article.PrivateDoc = req.PrivateDoc
	if req.Image.ID != "" {
		article.FeaturedImage = req.Image
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, models.ErrorStore{Message: "failed to update article"}
	}

	return article, nil
}

// DeleteArticle removes the article and cascades to its comment records.
// The featured image lives on the external host and is the caller's cleanup
// concern; its deletion must not block the article delete.
func (s *articleService) DeleteArticle(id uint, userID uint) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "article not found"}
		}
		return err
	}

	if article.AuthorID != userID {
		return models.ErrorUnauthorized{Message: "not the article author"}
	}

	if err := s.commentRepo.DeleteByArticleID(id); err != nil {
		return models.ErrorStore{Message: "failed to delete article comments"}
	}

	if err := s.articleRepo.Delete(id); err != nil {
		s.log.Error().Err(err).Uint("article_id", id).Msg("article delete failed after comment cascade")
		return models.ErrorStore{Message: "failed to delete article"}
	}

	return nil
}
