package services

import (
	"errors"
	"strings"
	"time"

	"blog-cms/models"
	"blog-cms/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CommentService interface {
	SubmitComment(req models.CreateCommentRequest, username string) (*models.Comment, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	log         zerolog.Logger
}

func NewCommentService(commentRepo repositories.CommentRepository, articleRepo repositories.ArticleRepository, log zerolog.Logger) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		log:         log,
	}
}

// SubmitComment persists the comment record first and only then updates the
// owning article's embedded list. A crash or failure between the two writes
// leaves an orphaned-but-valid comment, never an article entry with no
// backing record. The article's jsonb list can therefore lag behind the
// comments table until the next successful update.
func (s *commentService) SubmitComment(req models.CreateCommentRequest, username string) (*models.Comment, error) {
	if username == "" {
		return nil, models.ErrorUnauthorized{Message: "authentication required"}
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, models.ErrorValidation{Message: "content is required"}
	}

	comment := &models.Comment{
		ID:        uuid.NewString(),
		ArticleID: req.ArticleID,
		Author:    username,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, models.ErrorStore{Message: "failed to store comment"}
	}

	article, err := s.articleRepo.GetByID(req.ArticleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn().
				Str("comment_id", comment.ID).
				Uint("article_id", req.ArticleID).
				Msg("comment stored for missing article")
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return nil, models.ErrorStore{Message: "failed to load article"}
	}

	// New comments are prepended, never inserted mid-sequence.
	article.Comments = append(models.CommentList{*comment}, article.Comments...)

	if err := s.articleRepo.Update(article); err != nil {
		s.log.Warn().
			Err(err).
			Str("comment_id", comment.ID).
			Uint("article_id", article.ID).
			Msg("comment stored but article comment list is stale")
		return nil, models.ErrorPartialFailure{Message: "comment stored but article update failed"}
	}

	return comment, nil
}
