package repositories

import (
	"blog-cms/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id string) (*models.Comment, error)
	GetByArticleID(articleID uint) ([]models.Comment, error)
	CountByArticleID(articleID uint) (int64, error)
	DeleteByArticleID(articleID uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByID(id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ?", id).First(&comment).Error
	return &comment, err
}

// GetByArticleID returns the normalized comment records, newest first.
// Used for reconciling an article whose embedded list went stale.
func (r *commentRepository) GetByArticleID(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("article_id = ?", articleID).
		Order("created_at desc").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) CountByArticleID(articleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Where("article_id = ?", articleID).
		Count(&count).Error
	return count, err
}

func (r *commentRepository) DeleteByArticleID(articleID uint) error {
	return r.db.Where("article_id = ?", articleID).Delete(&models.Comment{}).Error
}
