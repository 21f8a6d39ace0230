package models

import "time"

// Comment is immutable once created: no update path exists, and deletion
// only happens as a cascade of deleting the owning article.
type Comment struct {
	ID        string    `json:"id" gorm:"primarykey"`
	ArticleID uint      `json:"article_id" gorm:"index;not null"`
	Author    string    `json:"author" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}
