package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// FeaturedImage references an image stored on the external image host.
// The ID is needed to delete the image when the article goes away.
type FeaturedImage struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}

type Article struct {
	ID            uint           `json:"id" gorm:"primarykey"`
	AuthorID      uint           `json:"author_id" gorm:"not null"`
	Author        User           `json:"author" gorm:"foreignKey:AuthorID"`
	Title         string         `json:"title" gorm:"not null"`
	Perex         string         `json:"perex"`
	Content       string         `json:"content" gorm:"type:text;not null"`
	PrivateDoc    bool           `json:"private_doc" gorm:"default:false"`
	FeaturedImage FeaturedImage  `json:"cloudinary_img" gorm:"embedded;embeddedPrefix:image_"`
	Comments      CommentList    `json:"comments" gorm:"type:jsonb;default:'[]'"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// CommentList is the article's denormalized comment sequence, newest first.
// It is stored as a single jsonb column so the prepend-and-save in the
// comment service is one document-level write. The comments table remains
// the system of record for comment identity.
type CommentList []Comment

func (l CommentList) Value() (driver.Value, error) {
	if l == nil {
		l = CommentList{}
	}
	return json.Marshal(l)
}

func (l *CommentList) Scan(value interface{}) error {
	if value == nil {
		*l = CommentList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into CommentList", value)
	}

	return json.Unmarshal(data, l)
}
