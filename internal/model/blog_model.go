package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID  string         `gorm:"type:uuid;not null;index" json:"author_id"`
	Title     string         `gorm:"type:varchar(255);not null" json:"title"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Image     string         `gorm:"type:varchar(500);not null" json:"image"`
	Category  string         `gorm:"type:varchar(100);index" json:"category"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Author   *UserModel     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Comments []CommentModel `gorm:"foreignKey:BlogID" json:"comments,omitempty"`
	Likes    []LikeModel    `gorm:"foreignKey:BlogID" json:"likes,omitempty"`
}

func (BlogModel) TableName() string {
	return "blogs"
}

func (b *BlogModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

type CommentModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	BlogID    string    `gorm:"type:uuid;not null;index" json:"blog_id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`

	User *UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// LikeModel rows are unique per (user, blog); the constraint lives in the
// migration and makes the like set race-safe at the storage layer.
type LikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	BlogID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_blog" json:"blog_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_blog" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
