package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthorRequestModel struct {
	ID          string     `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string     `gorm:"type:uuid;not null;index" json:"user_id"`
	FullName    string     `gorm:"type:varchar(255);not null" json:"full_name"`
	Email       string     `gorm:"type:varchar(255);not null" json:"email"`
	Bio         string     `gorm:"type:text;not null" json:"bio"`
	Topics      string     `gorm:"type:text" json:"topics"`
	Portfolio   string     `gorm:"type:varchar(500)" json:"portfolio"`
	Status      string     `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	SubmittedAt time.Time  `json:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	ReviewedBy  string     `gorm:"type:uuid" json:"reviewed_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	User *UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AuthorRequestModel) TableName() string {
	return "author_requests"
}

func (r *AuthorRequestModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.SubmittedAt.IsZero() {
		r.SubmittedAt = time.Now()
	}
	return nil
}
