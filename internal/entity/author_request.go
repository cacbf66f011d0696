package entity

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// AuthorRequest is a user's application to be promoted to the author role.
// Status only ever moves out of pending, and only through approval.
type AuthorRequest struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	FullName    string        `json:"full_name"`
	Email       string        `json:"email"`
	Bio         string        `json:"bio"`
	Topics      string        `json:"topics,omitempty"`
	Portfolio   string        `json:"portfolio,omitempty"`
	Status      RequestStatus `json:"status"`
	SubmittedAt time.Time     `json:"submitted_at"`
	ReviewedAt  *time.Time    `json:"reviewed_at,omitempty"`
	ReviewedBy  string        `json:"reviewed_by,omitempty"`
	User        *User         `json:"user,omitempty"`
}

type Stats struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalAuthors   int64 `json:"totalAuthors"`
	TotalBlogs     int64 `json:"totalBlogs"`
	PublishedBlogs int64 `json:"publishedBlogs"`
}
