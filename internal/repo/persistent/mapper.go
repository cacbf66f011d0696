package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Username:  m.Username,
		Password:  m.Password,
		Role:      entity.UserRole(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Email:     e.Email,
		Username:  e.Username,
		Password:  e.Password,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToBlogEntity(m *model.BlogModel) *entity.Blog {
	if m == nil {
		return nil
	}

	blog := &entity.Blog{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Title:     m.Title,
		Content:   m.Content,
		Image:     m.Image,
		Category:  m.Category,
		Likes:     make([]string, 0, len(m.Likes)),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.Author != nil {
		author := ToUserEntity(m.Author)
		author.Password = ""
		blog.Author = author
	}

	for _, like := range m.Likes {
		blog.Likes = append(blog.Likes, like.UserID)
	}

	if len(m.Comments) > 0 {
		blog.Comments = make([]entity.Comment, len(m.Comments))
		for i := range m.Comments {
			blog.Comments[i] = ToCommentEntity(&m.Comments[i])
		}
	}

	return blog
}

func ToBlogModel(e *entity.Blog) *model.BlogModel {
	if e == nil {
		return nil
	}

	return &model.BlogModel{
		ID:        e.ID,
		AuthorID:  e.AuthorID,
		Title:     e.Title,
		Content:   e.Content,
		Image:     e.Image,
		Category:  e.Category,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) entity.Comment {
	if m == nil {
		return entity.Comment{}
	}

	comment := entity.Comment{
		ID:        m.ID,
		BlogID:    m.BlogID,
		UserID:    m.UserID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}

	if m.User != nil {
		comment.Username = m.User.Username
	}

	return comment
}

func ToAuthorRequestEntity(m *model.AuthorRequestModel) *entity.AuthorRequest {
	if m == nil {
		return nil
	}

	request := &entity.AuthorRequest{
		ID:          m.ID,
		UserID:      m.UserID,
		FullName:    m.FullName,
		Email:       m.Email,
		Bio:         m.Bio,
		Topics:      m.Topics,
		Portfolio:   m.Portfolio,
		Status:      entity.RequestStatus(m.Status),
		SubmittedAt: m.SubmittedAt,
		ReviewedAt:  m.ReviewedAt,
		ReviewedBy:  m.ReviewedBy,
	}

	if m.User != nil {
		user := ToUserEntity(m.User)
		user.Password = ""
		request.User = user
	}

	return request
}

func ToAuthorRequestModel(e *entity.AuthorRequest) *model.AuthorRequestModel {
	if e == nil {
		return nil
	}

	return &model.AuthorRequestModel{
		ID:          e.ID,
		UserID:      e.UserID,
		FullName:    e.FullName,
		Email:       e.Email,
		Bio:         e.Bio,
		Topics:      e.Topics,
		Portfolio:   e.Portfolio,
		Status:      string(e.Status),
		SubmittedAt: e.SubmittedAt,
		ReviewedAt:  e.ReviewedAt,
		ReviewedBy:  e.ReviewedBy,
	}
}
