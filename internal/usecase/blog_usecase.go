package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"inkwell/internal/entity"
	"inkwell/internal/policy"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/cache"
	"inkwell/pkg/logger"
	"inkwell/pkg/s3"
)

type BlogUseCase interface {
	CreateBlog(actor entity.Actor, title, content, image, category string) (*entity.Blog, error)
	GetBlog(blogID string) (*entity.Blog, error)
	ListBlogs() ([]*entity.Blog, error)
	ListByCategory(category string) ([]*entity.Blog, error)
	ListByAuthor(authorID string) ([]*entity.Blog, error)
	UpdateBlog(actor entity.Actor, blogID string, title, content, image, category *string) (*entity.Blog, error)
	DeleteBlog(actor entity.Actor, blogID string) error
	ToggleLike(actor entity.Actor, blogID string) (bool, int64, error)
	AddComment(actor entity.Actor, blogID, text string) (*entity.Comment, error)
	ListComments(blogID string) ([]entity.Comment, error)
	CategoryCounts() (map[string]int64, error)
	UploadImage(actor entity.Actor, file io.Reader, fileKey, contentType string) (string, error)
}

type blogUseCase struct {
	blogRepo    persistent.BlogRepository
	countsCache *cache.CountsCache
	s3Client    *s3.Client
	logger      *logger.Logger
}

func NewBlogUseCase(
	blogRepo persistent.BlogRepository,
	countsCache *cache.CountsCache,
	s3Client *s3.Client,
	logger *logger.Logger,
) BlogUseCase {
	return &blogUseCase{
		blogRepo:    blogRepo,
		countsCache: countsCache,
		s3Client:    s3Client,
		logger:      logger,
	}
}

func (uc *blogUseCase) CreateBlog(actor entity.Actor, title, content, image, category string) (*entity.Blog, error) {
	if err := policy.CanCreateBlog(actor); err != nil {
		return nil, err
	}

	if title == "" || content == "" || image == "" {
		return nil, fmt.Errorf("%w: title, content and image are required", entity.ErrValidation)
	}

	// Ownership comes from the token, never from the payload.
	blog := &entity.Blog{
		AuthorID: actor.ID,
		Title:    title,
		Content:  content,
		Image:    image,
		Category: strings.TrimSpace(category),
	}

	if err := uc.blogRepo.Create(blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	uc.countsCache.Invalidate(context.Background())
	return blog, nil
}

func (uc *blogUseCase) GetBlog(blogID string) (*entity.Blog, error) {
	return uc.blogRepo.GetByID(blogID)
}

func (uc *blogUseCase) ListBlogs() ([]*entity.Blog, error) {
	return uc.blogRepo.List()
}

func (uc *blogUseCase) ListByCategory(category string) ([]*entity.Blog, error) {
	return uc.blogRepo.ListByCategory(category)
}

func (uc *blogUseCase) ListByAuthor(authorID string) ([]*entity.Blog, error) {
	return uc.blogRepo.ListByAuthor(authorID)
}

func (uc *blogUseCase) UpdateBlog(actor entity.Actor, blogID string, title, content, image, category *string) (*entity.Blog, error) {
	blog, err := uc.blogRepo.GetByID(blogID)
	if err != nil {
		return nil, err
	}

	if err := policy.CanMutateBlog(actor, blog.AuthorID); err != nil {
		return nil, err
	}

	categoryChanged := false
	if title != nil {
		blog.Title = *title
	}
	if content != nil {
		blog.Content = *content
	}
	if image != nil {
		blog.Image = *image
	}
	if category != nil && *category != blog.Category {
		blog.Category = strings.TrimSpace(*category)
		categoryChanged = true
	}

	if err := uc.blogRepo.Update(blog); err != nil {
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}

	if categoryChanged {
		uc.countsCache.Invalidate(context.Background())
	}

	return uc.blogRepo.GetByID(blogID)
}

func (uc *blogUseCase) DeleteBlog(actor entity.Actor, blogID string) error {
	blog, err := uc.blogRepo.GetByID(blogID)
	if err != nil {
		return err
	}

	if err := policy.CanMutateBlog(actor, blog.AuthorID); err != nil {
		return err
	}

	if err := uc.blogRepo.Delete(blogID); err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	uc.countsCache.Invalidate(context.Background())
	return nil
}

// ToggleLike alternates the actor's membership in the blog's like set. The
// insert-first strategy leans on the unique like constraint, so concurrent
// toggles by the same actor cannot double-count.
func (uc *blogUseCase) ToggleLike(actor entity.Actor, blogID string) (bool, int64, error) {
	if _, err := uc.blogRepo.GetByID(blogID); err != nil {
		return false, 0, err
	}

	if err := policy.CanLike(actor); err != nil {
		return false, 0, err
	}

	inserted, err := uc.blogRepo.AddLike(actor.ID, blogID)
	if err != nil {
		return false, 0, err
	}

	liked := inserted
	if !inserted {
		if err := uc.blogRepo.RemoveLike(actor.ID, blogID); err != nil {
			return false, 0, err
		}
	}

	count, err := uc.blogRepo.LikeCount(blogID)
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

func (uc *blogUseCase) AddComment(actor entity.Actor, blogID, text string) (*entity.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text is required", entity.ErrValidation)
	}

	if _, err := uc.blogRepo.GetByID(blogID); err != nil {
		return nil, err
	}

	if err := policy.CanComment(actor); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		BlogID: blogID,
		UserID: actor.ID,
		Text:   text,
	}

	if err := uc.blogRepo.AddComment(comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return comment, nil
}

func (uc *blogUseCase) ListComments(blogID string) ([]entity.Comment, error) {
	if _, err := uc.blogRepo.GetByID(blogID); err != nil {
		return nil, err
	}
	return uc.blogRepo.ListComments(blogID)
}

// CategoryCounts serves the cached aggregate when fresh and recomputes from
// the blog table on a miss. A cold or broken cache degrades to the direct
// query, never to an error.
func (uc *blogUseCase) CategoryCounts() (map[string]int64, error) {
	ctx := context.Background()

	if counts, ok := uc.countsCache.Get(ctx); ok {
		return counts, nil
	}

	counts, err := uc.blogRepo.CountByCategory()
	if err != nil {
		return nil, err
	}

	uc.countsCache.Set(ctx, counts)
	return counts, nil
}

func (uc *blogUseCase) UploadImage(actor entity.Actor, file io.Reader, fileKey, contentType string) (string, error) {
	if err := policy.CanCreateBlog(actor); err != nil {
		return "", err
	}

	url, err := uc.s3Client.UploadFile(fileKey, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload image: %v", err)
		return "", fmt.Errorf("failed to upload image")
	}
	return url, nil
}
