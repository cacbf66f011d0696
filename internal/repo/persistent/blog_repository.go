package persistent

import (
	"errors"
	"fmt"

	"inkwell/internal/entity"
	"inkwell/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlogRepository interface {
	Create(blog *entity.Blog) error
	GetByID(id string) (*entity.Blog, error)
	List() ([]*entity.Blog, error)
	ListByCategory(category string) ([]*entity.Blog, error)
	ListByAuthor(authorID string) ([]*entity.Blog, error)
	Update(blog *entity.Blog) error
	Delete(id string) error
	AddLike(userID, blogID string) (bool, error)
	RemoveLike(userID, blogID string) error
	LikeCount(blogID string) (int64, error)
	AddComment(comment *entity.Comment) error
	ListComments(blogID string) ([]entity.Comment, error)
	CountByCategory() (map[string]int64, error)
	Count() (int64, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(blog *entity.Blog) error {
	blogModel := ToBlogModel(blog)
	if blogModel.ID == "" {
		blogModel.ID = uuid.New().String()
	}
	if err := r.db.Create(blogModel).Error; err != nil {
		return err
	}

	created, err := r.GetByID(blogModel.ID)
	if err != nil {
		return err
	}
	*blog = *created
	return nil
}

func (r *blogRepository) GetByID(id string) (*entity.Blog, error) {
	var blogModel model.BlogModel
	err := r.db.
		Preload("Author").
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.User").
		Where("id = ?", id).First(&blogModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: blog %s", entity.ErrNotFound, id)
		}
		return nil, err
	}
	return ToBlogEntity(&blogModel), nil
}

func (r *blogRepository) List() ([]*entity.Blog, error) {
	return r.list(r.db)
}

func (r *blogRepository) ListByCategory(category string) ([]*entity.Blog, error) {
	// Case-insensitive exact match. Not ILIKE: the path segment is user input,
	// so % and _ must compare literally instead of acting as wildcards.
	return r.list(r.db.Where("lower(category) = lower(?)", category))
}

func (r *blogRepository) ListByAuthor(authorID string) ([]*entity.Blog, error) {
	return r.list(r.db.Where("author_id = ?", authorID))
}

func (r *blogRepository) list(query *gorm.DB) ([]*entity.Blog, error) {
	var blogModels []model.BlogModel
	err := query.
		Preload("Author").
		Preload("Likes").
		Order("created_at DESC").
		Find(&blogModels).Error
	if err != nil {
		return nil, err
	}

	blogs := make([]*entity.Blog, len(blogModels))
	for i := range blogModels {
		blogs[i] = ToBlogEntity(&blogModels[i])
	}
	return blogs, nil
}

// Update touches only the mutable columns. author_id is never part of the
// statement, so ownership cannot be reassigned through an update.
func (r *blogRepository) Update(blog *entity.Blog) error {
	return r.db.Model(&model.BlogModel{}).Where("id = ?", blog.ID).
		Updates(map[string]interface{}{
			"title":    blog.Title,
			"content":  blog.Content,
			"image":    blog.Image,
			"category": blog.Category,
		}).Error
}

// Delete removes the blog and its embedded engagement data together.
func (r *blogRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", id).Delete(&model.LikeModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.BlogModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: blog %s", entity.ErrNotFound, id)
		}
		return nil
	})
}

// AddLike reports whether a new like was inserted. The unique (user, blog)
// constraint turns a concurrent duplicate into a no-op instead of a race.
func (r *blogRepository) AddLike(userID, blogID string) (bool, error) {
	likeModel := &model.LikeModel{
		ID:     uuid.New().String(),
		UserID: userID,
		BlogID: blogID,
	}
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "blog_id"}},
		DoNothing: true,
	}).Create(likeModel)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *blogRepository) RemoveLike(userID, blogID string) error {
	return r.db.Where("user_id = ? AND blog_id = ?", userID, blogID).Delete(&model.LikeModel{}).Error
}

func (r *blogRepository) LikeCount(blogID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("blog_id = ?", blogID).Count(&count).Error
	return count, err
}

func (r *blogRepository) AddComment(comment *entity.Comment) error {
	commentModel := &model.CommentModel{
		ID:     uuid.New().String(),
		BlogID: comment.BlogID,
		UserID: comment.UserID,
		Text:   comment.Text,
	}
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}

	var created model.CommentModel
	if err := r.db.Preload("User").Where("id = ?", commentModel.ID).First(&created).Error; err != nil {
		return err
	}
	*comment = ToCommentEntity(&created)
	return nil
}

func (r *blogRepository) ListComments(blogID string) ([]entity.Comment, error) {
	var commentModels []model.CommentModel
	err := r.db.Preload("User").
		Where("blog_id = ?", blogID).
		Order("created_at ASC").
		Find(&commentModels).Error
	if err != nil {
		return nil, err
	}

	comments := make([]entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *blogRepository) CountByCategory() (map[string]int64, error) {
	var rows []struct {
		Category string
		Count    int64
	}
	err := r.db.Model(&model.BlogModel{}).
		Select("category, COUNT(*) as count").
		Where("category <> ''").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}

func (r *blogRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.BlogModel{}).Count(&count).Error
	return count, err
}
