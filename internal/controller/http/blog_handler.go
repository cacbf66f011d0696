package http

import (
	"fmt"
	"net/http"
	"path/filepath"

	"inkwell/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BlogHandler struct {
	blogUseCase usecase.BlogUseCase
}

func NewBlogHandler(blogUseCase usecase.BlogUseCase) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
	}
}

// CreateBlogRequest is the closed set of writable fields. Author identity
// always comes from the token.
type CreateBlogRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Image    string `json:"image" binding:"required"`
	Category string `json:"category"`
}

type UpdateBlogRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Image    *string `json:"image"`
	Category *string `json:"category"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreateBlog godoc
// @Summary      Create a blog
// @Description  Create a blog post owned by the authenticated author
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateBlogRequest true "Blog data"
// @Success      201  {object}  entity.Blog
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /blogs/create [post]
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var req CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blog, err := h.blogUseCase.CreateBlog(actorFrom(c), req.Title, req.Content, req.Image, req.Category)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"blog": blog})
}

// GetBlog godoc
// @Summary      Get a blog
// @Description  Fetch a single blog with its author, likes and comments
// @Tags         blogs
// @Produce      json
// @Param        id path string true "Blog ID"
// @Success      200  {object}  entity.Blog
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{id} [get]
func (h *BlogHandler) GetBlog(c *gin.Context) {
	blog, err := h.blogUseCase.GetBlog(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// ListBlogs godoc
// @Summary      List blogs
// @Description  List all blogs, newest first
// @Tags         blogs
// @Produce      json
// @Success      200  {array}  entity.Blog
// @Router       /blogs [get]
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.blogUseCase.ListBlogs()
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}

// ListByCategory godoc
// @Summary      List blogs by category
// @Description  List blogs in the given category, matched case-insensitively
// @Tags         blogs
// @Produce      json
// @Param        category path string true "Category name"
// @Success      200  {array}  entity.Blog
// @Router       /blogs/category/{category} [get]
func (h *BlogHandler) ListByCategory(c *gin.Context) {
	blogs, err := h.blogUseCase.ListByCategory(c.Param("category"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}

// ListByAuthor godoc
// @Summary      List blogs by author
// @Description  List blogs written by the given author, newest first
// @Tags         blogs
// @Produce      json
// @Param        author_id path string true "Author ID"
// @Success      200  {array}  entity.Blog
// @Router       /blogs/author/{author_id} [get]
func (h *BlogHandler) ListByAuthor(c *gin.Context) {
	blogs, err := h.blogUseCase.ListByAuthor(c.Param("author_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}

// UpdateBlog godoc
// @Summary      Update a blog
// @Description  Update title, content, image or category. Only the owner or an admin may update.
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Blog ID"
// @Param        request body UpdateBlogRequest true "Fields to update"
// @Success      200  {object}  entity.Blog
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{id} [put]
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	var req UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blog, err := h.blogUseCase.UpdateBlog(actorFrom(c), c.Param("id"), req.Title, req.Content, req.Image, req.Category)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// DeleteBlog godoc
// @Summary      Delete a blog
// @Description  Delete a blog with its comments and likes. Only the owner or an admin may delete.
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Blog ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{id} [delete]
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	if err := h.blogUseCase.DeleteBlog(actorFrom(c), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}

// LikeBlog godoc
// @Summary      Toggle a like
// @Description  Like the blog if the caller has not liked it, otherwise remove the like
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Blog ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{id}/like [post]
func (h *BlogHandler) LikeBlog(c *gin.Context) {
	liked, count, err := h.blogUseCase.ToggleLike(actorFrom(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"likes":    count,
		"is_liked": liked,
	})
}

// AddComment godoc
// @Summary      Add a comment
// @Description  Comment on a blog as the authenticated user
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Blog ID"
// @Param        request body CommentRequest true "Comment text"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{id}/comment [post]
func (h *BlogHandler) AddComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.blogUseCase.AddComment(actorFrom(c), c.Param("id"), req.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// ListComments godoc
// @Summary      List comments
// @Description  List a blog's comments, oldest first
// @Tags         blogs
// @Produce      json
// @Param        id path string true "Blog ID"
// @Success      200  {array}  entity.Comment
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{id}/comments [get]
func (h *BlogHandler) ListComments(c *gin.Context) {
	comments, err := h.blogUseCase.ListComments(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CategoryCounts godoc
// @Summary      Blog counts per category
// @Description  Return the number of blogs in each category, served from cache when fresh
// @Tags         blogs
// @Produce      json
// @Success      200  {object}  map[string]int64
// @Router       /blogs/categories/counts [get]
func (h *BlogHandler) CategoryCounts(c *gin.Context) {
	counts, err := h.blogUseCase.CategoryCounts()
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"counts": counts})
}

// UploadImage godoc
// @Summary      Upload a blog image
// @Description  Upload an image to object storage and return its public URL
// @Tags         blogs
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image formData file true "Image file"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /blogs/upload [post]
func (h *BlogHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image file"})
		return
	}
	defer file.Close()

	fileKey := fmt.Sprintf("blogs/%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.blogUseCase.UploadImage(actorFrom(c), file, fileKey, contentType)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
