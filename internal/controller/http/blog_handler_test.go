package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/entity"
	"inkwell/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBlogUseCase is a mock implementation of BlogUseCase
type MockBlogUseCase struct {
	mock.Mock
}

func (m *MockBlogUseCase) CreateBlog(actor entity.Actor, title, content, image, category string) (*entity.Blog, error) {
	args := m.Called(actor, title, content, image, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *MockBlogUseCase) GetBlog(blogID string) (*entity.Blog, error) {
	args := m.Called(blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *MockBlogUseCase) ListBlogs() ([]*entity.Blog, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Blog), args.Error(1)
}

func (m *MockBlogUseCase) ListByCategory(category string) ([]*entity.Blog, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Blog), args.Error(1)
}

func (m *MockBlogUseCase) ListByAuthor(authorID string) ([]*entity.Blog, error) {
	args := m.Called(authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Blog), args.Error(1)
}

func (m *MockBlogUseCase) UpdateBlog(actor entity.Actor, blogID string, title, content, image, category *string) (*entity.Blog, error) {
	args := m.Called(actor, blogID, title, content, image, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *MockBlogUseCase) DeleteBlog(actor entity.Actor, blogID string) error {
	args := m.Called(actor, blogID)
	return args.Error(0)
}

func (m *MockBlogUseCase) ToggleLike(actor entity.Actor, blogID string) (bool, int64, error) {
	args := m.Called(actor, blogID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlogUseCase) AddComment(actor entity.Actor, blogID, text string) (*entity.Comment, error) {
	args := m.Called(actor, blogID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockBlogUseCase) ListComments(blogID string) ([]entity.Comment, error) {
	args := m.Called(blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Comment), args.Error(1)
}

func (m *MockBlogUseCase) CategoryCounts() (map[string]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockBlogUseCase) UploadImage(actor entity.Actor, file io.Reader, fileKey, contentType string) (string, error) {
	args := m.Called(actor, file, fileKey, contentType)
	return args.String(0), args.Error(1)
}

var _ usecase.BlogUseCase = (*MockBlogUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func asAuthor(userID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", "author")
		handler(c)
	}
}

func TestCreateBlog_Success(t *testing.T) {
	mockUseCase := new(MockBlogUseCase)
	handler := NewBlogHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/blogs/create", asAuthor("author-123", handler.CreateBlog))

	actor := entity.Actor{ID: "author-123", Role: entity.RoleAuthor}
	mockBlog := &entity.Blog{
		ID:       "blog-1",
		AuthorID: "author-123",
		Title:    "First Post",
		Content:  "Hello",
		Image:    "http://example.com/img.jpg",
		Category: "tech",
	}

	mockUseCase.On("CreateBlog", actor, "First Post", "Hello", "http://example.com/img.jpg", "tech").Return(mockBlog, nil)

	body := `{"title":"First Post","content":"Hello","image":"http://example.com/img.jpg","category":"tech"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/blogs/create", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreateBlog_AuthorFieldInPayloadIgnored(t *testing.T) {
	mockUseCase := new(MockBlogUseCase)
	handler := NewBlogHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/blogs/create", asAuthor("author-123", handler.CreateBlog))

	actor := entity.Actor{ID: "author-123", Role: entity.RoleAuthor}
	mockBlog := &entity.Blog{ID: "blog-1", AuthorID: "author-123", Title: "T", Content: "C", Image: "i"}

	// The actor reaching the use case comes from the token, not the body.
	mockUseCase.On("CreateBlog", actor, "T", "C", "i", "").Return(mockBlog, nil)

	body := `{"title":"T","content":"C","image":"i","author_id":"someone-else","author":{"id":"someone-else"}}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/blogs/create", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreateBlog_MissingFields(t *testing.T) {
	mockUseCase := new(MockBlogUseCase)
	handler := NewBlogHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/blogs/create", asAuthor("author-123", handler.CreateBlog))

	body := `{"title":"only a title"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/blogs/create", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreateBlog")
}

func TestGetBlog_NotFound(t *testing.T) {
	mockUseCase := new(MockBlogUseCase)
	handler := NewBlogHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/blogs/:id", handler.GetBlog)

	mockUseCase.On("GetBlog", "missing").Return(nil, entity.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListBlogs_Success(t *testing.T) {
	mockUseCase := new(MockBlogUseCase)
	handler := NewBlogHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/blogs", handler.ListBlogs)

	mockBlogs := []*entity.Blog{
		{ID: "blog-1", Title: "One"},
		{ID: "blog-2", Title: "Two"},
	}
	mockUseCase.On("ListBlogs").Return(mockBlogs, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	blogs := response["blogs"].([]interface{})
	assert.Equal(t, 2, len(blogs))

	mockUseCase.AssertExpectations(t)
}

func TestUpdateBlog_Forbidden(t *testing.T) {
	mockUseCase := new(MockBlogUseCase)
	handler := NewBlogHandler(mockUseCase)

	router := setupTestRouter()
	router.PUT("/blogs/:id", func(c *gin.Context) {
		c.Set("user_id", "intruder")
		c.Set("role", "author")
		handler.UpdateBlog(c)
	})

	actor := entity.Actor{ID: "intruder", Role: entity.RoleAuthor}
	title := "Hijacked"
	mockUseCase.On("UpdateBlog", actor, "blog-1", &title, (*string)(nil), (*string)(nil), (*string)(nil)).
		Return(nil, entity.ErrForbidden)

	body := `{"title":"Hijacked"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/blogs/blog-1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateBlog_AuthorFieldInPayloadIgnored(t *testing.T) {
	mockUseCase := new(MockBlogUseCase)
	handler := NewBlogHandler(mockUseCase)

	router := setupTestRouter()
	router.PUT("/blogs/:id", asAuthor("owner", handler.UpdateBlog))

	actor := entity.Actor{ID: "owner", Role: entity.RoleAuthor}
	title := "New"
	mockBlog := &entity.Blog{ID: "blog-1", AuthorID: "owner", Title: "New"}

	// The closed bind struct drops author_id and author; only the allowed
	// fields reach the use case and ownership stays with the original author.
	mockUseCase.On("UpdateBlog", actor, "blog-1", &title, (*string)(nil), (*string)(nil), (*string)(nil)).
		Return(mockBlog, nil)

	body := `{"title":"New","author_id":"attacker","author":{"id":"attacker"}}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/blogs/blog-1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	blog := response["blog"].(map[string]interface{})
	assert.Equal(t, "owner", blog["author_id"])

	mockUseCase.AssertExpectations(t)
}

func TestDeleteBlog_Success(t *testing.T) {
	mockUseCase := new(MockBlogUseCase)
	handler := NewBlogHandler(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/blogs/:id", asAuthor("author-123", handler.DeleteBlog))

	actor := entity.Actor{ID: "author-123", Role: entity.RoleAuthor}
	mockUseCase.On("DeleteBlog", actor, "blog-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/blogs/blog-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestLikeBlog_Like(t *testing.T) {
	mockUseCase := new(MockBlogUseCase)
	handler := NewBlogHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/blogs/:id/like", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		c.Set("role", "user")
		handler.LikeBlog(c)
	})

	actor := entity.Actor{ID: "user-123", Role: entity.RoleUser}
	mockUseCase.On("ToggleLike", actor, "blog-1").Return(true, int64(7), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/blogs/blog-1/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["is_liked"])
	assert.Equal(t, float64(7), response["likes"])

	mockUseCase.AssertExpectations(t)
}

func TestLikeBlog_Unlike(t *testing.T) {
	mockUseCase := new(MockBlogUseCase)
	handler := NewBlogHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/blogs/:id/like", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		c.Set("role", "user")
		handler.LikeBlog(c)
	})

	actor := entity.Actor{ID: "user-123", Role: entity.RoleUser}
	mockUseCase.On("ToggleLike", actor, "blog-1").Return(false, int64(6), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/blogs/blog-1/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, false, response["is_liked"])

	mockUseCase.AssertExpectations(t)
}

func TestAddComment_Success(t *testing.T) {
	mockUseCase := new(MockBlogUseCase)
	handler := NewBlogHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/blogs/:id/comment", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		c.Set("role", "user")
		handler.AddComment(c)
	})

	actor := entity.Actor{ID: "user-123", Role: entity.RoleUser}
	mockComment := &entity.Comment{ID: "comment-1", BlogID: "blog-1", UserID: "user-123", Text: "Nice read"}
	mockUseCase.On("AddComment", actor, "blog-1", "Nice read").Return(mockComment, nil)

	body := `{"text":"Nice read"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/blogs/blog-1/comment", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestAddComment_EmptyText(t *testing.T) {
	mockUseCase := new(MockBlogUseCase)
	handler := NewBlogHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/blogs/:id/comment", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		c.Set("role", "user")
		handler.AddComment(c)
	})

	body := `{"text":""}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/blogs/blog-1/comment", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "AddComment")
}

func TestCategoryCounts_Success(t *testing.T) {
	mockUseCase := new(MockBlogUseCase)
	handler := NewBlogHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/blogs/categories/counts", handler.CategoryCounts)

	mockUseCase.On("CategoryCounts").Return(map[string]int64{"tech": 3, "food": 1}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs/categories/counts", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	counts := response["counts"].(map[string]interface{})
	assert.Equal(t, float64(3), counts["tech"])

	mockUseCase.AssertExpectations(t)
}

func TestListByCategory_Success(t *testing.T) {
	mockUseCase := new(MockBlogUseCase)
	handler := NewBlogHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/blogs/category/:category", handler.ListByCategory)

	mockUseCase.On("ListByCategory", "Tech").Return([]*entity.Blog{{ID: "blog-1", Category: "tech"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs/category/Tech", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}
