package http

import (
	"net/http"

	"inkwell/internal/entity"
	"inkwell/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// ListUsers godoc
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.User
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUseCase.ListUsers()
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// CreateUser godoc
// @Summary      Create a user
// @Description  Create a user with an explicit role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateUserRequest true "User data"
// @Success      201  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/users [post]
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := entity.RoleUser
	if req.Role != "" {
		parsed, err := entity.ParseRole(req.Role)
		if err != nil {
			abortWithError(c, err)
			return
		}
		role = parsed
	}

	user, err := h.adminUseCase.CreateUser(req.Username, req.Email, req.Password, role)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// UpdateUser godoc
// @Summary      Update a user
// @Description  Update username, email, password or role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body UpdateUserRequest true "Fields to update"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var role *entity.UserRole
	if req.Role != nil {
		parsed, err := entity.ParseRole(*req.Role)
		if err != nil {
			abortWithError(c, err)
			return
		}
		role = &parsed
	}

	user, err := h.adminUseCase.UpdateUser(c.Param("id"), req.Username, req.Email, req.Password, role)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.adminUseCase.DeleteUser(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ListAuthorRequests godoc
// @Summary      List pending author requests
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.AuthorRequest
// @Failure      403  {object}  map[string]string
// @Router       /admin/author-requests [get]
func (h *AdminHandler) ListAuthorRequests(c *gin.Context) {
	requests, err := h.adminUseCase.ListAuthorRequests()
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// ApproveAuthorRequest godoc
// @Summary      Approve an author request
// @Description  Approve a pending request and promote its user to author
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Request ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/author-requests/{id}/approve [put]
func (h *AdminHandler) ApproveAuthorRequest(c *gin.Context) {
	if err := h.adminUseCase.ApproveAuthorRequest(c.Param("id"), actorFrom(c).ID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Author request approved"})
}

// Stats godoc
// @Summary      Platform statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Stats
// @Failure      403  {object}  map[string]string
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUseCase.Stats()
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// ListBlogs godoc
// @Summary      List all blogs
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Blog
// @Failure      403  {object}  map[string]string
// @Router       /admin/posts [get]
func (h *AdminHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.adminUseCase.ListBlogs()
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}

// ListAuthors godoc
// @Summary      List authors
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.User
// @Failure      403  {object}  map[string]string
// @Router       /admin/authors [get]
func (h *AdminHandler) ListAuthors(c *gin.Context) {
	authors, err := h.adminUseCase.ListAuthors()
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"authors": authors})
}

// DemoteAuthor godoc
// @Summary      Demote an author
// @Description  Return an author to the user role
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/authors/{id}/convert-to-user [put]
func (h *AdminHandler) DemoteAuthor(c *gin.Context) {
	if err := h.adminUseCase.DemoteAuthor(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Author demoted successfully"})
}
