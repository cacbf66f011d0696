package usecase

import (
	"fmt"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AdminUseCase interface {
	ListUsers() ([]*entity.User, error)
	CreateUser(username, email, password string, role entity.UserRole) (*entity.User, error)
	UpdateUser(userID string, username, email, password *string, role *entity.UserRole) (*entity.User, error)
	DeleteUser(userID string) error
	ListAuthorRequests() ([]*entity.AuthorRequest, error)
	ApproveAuthorRequest(requestID, reviewerID string) error
	Stats() (*entity.Stats, error)
	ListBlogs() ([]*entity.Blog, error)
	ListAuthors() ([]*entity.User, error)
	DemoteAuthor(userID string) error
}

type adminUseCase struct {
	userRepo    persistent.UserRepository
	blogRepo    persistent.BlogRepository
	requestRepo persistent.AuthorRequestRepository
	logger      *logger.Logger
}

func NewAdminUseCase(
	userRepo persistent.UserRepository,
	blogRepo persistent.BlogRepository,
	requestRepo persistent.AuthorRequestRepository,
	logger *logger.Logger,
) AdminUseCase {
	return &adminUseCase{
		userRepo:    userRepo,
		blogRepo:    blogRepo,
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *adminUseCase) ListUsers() ([]*entity.User, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		user.Password = ""
	}
	return users, nil
}

func (uc *adminUseCase) CreateUser(username, email, password string, role entity.UserRole) (*entity.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", entity.ErrValidation)
	}

	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, fmt.Errorf("%w: user with this email already exists", entity.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to create user")
	}

	if role == "" {
		role = entity.RoleUser
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user")
	}

	user.Password = ""
	return user, nil
}

func (uc *adminUseCase) UpdateUser(userID string, username, email, password *string, role *entity.UserRole) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if username != nil {
		user.Username = *username
	}
	if email != nil && *email != user.Email {
		if existing, err := uc.userRepo.GetByEmail(*email); err == nil && existing.ID != user.ID {
			return nil, fmt.Errorf("%w: user with this email already exists", entity.ErrConflict)
		}
		user.Email = *email
	}
	if role != nil {
		user.Role = *role
	}
	if password != nil && *password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			uc.logger.Error("Failed to hash password: %v", err)
			return nil, fmt.Errorf("failed to update user")
		}
		user.Password = string(hashedPassword)
	}

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user: %v", err)
		return nil, fmt.Errorf("failed to update user")
	}

	user.Password = ""
	return user, nil
}

func (uc *adminUseCase) DeleteUser(userID string) error {
	return uc.userRepo.Delete(userID)
}

func (uc *adminUseCase) ListAuthorRequests() ([]*entity.AuthorRequest, error) {
	return uc.requestRepo.ListByStatus(entity.RequestPending)
}

func (uc *adminUseCase) ApproveAuthorRequest(requestID, reviewerID string) error {
	return uc.requestRepo.Approve(requestID, reviewerID)
}

func (uc *adminUseCase) Stats() (*entity.Stats, error) {
	totalUsers, err := uc.userRepo.Count()
	if err != nil {
		return nil, err
	}

	totalAuthors, err := uc.userRepo.CountByRole(entity.RoleAuthor)
	if err != nil {
		return nil, err
	}

	totalBlogs, err := uc.blogRepo.Count()
	if err != nil {
		return nil, err
	}

	// No draft state exists, so every blog counts as published.
	return &entity.Stats{
		TotalUsers:     totalUsers,
		TotalAuthors:   totalAuthors,
		TotalBlogs:     totalBlogs,
		PublishedBlogs: totalBlogs,
	}, nil
}

func (uc *adminUseCase) ListBlogs() ([]*entity.Blog, error) {
	return uc.blogRepo.List()
}

func (uc *adminUseCase) ListAuthors() ([]*entity.User, error) {
	authors, err := uc.userRepo.ListByRole(entity.RoleAuthor)
	if err != nil {
		return nil, err
	}
	for _, author := range authors {
		author.Password = ""
	}
	return authors, nil
}

func (uc *adminUseCase) DemoteAuthor(userID string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if user.Role != entity.RoleAuthor {
		return fmt.Errorf("%w: user is not an author", entity.ErrConflict)
	}

	user.Role = entity.RoleUser
	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to demote author: %v", err)
		return fmt.Errorf("failed to demote author")
	}
	return nil
}
