package usecase

import (
	"errors"
	"fmt"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/jwt"
	"inkwell/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Signup(username, email, password string) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
	SubmitAuthorRequest(actorID, fullName, email, bio, topics, portfolio string) (*entity.AuthorRequest, error)
}

type authUseCase struct {
	userRepo    persistent.UserRepository
	requestRepo persistent.AuthorRequestRepository
	jwtService  *jwt.Service
	logger      *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	requestRepo persistent.AuthorRequestRepository,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:    userRepo,
		requestRepo: requestRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (uc *authUseCase) Signup(username, email, password string) (*entity.User, string, error) {
	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, "", fmt.Errorf("%w: user with this email already exists", entity.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process signup")
	}

	user := &entity.User{
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
		Role:     entity.RoleUser,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		// Same message for unknown email and wrong password.
		return nil, "", entity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) SubmitAuthorRequest(actorID, fullName, email, bio, topics, portfolio string) (*entity.AuthorRequest, error) {
	if fullName == "" || email == "" || bio == "" {
		return nil, fmt.Errorf("%w: full name, email and bio are required", entity.ErrValidation)
	}

	hasActive, err := uc.requestRepo.HasActive(actorID)
	if err != nil {
		uc.logger.Error("Failed to check existing author requests: %v", err)
		return nil, errors.New("failed to submit author request")
	}
	if hasActive {
		return nil, fmt.Errorf("%w: you already have a pending or approved author request", entity.ErrConflict)
	}

	request := &entity.AuthorRequest{
		UserID:    actorID,
		FullName:  fullName,
		Email:     email,
		Bio:       bio,
		Topics:    topics,
		Portfolio: portfolio,
		Status:    entity.RequestPending,
	}

	if err := uc.requestRepo.Create(request); err != nil {
		uc.logger.Error("Failed to create author request: %v", err)
		return nil, errors.New("failed to submit author request")
	}

	return request, nil
}
