package usecase

import (
	"testing"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) List() ([]*entity.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) ListByRole(role entity.UserRole) ([]*entity.User, error) {
	args := m.Called(role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByRole(role entity.UserRole) (int64, error) {
	args := m.Called(role)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockAuthorRequestRepository is a mock implementation of AuthorRequestRepository
type MockAuthorRequestRepository struct {
	mock.Mock
}

func (m *MockAuthorRequestRepository) Create(request *entity.AuthorRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockAuthorRequestRepository) GetByID(id string) (*entity.AuthorRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuthorRequest), args.Error(1)
}

func (m *MockAuthorRequestRepository) HasActive(userID string) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthorRequestRepository) ListByStatus(status entity.RequestStatus) ([]*entity.AuthorRequest, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AuthorRequest), args.Error(1)
}

func (m *MockAuthorRequestRepository) Approve(id, reviewerID string) error {
	args := m.Called(id, reviewerID)
	return args.Error(0)
}

var _ persistent.AuthorRequestRepository = (*MockAuthorRequestRepository)(nil)

func newAdminUseCaseForTest() (AdminUseCase, *MockUserRepository, *MockBlogRepository, *MockAuthorRequestRepository) {
	userRepo := new(MockUserRepository)
	blogRepo := new(MockBlogRepository)
	requestRepo := new(MockAuthorRequestRepository)
	uc := NewAdminUseCase(userRepo, blogRepo, requestRepo, logger.New())
	return uc, userRepo, blogRepo, requestRepo
}

func TestListUsers_BlanksPasswords(t *testing.T) {
	uc, userRepo, _, _ := newAdminUseCaseForTest()

	userRepo.On("List").Return([]*entity.User{
		{ID: "user-1", Username: "alice", Password: "hash-1"},
		{ID: "user-2", Username: "bob", Password: "hash-2"},
	}, nil)

	users, err := uc.ListUsers()

	assert.NoError(t, err)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}
}

func TestCreateUser_HashesPassword(t *testing.T) {
	uc, userRepo, _, _ := newAdminUseCaseForTest()

	userRepo.On("GetByEmail", "carol@example.com").Return(nil, entity.ErrNotFound)
	userRepo.On("Create", mock.MatchedBy(func(u *entity.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")) == nil
	})).Return(nil)

	user, err := uc.CreateUser("carol", "carol@example.com", "secret123", entity.RoleAuthor)

	assert.NoError(t, err)
	assert.Equal(t, entity.RoleAuthor, user.Role)
	assert.Empty(t, user.Password)
	userRepo.AssertExpectations(t)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	uc, userRepo, _, _ := newAdminUseCaseForTest()

	userRepo.On("GetByEmail", "taken@example.com").Return(&entity.User{ID: "user-1"}, nil)

	_, err := uc.CreateUser("carol", "taken@example.com", "secret123", entity.RoleUser)

	assert.ErrorIs(t, err, entity.ErrConflict)
	userRepo.AssertNotCalled(t, "Create")
}

func TestUpdateUser_RehashesSuppliedPassword(t *testing.T) {
	uc, userRepo, _, _ := newAdminUseCaseForTest()

	userRepo.On("GetByID", "user-1").Return(&entity.User{ID: "user-1", Username: "alice", Password: "old-hash"}, nil)
	userRepo.On("Update", mock.MatchedBy(func(u *entity.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("new-secret")) == nil
	})).Return(nil)

	password := "new-secret"
	user, err := uc.UpdateUser("user-1", nil, nil, &password, nil)

	assert.NoError(t, err)
	assert.Empty(t, user.Password)
	userRepo.AssertExpectations(t)
}

func TestUpdateUser_DuplicateEmailConflict(t *testing.T) {
	uc, userRepo, _, _ := newAdminUseCaseForTest()

	userRepo.On("GetByID", "user-1").Return(&entity.User{ID: "user-1", Email: "old@example.com"}, nil)
	userRepo.On("GetByEmail", "taken@example.com").Return(&entity.User{ID: "user-2"}, nil)

	email := "taken@example.com"
	_, err := uc.UpdateUser("user-1", nil, &email, nil, nil)

	assert.ErrorIs(t, err, entity.ErrConflict)
	userRepo.AssertNotCalled(t, "Update")
}

func TestUpdateUser_KeepingOwnEmailIsNotAConflict(t *testing.T) {
	uc, userRepo, _, _ := newAdminUseCaseForTest()

	userRepo.On("GetByID", "user-1").Return(&entity.User{ID: "user-1", Email: "mine@example.com", Username: "alice"}, nil)
	userRepo.On("Update", mock.Anything).Return(nil)

	email := "mine@example.com"
	username := "alice2"
	user, err := uc.UpdateUser("user-1", &username, &email, nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, "alice2", user.Username)
	userRepo.AssertNotCalled(t, "GetByEmail")
}

func TestApproveAuthorRequest_ConflictPropagates(t *testing.T) {
	uc, _, _, requestRepo := newAdminUseCaseForTest()

	requestRepo.On("Approve", "req-1", "admin-1").Return(entity.ErrConflict)

	err := uc.ApproveAuthorRequest("req-1", "admin-1")

	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestStats_CountsEveryBlogAsPublished(t *testing.T) {
	uc, userRepo, blogRepo, _ := newAdminUseCaseForTest()

	userRepo.On("Count").Return(int64(12), nil)
	userRepo.On("CountByRole", entity.RoleAuthor).Return(int64(4), nil)
	blogRepo.On("Count").Return(int64(30), nil)

	stats, err := uc.Stats()

	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalUsers)
	assert.Equal(t, int64(4), stats.TotalAuthors)
	assert.Equal(t, int64(30), stats.TotalBlogs)
	assert.Equal(t, int64(30), stats.PublishedBlogs)
}

func TestDemoteAuthor_Success(t *testing.T) {
	uc, userRepo, _, _ := newAdminUseCaseForTest()

	userRepo.On("GetByID", "author-1").Return(&entity.User{ID: "author-1", Role: entity.RoleAuthor}, nil)
	userRepo.On("Update", mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleUser
	})).Return(nil)

	err := uc.DemoteAuthor("author-1")

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestDemoteAuthor_NotAnAuthor(t *testing.T) {
	uc, userRepo, _, _ := newAdminUseCaseForTest()

	userRepo.On("GetByID", "user-1").Return(&entity.User{ID: "user-1", Role: entity.RoleUser}, nil)

	err := uc.DemoteAuthor("user-1")

	assert.ErrorIs(t, err, entity.ErrConflict)
	userRepo.AssertNotCalled(t, "Update")
}
