package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"resortbooking/internal/domain"
	"resortbooking/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 10 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwtSvc := new(MockJWTService)

	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "ana@example.com" && u.Role == domain.RoleGuest && u.PasswordHash != "secret123"
	})).Return(nil)
	jwtSvc.On("GenerateToken", int64(10), "guest").Return("access-token", nil)

	service := NewService(users, jwtSvc)

	result, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Ana",
		Email:    " Ana@Example.com ",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.Equal(t, "ana@example.com", result.User.Email)
}

func TestService_Register_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	jwtSvc := new(MockJWTService)

	users.On("Create", mock.Anything, mock.Anything).Return(repository.ErrEmailTaken)

	service := NewService(users, jwtSvc)

	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwtSvc := new(MockJWTService)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{
		ID: 10, Email: "ana@example.com", PasswordHash: string(hash), Role: domain.RoleGuest,
	}, nil)
	jwtSvc.On("GenerateToken", int64(10), "guest").Return("login-token", nil)

	service := NewService(users, jwtSvc)

	result, err := service.Login(context.Background(), LoginRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "login-token", result.AccessToken)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	jwtSvc := new(MockJWTService)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{
		ID: 10, Email: "ana@example.com", PasswordHash: string(hash),
	}, nil)

	service := NewService(users, jwtSvc)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	jwtSvc.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	jwtSvc := new(MockJWTService)

	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, jwtSvc)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
