package services_test

import (
	"log"
	"os"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/adityamathur98/ecommerce-backend/internal/models"
	"github.com/adityamathur98/ecommerce-backend/internal/repositories"
	"github.com/adityamathur98/ecommerce-backend/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishUserRegistered(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	os.Exit(m.Run())
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEvents := new(MockEventPublisher)
	authService := services.NewAuthService(mockRepo, mockEvents, "test_jwt_secret")

	user := &models.User{
		Username: "testuser",
		Name:     "Test User",
	}

	mockRepo.On("GetByUsername", user.Username).Return(nil, repositories.ErrUserNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	mockEvents.On("PublishUserRegistered", mock.Anything).Return(nil).Once()

	err := authService.RegisterUser(user, "Password1")
	assert.NoError(t, err)
	// The stored password is a bcrypt digest of the plaintext
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Password1")))
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)

	// Username already taken (caught by the existence check)
	mockRepo.On("GetByUsername", user.Username).Return(&models.User{ID: "1"}, nil).Once()
	err = authService.RegisterUser(user, "Password1")
	assert.ErrorIs(t, err, services.ErrUserExists)
	mockRepo.AssertExpectations(t)

	// Username taken but only detected by the unique index at insert time
	mockRepo.On("GetByUsername", user.Username).Return(nil, repositories.ErrUserNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(repositories.ErrUsernameTaken).Once()
	err = authService.RegisterUser(user, "Password1")
	assert.ErrorIs(t, err, services.ErrUserExists)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_PasswordPolicy(t *testing.T) {
	weak := []string{
		"Ab1",          // too short
		"alllower1",    // no uppercase
		"NoDigitsHere", // no digit
		"",
	}

	for _, password := range weak {
		mockRepo := new(MockUserRepository)
		authService := services.NewAuthService(mockRepo, nil, "test_jwt_secret")
		mockRepo.On("GetByUsername", "newuser").Return(nil, repositories.ErrUserNotFound).Once()

		err := authService.RegisterUser(&models.User{Username: "newuser", Name: "New"}, password)
		assert.ErrorIs(t, err, services.ErrWeakPassword, "password %q should be rejected", password)
		// No user record is created for a rejected password
		mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	}
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, nil, testJWTSecret)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Username: "testuser",
		Name:     "Test User",
		Password: string(hashed),
	}

	// Successful login returns a token whose claims round-trip
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	token, err := authService.LoginUser("testuser", "Password1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.Username, claims["username"])
	assert.Equal(t, user.ID, claims["id"])
	mockRepo.AssertExpectations(t)

	// Wrong password
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	_, err = authService.LoginUser("testuser", "WrongPassword1")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Unknown user maps to the same error as a wrong password
	mockRepo.On("GetByUsername", "ghost").Return(nil, repositories.ErrUserNotFound).Once()
	_, err = authService.LoginUser("ghost", "Password1")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, nil, testJWTSecret)

	// Structurally invalid token
	_, err := authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)

	// Valid signature, wrong secret
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "testuser",
		"id":       "user-123",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	foreignString, _ := foreign.SignedString([]byte("some_other_secret"))
	_, err = authService.ValidateToken(foreignString)
	assert.Error(t, err)

	// Expired token is rejected even though the signature checks out
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "testuser",
		"id":       "user-123",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	expiredString, _ := expired.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredString)
	assert.Error(t, err)
}
