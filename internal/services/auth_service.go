package services

import (
	"errors"
	"fmt"
	"log"
	"time"
	"unicode"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/adityamathur98/ecommerce-backend/internal/models"
	"github.com/adityamathur98/ecommerce-backend/internal/repositories"
)

// Service-level auth errors, mapped to HTTP status codes by the handlers.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrWeakPassword       = errors.New("password must be at least 6 characters long, contain one uppercase letter and one number")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// EventPublisher publishes account lifecycle events. A nil publisher is
// valid and means events are disabled.
type EventPublisher interface {
	PublishUserRegistered(event map[string]interface{}) error
}

// AuthService handles registration, login, and token verification.
type AuthService struct {
	userRepo repositories.UserRepository
	events   EventPublisher
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new AuthService. events may be nil.
func NewAuthService(userRepo repositories.UserRepository, events EventPublisher, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		events:   events,
		secret:   []byte(jwtSecret),
		tokenTTL: 30 * 24 * time.Hour, // tokens live 30 days, no revocation
	}
}

// validPassword reports whether a plaintext password satisfies the policy:
// at least 6 characters, one uppercase letter, and one digit.
func validPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasDigit
}

// RegisterUser validates the password policy, hashes the password, and
// persists the user. The username unique index is the authority on
// duplicates; the up-front lookup only makes the common case fail fast.
func (s *AuthService) RegisterUser(user *models.User, password string) error {
	if existing, err := s.userRepo.GetByUsername(user.Username); err == nil && existing != nil {
		return ErrUserExists
	}
	if !validPassword(password) {
		return ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			return ErrUserExists
		}
		return fmt.Errorf("failed to register user: %w", err)
	}

	s.publishRegistered(user)
	return nil
}

// publishRegistered emits a best-effort user.registered event. Failures are
// logged and never surfaced to the client.
func (s *AuthService) publishRegistered(user *models.User) {
	if s.events == nil {
		return
	}
	event := map[string]interface{}{
		"event":    "user.registered",
		"user_id":  user.ID,
		"username": user.Username,
	}
	if err := s.events.PublishUserRegistered(event); err != nil {
		log.Printf("Failed to publish user.registered event for %s: %v", user.Username, err)
	}
}

// LoginUser authenticates a user and returns a signed token on success.
// Lookup and password failures collapse into ErrInvalidCredentials so the
// response does not reveal whether the username exists.
func (s *AuthService) LoginUser(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": user.Username,
		"id":       user.ID,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, returning its claims. A bad
// signature, wrong algorithm, malformed structure, or past expiry all fail.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
