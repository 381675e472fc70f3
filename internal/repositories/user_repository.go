package repositories

import (
	"errors"

	"github.com/adityamathur98/ecommerce-backend/internal/models"
)

// Repository-level user errors. ErrUsernameTaken is the unique-index
// violation surfaced as a domain signal; the index, not the caller's
// existence check, is what makes registration race-free.
var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrUserNotFound  = errors.New("user not found")
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
}
