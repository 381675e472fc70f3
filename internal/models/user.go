package models

import "time"

// User represents a registered shopper account.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Name      string    `json:"name" gorm:"type:varchar(255)" validate:"required"`
	Password  string    `json:"-" gorm:"type:varchar(255)"` // bcrypt digest, never the plaintext
	Gender    string    `json:"gender,omitempty" gorm:"type:varchar(20)"`
	Location  string    `json:"location,omitempty" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
