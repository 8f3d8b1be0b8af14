package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FullName    string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PhoneNumber string    `gorm:"type:varchar(32)"`
	// Password holds the bcrypt hash, never the plaintext.
	Password string   `gorm:"type:text;not null" json:"-"`
	Role     UserRole `gorm:"type:varchar(16);default:'user';not null"`

	IsVerified bool `gorm:"default:false;not null"`

	// Set together by a forgot-password request, cleared together on
	// reset or when the reset email cannot be delivered.
	PasswordResetToken   *string `gorm:"type:text;index"`
	PasswordResetExpires *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
