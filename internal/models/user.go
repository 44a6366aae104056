package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                     // Primary key
	Name         string    `json:"name" db:"name"`                 // Display name
	Username     string    `json:"username" db:"username"`         // Unique handle, stored lowercase
	PasswordHash string    `json:"-" db:"password_hash"`           // Bcrypt hash, never serialized
	AvatarColor  string    `json:"avatar_color" db:"avatar_color"` // Display color tag
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}

// SetPassword replaces the stored hash with a fresh bcrypt hash of plaintext.
// Persistence is the caller's responsibility.
func (u *UserDB) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether plaintext matches the stored hash.
// Returns false for any mismatch or malformed hash.
func (u *UserDB) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)) == nil
}
