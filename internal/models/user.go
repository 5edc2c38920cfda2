package models

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User represents a registered user.
//
// Every budget and transaction belongs to exactly one user, all reads
// and writes on those resources are scoped by the user ID.
type User struct {
	DefaultModel
	Username string `json:"username" example:"morre"`
	Email    string `json:"email" gorm:"uniqueIndex" example:"morre@example.com"`
	Password string `json:"-"` // bcrypt hash, never serialized
}

// BeforeSave trims whitespace from the string fields.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)

	return nil
}

// SetPassword hashes the plain text password and stores the hash.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hash)
	return nil
}

// VerifyPassword checks a plain text password against the stored hash.
func (u User) VerifyPassword(plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidCredentials
	}

	return err
}
