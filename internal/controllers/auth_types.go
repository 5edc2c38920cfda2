package controllers

import (
	"github.com/fintrack/backend/internal/models"
)

type RegisterRequest struct {
	Username string `json:"username" example:"morre"`             // Display name of the user
	Email    string `json:"email" example:"morre@example.com"`    // Email used for login, unique over all users
	Password string `json:"password" example:"correct battery.."` // Plain text password, only ever stored hashed
}

type LoginRequest struct {
	Email    string `json:"email" example:"morre@example.com"`
	Password string `json:"password" example:"correct battery.."`
}

// ProfileEditable contains the user fields that can be changed after
// registration.
type ProfileEditable struct {
	Username string `json:"username" example:"morre"`
	Email    string `json:"email" example:"morre@example.com"`
}

type PasswordUpdateRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type UserResponse struct {
	Data  *models.User `json:"data"`  // The user data, if the request was successful
	Error *string      `json:"error"` // The error, if any occurred
}

// Token is a bearer token to be sent in the Authorization header.
type Token struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type TokenResponse struct {
	Data  *Token  `json:"data"`  // The issued token, if login was successful
	Error *string `json:"error"` // The error, if any occurred
}
