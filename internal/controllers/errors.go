package controllers

import (
	"errors"
	"net/http"

	"github.com/fintrack/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no budget matching your query"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrNoResourceOwnership) {
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}

// Auth errors
var (
	errRegisterFieldsRequired = errors.New("username, email and password are required")
	errLoginFieldsRequired    = errors.New("email and password are required")
	errPasswordFieldsRequired = errors.New("both the current and the new password are required")
	errCurrentPasswordWrong   = errors.New("the current password is incorrect")
)

// Budget errors
var errBudgetTitleRequired = errors.New("the budget title is required")

// Transaction errors
var errTransactionFieldsRequired = errors.New("narration, amount and category are required")
