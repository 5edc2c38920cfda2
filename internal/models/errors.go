package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrNoResourceOwnership is returned when a resource exists, but belongs
	// to a different user than the one requesting it.
	ErrNoResourceOwnership = errors.New("this resource belongs to another user")
)

// User errors
var (
	ErrEmailAlreadyInUse  = errors.New("this email is already in use by another user")
	ErrInvalidCredentials = errors.New("the specified credentials are invalid")
)

// Transaction errors
var (
	ErrAmountNotPositive      = errors.New("transaction amounts must be larger than zero")
	ErrTransactionTypeInvalid = errors.New("the transaction type must be \"expense\" or \"income\"")
)
