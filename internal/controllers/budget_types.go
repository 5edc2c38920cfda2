package controllers

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable contains all values of a budget that can be set
// through the API.
type BudgetEditable struct {
	Title       string          `json:"title" example:"Groceries"`                    // Human readable title
	TotalAmount decimal.Decimal `json:"totalAmount" example:"500"`                    // The budgeted amount
	Duration    string          `json:"duration" example:"monthly" default:"monthly"` // Free-form duration label
}

// model returns the database resource for the API representation of
// the editable fields.
func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:      userID,
		Title:       editable.Title,
		TotalAmount: editable.TotalAmount,
		Duration:    editable.Duration,
	}
}

type BudgetResponse struct {
	Data  *models.Budget `json:"data"`  // The budget data, if the request was successful
	Error *string        `json:"error"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data  []models.Budget `json:"data"`  // List of budgets
	Error *string         `json:"error"` // The error, if any occurred
}
