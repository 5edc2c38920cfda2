package controllers

import (
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable contains all values of a transaction that can be
// set through the API.
type TransactionEditable struct {
	Narration string                 `json:"narration" example:"Lunch"`                               // What the transaction was for
	Amount    decimal.Decimal        `json:"amount" example:"14.03" minimum:"0.00000001"`             // The amount, must be positive
	Type      models.TransactionType `json:"type" example:"expense" default:"expense"`                // "expense" or "income", defaults to "expense"
	Category  string                 `json:"category" example:"food"`                                 // Free-form category label
	BudgetID  *uuid.UUID             `json:"budgetId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // Optional reference to a budget of the same user
	Time      time.Time              `json:"time" example:"2021-11-17T09:11:01.271152Z"`              // Time of the transaction, defaults to the current time
}

// model returns the database resource for the API representation of
// the editable fields.
func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:    userID,
		Narration: editable.Narration,
		Amount:    editable.Amount,
		Type:      editable.Type,
		Category:  editable.Category,
		BudgetID:  editable.BudgetID,
		Time:      editable.Time,
	}
}

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`  // The transaction data, if the request was successful
	Error *string             `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data  []models.Transaction `json:"data"`  // List of transactions
	Error *string              `json:"error"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Date     time.Time `form:"date" filterField:"false" time_format:"2006-01-02" time_utc:"1"` // Transactions on this calendar day
	Category string    `form:"category" filterField:"false"`                      // Category the transactions match. Supports * as wildcard.
	BudgetID string    `form:"budgetId" filterField:"false"`                      // ID of the referenced budget
}
