package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// TransactionType is the type of a transaction, determining whether it
// adds to or subtracts from the user's balance.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a single income or expense record of a user.
type Transaction struct {
	DefaultModel
	UserID    uuid.UUID       `json:"userId" gorm:"index"`                                       // ID of the owning user
	Narration string          `json:"narration" example:"Lunch"`                                 // What the transaction was for
	Amount    decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.03"`          // The amount, always positive
	Type      TransactionType `json:"type" example:"expense" default:"expense"`                  // "expense" or "income"
	Category  string          `json:"category" example:"food"`                                   // Free-form category label
	BudgetID  *uuid.UUID      `json:"budgetId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`   // Optional reference to a budget of the same user
	Budget    Budget          `json:"-"`
	Time      time.Time       `json:"time" example:"2021-11-17T09:11:01.271152Z"` // Time of the transaction. Defaults to creation time.
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Time = t.Time.In(time.UTC)
	return
}

// BeforeSave
//   - trims whitespace from string fields
//   - defaults the type to "expense" and the time to the current instant
//   - verifies that the amount is positive and the type is valid
//   - verifies that a referenced budget exists and belongs to the same user
func (t *Transaction) BeforeSave(tx *gorm.DB) (err error) {
	t.Narration = strings.TrimSpace(t.Narration)
	t.Category = strings.TrimSpace(t.Category)

	if t.Type == "" {
		t.Type = TransactionTypeExpense
	}

	if !slices.Contains([]TransactionType{TransactionTypeExpense, TransactionTypeIncome}, t.Type) {
		return ErrTransactionTypeInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Time.IsZero() {
		t.Time = time.Now().In(time.UTC)
	} else {
		t.Time = t.Time.In(time.UTC)
	}

	// Ensure that the budget ID is nil and not a pointer to a nil UUID
	if t.BudgetID != nil && *t.BudgetID == uuid.Nil {
		t.BudgetID = nil
	}

	// A referenced budget must belong to the same user
	if t.BudgetID != nil {
		return tx.First(&Budget{}, "id = ? AND user_id = ?", *t.BudgetID, t.UserID).Error
	}

	return nil
}

// BeforeUpdate verifies the new values before committing an update.
//
// On updates, gorm calls the hooks on the existing record and provides
// the new values on the statement, so the checks from BeforeSave have
// to be repeated here for the fields that change.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Transaction)

	if tx.Statement.Changed("Amount") && !toSave.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if tx.Statement.Changed("Type") && !slices.Contains([]TransactionType{TransactionTypeExpense, TransactionTypeIncome}, toSave.Type) {
		return ErrTransactionTypeInvalid
	}

	if tx.Statement.Changed("BudgetID") && toSave.BudgetID != nil && *toSave.BudgetID != uuid.Nil {
		return tx.First(&Budget{}, "id = ? AND user_id = ?", *toSave.BudgetID, t.UserID).Error
	}

	return nil
}
