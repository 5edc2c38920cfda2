package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget represents a spending budget of a single user.
type Budget struct {
	DefaultModel
	UserID      uuid.UUID       `json:"userId" gorm:"index"`                            // ID of the owning user
	Title       string          `json:"title" example:"Groceries"`                      // Human readable title
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:DECIMAL(20,8)"`          // The budgeted amount
	Duration    string          `json:"duration" example:"monthly" default:"monthly"`   // Free-form duration label
}

// BeforeSave trims whitespace from string fields.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Title = strings.TrimSpace(b.Title)
	b.Duration = strings.TrimSpace(b.Duration)

	return nil
}

// BeforeDelete clears the budget reference on all transactions that
// reference this budget. The transactions themselves are kept.
func (b *Budget) BeforeDelete(tx *gorm.DB) error {
	return tx.Session(&gorm.Session{SkipHooks: true}).
		Model(&Transaction{}).
		Where("budget_id = ?", b.ID).
		Update("budget_id", nil).Error
}
