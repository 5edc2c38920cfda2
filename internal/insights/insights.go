// Package insights computes derived financial views over a user's
// transactions.
//
// All functions are pure: they operate on transactions that have
// already been read from the database, so the aggregation logic is
// independent of the storage engine and can be tested without one.
package insights

import (
	"sort"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
)

// TopCategoryCount is the number of categories reported in the summary.
const TopCategoryCount = 5

// CategoryTotal is the summed expense amount for a single category.
type CategoryTotal struct {
	Category string          `json:"category" example:"food"`
	Total    decimal.Decimal `json:"total" example:"40"`
}

// Summary is the overall financial state of a user.
type Summary struct {
	TotalIncome     decimal.Decimal `json:"totalIncome" example:"2317.34"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses" example:"133.70"`
	RemainingBudget decimal.Decimal `json:"remainingBudget" example:"366.30"` // Budget total minus expenses, 0 without a budget
	TopCategories   []CategoryTotal `json:"topCategories"`
}

// MonthlyTotal is the summed amount for all transactions of one type in
// a calendar month.
type MonthlyTotal struct {
	types.MonthKey
	Total decimal.Decimal `json:"total" example:"250"`
}

// WeeklyTotal is the summed amount for all transactions of one type in
// an ISO week.
type WeeklyTotal struct {
	types.WeekKey
	Total decimal.Decimal `json:"total" example:"250"`
}

// Sum returns the summed amount of all transactions of the given type.
func Sum(transactions []models.Transaction, t models.TransactionType) decimal.Decimal {
	sum := decimal.Zero

	for _, transaction := range transactions {
		if transaction.Type == t {
			sum = sum.Add(transaction.Amount)
		}
	}

	return sum
}

// NewSummary computes the summary over all transactions of a user.
//
// The budget is the one used for the remaining budget calculation and
// may be nil, in which case the remaining budget is 0.
func NewSummary(transactions []models.Transaction, budget *models.Budget) Summary {
	totalExpenses := Sum(transactions, models.TransactionTypeExpense)

	remaining := decimal.Zero
	if budget != nil {
		remaining = budget.TotalAmount.Sub(totalExpenses)
	}

	return Summary{
		TotalIncome:     Sum(transactions, models.TransactionTypeIncome),
		TotalExpenses:   totalExpenses,
		RemainingBudget: remaining,
		TopCategories:   TopCategories(transactions, TopCategoryCount),
	}
}

// TopCategories returns the n categories with the highest summed
// expense amount, in descending order. Ties are broken by category
// name so that the order is stable.
func TopCategories(transactions []models.Transaction, n int) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)

	for _, transaction := range transactions {
		if transaction.Type != models.TransactionTypeExpense {
			continue
		}

		sums[transaction.Category] = sums[transaction.Category].Add(transaction.Amount)
	}

	categories := make([]CategoryTotal, 0, len(sums))
	for category, total := range sums {
		categories = append(categories, CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(categories, func(i, j int) bool {
		if !categories[i].Total.Equal(categories[j].Total) {
			return categories[i].Total.GreaterThan(categories[j].Total)
		}
		return categories[i].Category < categories[j].Category
	})

	if len(categories) > n {
		categories = categories[:n]
	}

	return categories
}

// MonthlyTotals groups all transactions of the given type by calendar
// month and returns the summed amount per month, sorted descending by
// year, then month.
func MonthlyTotals(transactions []models.Transaction, t models.TransactionType) []MonthlyTotal {
	sums := make(map[types.MonthKey]decimal.Decimal)

	for _, transaction := range transactions {
		if transaction.Type != t {
			continue
		}

		key := types.MonthKeyOf(transaction.Time)
		sums[key] = sums[key].Add(transaction.Amount)
	}

	totals := make([]MonthlyTotal, 0, len(sums))
	for key, total := range sums {
		totals = append(totals, MonthlyTotal{MonthKey: key, Total: total})
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].MonthKey.After(totals[j].MonthKey)
	})

	return totals
}

// WeeklyTotals groups all transactions of the given type by ISO week
// and returns the summed amount per week, sorted descending by year,
// then week.
func WeeklyTotals(transactions []models.Transaction, t models.TransactionType) []WeeklyTotal {
	sums := make(map[types.WeekKey]decimal.Decimal)

	for _, transaction := range transactions {
		if transaction.Type != t {
			continue
		}

		key := types.WeekKeyOf(transaction.Time)
		sums[key] = sums[key].Add(transaction.Amount)
	}

	totals := make([]WeeklyTotal, 0, len(sums))
	for key, total := range sums {
		totals = append(totals, WeeklyTotal{WeekKey: key, Total: total})
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].WeekKey.After(totals[j].WeekKey)
	})

	return totals
}
