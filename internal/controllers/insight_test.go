package controllers_test

import (
	"net/http"
	"time"

	"github.com/fintrack/backend/internal/controllers"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/fintrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSummary() {
	_, token := suite.registerTestUser("morre")

	suite.createTestBudget(token, controllers.BudgetEditable{
		Title:       "Groceries",
		TotalAmount: decimal.NewFromFloat(500),
	})

	suite.createTestTransaction(token, controllers.TransactionEditable{
		Narration: "Salary",
		Amount:    decimal.NewFromFloat(100),
		Type:      models.TransactionTypeIncome,
		Category:  "salary",
	})
	suite.createTestTransaction(token, controllers.TransactionEditable{
		Narration: "Lunch",
		Amount:    decimal.NewFromFloat(40),
		Category:  "food",
	})

	r := test.Request(suite.T(), http.MethodGet, "/api/insights/summary", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.TotalIncome.Equal(decimal.NewFromFloat(100)))
	assert.True(suite.T(), response.Data.TotalExpenses.Equal(decimal.NewFromFloat(40)))
	assert.True(suite.T(), response.Data.RemainingBudget.Equal(decimal.NewFromFloat(460)))

	if assert.Len(suite.T(), response.Data.TopCategories, 1) {
		assert.Equal(suite.T(), "food", response.Data.TopCategories[0].Category)
		assert.True(suite.T(), response.Data.TopCategories[0].Total.Equal(decimal.NewFromFloat(40)))
	}
}

func (suite *TestSuiteStandard) TestSummaryWithoutData() {
	_, token := suite.registerTestUser("morre")

	r := test.Request(suite.T(), http.MethodGet, "/api/insights/summary", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// No budget and no transactions means everything is zero
	assert.True(suite.T(), response.Data.TotalIncome.IsZero())
	assert.True(suite.T(), response.Data.TotalExpenses.IsZero())
	assert.True(suite.T(), response.Data.RemainingBudget.IsZero())
	assert.Empty(suite.T(), response.Data.TopCategories)
}

func (suite *TestSuiteStandard) TestSummaryUsesLatestBudget() {
	_, token := suite.registerTestUser("morre")

	suite.createTestBudget(token, controllers.BudgetEditable{
		Title:       "Old",
		TotalAmount: decimal.NewFromFloat(100),
	})
	suite.createTestBudget(token, controllers.BudgetEditable{
		Title:       "Current",
		TotalAmount: decimal.NewFromFloat(1000),
	})

	suite.createTestTransaction(token, controllers.TransactionEditable{
		Narration: "Lunch",
		Amount:    decimal.NewFromFloat(40),
		Category:  "food",
	})

	r := test.Request(suite.T(), http.MethodGet, "/api/insights/summary", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// The most recently created budget is the reference
	assert.True(suite.T(), response.Data.RemainingBudget.Equal(decimal.NewFromFloat(960)))
}

func (suite *TestSuiteStandard) TestSummaryScopedToUser() {
	_, token := suite.registerTestUser("morre")
	_, otherToken := suite.registerTestUser("other")

	suite.createTestTransaction(otherToken, controllers.TransactionEditable{
		Narration: "Not mine",
		Amount:    decimal.NewFromFloat(9001),
		Category:  "other",
	})

	r := test.Request(suite.T(), http.MethodGet, "/api/insights/summary", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.TotalExpenses.IsZero())
}

func (suite *TestSuiteStandard) TestMonthlyInsight() {
	_, token := suite.registerTestUser("morre")

	suite.createTestTransaction(token, controllers.TransactionEditable{
		Narration: "Lunch",
		Amount:    decimal.NewFromFloat(40),
		Category:  "food",
		Time:      time.Date(2022, 4, 2, 12, 0, 0, 0, time.UTC),
	})
	suite.createTestTransaction(token, controllers.TransactionEditable{
		Narration: "Dinner",
		Amount:    decimal.NewFromFloat(10),
		Category:  "food",
		Time:      time.Date(2022, 4, 17, 19, 0, 0, 0, time.UTC),
	})
	suite.createTestTransaction(token, controllers.TransactionEditable{
		Narration: "Salary",
		Amount:    decimal.NewFromFloat(2000),
		Type:      models.TransactionTypeIncome,
		Category:  "salary",
		Time:      time.Date(2022, 5, 1, 9, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "/api/insights/monthly", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.MonthlyInsightResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data.ExpensesByMonth, 1) {
		assert.Equal(suite.T(), types.MonthKey{Year: 2022, Month: 4}, response.Data.ExpensesByMonth[0].MonthKey)
		assert.True(suite.T(), response.Data.ExpensesByMonth[0].Total.Equal(decimal.NewFromFloat(50)))
	}

	if assert.Len(suite.T(), response.Data.IncomeByMonth, 1) {
		assert.Equal(suite.T(), types.MonthKey{Year: 2022, Month: 5}, response.Data.IncomeByMonth[0].MonthKey)
	}
}

func (suite *TestSuiteStandard) TestWeeklyInsight() {
	_, token := suite.registerTestUser("morre")

	// Both in ISO week 15 of 2022
	suite.createTestTransaction(token, controllers.TransactionEditable{
		Narration: "Lunch",
		Amount:    decimal.NewFromFloat(40),
		Category:  "food",
		Time:      time.Date(2022, 4, 11, 12, 0, 0, 0, time.UTC),
	})
	suite.createTestTransaction(token, controllers.TransactionEditable{
		Narration: "Dinner",
		Amount:    decimal.NewFromFloat(10),
		Category:  "food",
		Time:      time.Date(2022, 4, 17, 19, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "/api/insights/weekly", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.WeeklyInsightResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data.ExpensesByWeek, 1) {
		assert.Equal(suite.T(), types.WeekKey{Year: 2022, Week: 15}, response.Data.ExpensesByWeek[0].WeekKey)
		assert.True(suite.T(), response.Data.ExpensesByWeek[0].Total.Equal(decimal.NewFromFloat(50)))
	}
}

func (suite *TestSuiteStandard) TestTrendInsight() {
	_, token := suite.registerTestUser("morre")

	suite.createTestTransaction(token, controllers.TransactionEditable{
		Narration: "Rent",
		Amount:    decimal.NewFromFloat(600),
		Category:  "rent",
		Time:      time.Date(2022, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	suite.createTestTransaction(token, controllers.TransactionEditable{
		Narration: "Rent",
		Amount:    decimal.NewFromFloat(650),
		Category:  "rent",
		Time:      time.Date(2022, 4, 1, 12, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "/api/insights/trends", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.TrendInsightResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Newest month first
	if assert.Len(suite.T(), response.Data.ExpenseTrends, 2) {
		assert.Equal(suite.T(), types.MonthKey{Year: 2022, Month: 4}, response.Data.ExpenseTrends[0].MonthKey)
		assert.Equal(suite.T(), types.MonthKey{Year: 2022, Month: 3}, response.Data.ExpenseTrends[1].MonthKey)
	}
}
