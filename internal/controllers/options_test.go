package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/fintrack/backend/internal/controllers"
	"github.com/fintrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptions() {
	_, token := suite.registerTestUser("morre")

	tests := []struct {
		path  string
		allow string
	}{
		{"/api/register", "POST"},
		{"/api/login", "POST"},
		{"/api/profile", "PUT"},
		{"/api/profile/password", "PUT"},
		{"/api/budgets", "GET, POST"},
		{"/api/transactions", "GET, POST"},
		{"/api/insights/summary", "GET"},
		{"/api/insights/monthly", "GET"},
		{"/api/insights/weekly", "GET"},
		{"/api/insights/trends", "GET"},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodOptions, tt.path, "", test.BearerHeader(token))
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		assert.Equal(suite.T(), tt.allow, r.Header().Get("allow"), tt.path)
	}
}

func (suite *TestSuiteStandard) TestOptionsResourceDetail() {
	_, token := suite.registerTestUser("morre")

	budget := suite.createTestBudget(token, controllers.BudgetEditable{Title: "Groceries"})
	transaction := suite.createTestTransaction(token, controllers.TransactionEditable{
		Narration: "Lunch",
		Amount:    decimal.NewFromFloat(14.03),
		Category:  "food",
	})

	r := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/api/budgets/%s", budget.ID), "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, PUT, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/api/transactions/%s", transaction.ID), "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, PUT, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsNonexistentResource() {
	_, token := suite.registerTestUser("morre")

	r := test.Request(suite.T(), http.MethodOptions, "/api/budgets/2649c965-7999-4873-ae16-89d5d5fa972e", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
