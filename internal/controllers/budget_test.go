package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/fintrack/backend/internal/controllers"
	"github.com/fintrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateBudget() {
	_, token := suite.registerTestUser("morre")

	budget := suite.createTestBudget(token, controllers.BudgetEditable{
		Title:       "Groceries",
		TotalAmount: decimal.NewFromFloat(500),
		Duration:    "monthly",
	})

	assert.Equal(suite.T(), "Groceries", budget.Title)
	assert.True(suite.T(), budget.TotalAmount.Equal(decimal.NewFromFloat(500)))
	assert.Equal(suite.T(), "monthly", budget.Duration)
}

func (suite *TestSuiteStandard) TestCreateBudgetWithoutTitle() {
	_, token := suite.registerTestUser("morre")

	r := test.Request(suite.T(), http.MethodPost, "/api/budgets", controllers.BudgetEditable{
		TotalAmount: decimal.NewFromFloat(500),
	}, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetBudgets() {
	_, token := suite.registerTestUser("morre")
	_, otherToken := suite.registerTestUser("other")

	suite.createTestBudget(token, controllers.BudgetEditable{Title: "Groceries"})
	suite.createTestBudget(token, controllers.BudgetEditable{Title: "Fuel"})
	suite.createTestBudget(otherToken, controllers.BudgetEditable{Title: "Not mine"})

	r := test.Request(suite.T(), http.MethodGet, "/api/budgets", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Only the budgets of the requesting user are returned
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestGetBudget() {
	_, token := suite.registerTestUser("morre")
	budget := suite.createTestBudget(token, controllers.BudgetEditable{Title: "Groceries"})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/api/budgets/%s", budget.ID), "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), budget.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetBudgetInvalidID() {
	_, token := suite.registerTestUser("morre")

	r := test.Request(suite.T(), http.MethodGet, "/api/budgets/definitely-not-a-uuid", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetBudgetOfOtherUser() {
	_, token := suite.registerTestUser("morre")
	_, otherToken := suite.registerTestUser("other")

	budget := suite.createTestBudget(otherToken, controllers.BudgetEditable{Title: "Not mine"})

	// Budgets of other users look like they do not exist
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/api/budgets/%s", budget.ID), "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateBudget() {
	_, token := suite.registerTestUser("morre")
	budget := suite.createTestBudget(token, controllers.BudgetEditable{
		Title:       "Groceries",
		TotalAmount: decimal.NewFromFloat(500),
	})

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("/api/budgets/%s", budget.ID), `{ "totalAmount": "600" }`, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.TotalAmount.Equal(decimal.NewFromFloat(600)))

	// Fields that were not in the body are unchanged
	assert.Equal(suite.T(), "Groceries", response.Data.Title)
}

func (suite *TestSuiteStandard) TestUpdateBudgetOfOtherUser() {
	_, token := suite.registerTestUser("morre")
	_, otherToken := suite.registerTestUser("other")

	budget := suite.createTestBudget(otherToken, controllers.BudgetEditable{Title: "Not mine"})

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("/api/budgets/%s", budget.ID), `{ "title": "Mine now" }`, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	_, token := suite.registerTestUser("morre")
	budget := suite.createTestBudget(token, controllers.BudgetEditable{Title: "Groceries"})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/api/budgets/%s", budget.ID), "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/api/budgets/%s", budget.ID), "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteBudgetClearsTransactionReference() {
	_, token := suite.registerTestUser("morre")
	budget := suite.createTestBudget(token, controllers.BudgetEditable{Title: "Groceries"})

	transaction := suite.createTestTransaction(token, controllers.TransactionEditable{
		Narration: "Lunch",
		Amount:    decimal.NewFromFloat(14.03),
		Category:  "food",
		BudgetID:  &budget.ID,
	})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/api/budgets/%s", budget.ID), "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// The transaction is kept, the budget reference is cleared
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/api/transactions/%s", transaction.ID), "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Nil(suite.T(), response.Data.BudgetID)
}

func (suite *TestSuiteStandard) TestDeleteBudgetOfOtherUser() {
	_, token := suite.registerTestUser("morre")
	_, otherToken := suite.registerTestUser("other")

	budget := suite.createTestBudget(otherToken, controllers.BudgetEditable{Title: "Not mine"})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/api/budgets/%s", budget.ID), "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
