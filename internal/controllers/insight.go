package controllers

import (
	"errors"
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/insights"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterInsightRoutes registers the routes for insights with
// the RouterGroup that is passed.
func RegisterInsightRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", OptionsInsight)
	r.GET("/summary", GetSummary)

	r.OPTIONS("/monthly", OptionsInsight)
	r.GET("/monthly", GetMonthlyInsight)

	r.OPTIONS("/weekly", OptionsInsight)
	r.GET("/weekly", GetWeeklyInsight)

	r.OPTIONS("/trends", OptionsInsight)
	r.GET("/trends", GetTrendInsight)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Insights
// @Success		204
// @Router			/api/insights/summary [options]
func OptionsInsight(c *gin.Context) {
	httputil.OptionsGet(c)
}

// userTransactions returns all transactions of the user, newest first.
func userTransactions(userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := models.DB.
		Order("created_at DESC").
		Where("user_id = ?", userID).
		Find(&transactions).Error

	return transactions, err
}

// latestBudget returns the most recently created budget of the user or
// nil if the user has none.
func latestBudget(userID uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	err := models.DB.
		Order("created_at DESC").
		First(&budget, "user_id = ?", userID).Error

	if errors.Is(err, models.ErrResourceNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &budget, nil
}

// @Summary		Financial summary
// @Description	Returns total income, total expenses, the remaining amount of the latest budget and the top expense categories
// @Tags			Insights
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Router			/api/insights/summary [get]
func GetSummary(c *gin.Context) {
	transactions, err := userTransactions(userID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	budget, err := latestBudget(userID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	summary := insights.NewSummary(transactions, budget)
	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}

// @Summary		Monthly breakdown
// @Description	Returns income and expenses grouped by calendar month, newest month first
// @Tags			Insights
// @Produce		json
// @Success		200	{object}	MonthlyInsightResponse
// @Failure		500	{object}	MonthlyInsightResponse
// @Router			/api/insights/monthly [get]
func GetMonthlyInsight(c *gin.Context) {
	transactions, err := userTransactions(userID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyInsightResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MonthlyInsightResponse{Data: &MonthlyInsight{
		IncomeByMonth:   insights.MonthlyTotals(transactions, models.TransactionTypeIncome),
		ExpensesByMonth: insights.MonthlyTotals(transactions, models.TransactionTypeExpense),
	}})
}

// @Summary		Weekly breakdown
// @Description	Returns income and expenses grouped by ISO week, newest week first
// @Tags			Insights
// @Produce		json
// @Success		200	{object}	WeeklyInsightResponse
// @Failure		500	{object}	WeeklyInsightResponse
// @Router			/api/insights/weekly [get]
func GetWeeklyInsight(c *gin.Context) {
	transactions, err := userTransactions(userID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyInsightResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, WeeklyInsightResponse{Data: &WeeklyInsight{
		IncomeByWeek:   insights.WeeklyTotals(transactions, models.TransactionTypeIncome),
		ExpensesByWeek: insights.WeeklyTotals(transactions, models.TransactionTypeExpense),
	}})
}

// @Summary		Trends
// @Description	Returns the monthly income and expense time series for trend charts
// @Tags			Insights
// @Produce		json
// @Success		200	{object}	TrendInsightResponse
// @Failure		500	{object}	TrendInsightResponse
// @Router			/api/insights/trends [get]
func GetTrendInsight(c *gin.Context) {
	transactions, err := userTransactions(userID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TrendInsightResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TrendInsightResponse{Data: &TrendInsight{
		IncomeTrends:  insights.MonthlyTotals(transactions, models.TransactionTypeIncome),
		ExpenseTrends: insights.MonthlyTotals(transactions, models.TransactionTypeExpense),
	}})
}
