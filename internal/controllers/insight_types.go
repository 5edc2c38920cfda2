package controllers

import (
	"github.com/fintrack/backend/internal/insights"
)

type SummaryResponse struct {
	Data  *insights.Summary `json:"data"`  // The summary, if the request was successful
	Error *string           `json:"error"` // The error, if any occurred
}

// MonthlyInsight is the per-month income and expense breakdown.
type MonthlyInsight struct {
	IncomeByMonth   []insights.MonthlyTotal `json:"incomeByMonth"`
	ExpensesByMonth []insights.MonthlyTotal `json:"expensesByMonth"`
}

type MonthlyInsightResponse struct {
	Data  *MonthlyInsight `json:"data"`  // The breakdown, if the request was successful
	Error *string         `json:"error"` // The error, if any occurred
}

// WeeklyInsight is the per-ISO-week income and expense breakdown.
type WeeklyInsight struct {
	IncomeByWeek   []insights.WeeklyTotal `json:"incomeByWeek"`
	ExpensesByWeek []insights.WeeklyTotal `json:"expensesByWeek"`
}

type WeeklyInsightResponse struct {
	Data  *WeeklyInsight `json:"data"`  // The breakdown, if the request was successful
	Error *string        `json:"error"` // The error, if any occurred
}

// TrendInsight is the monthly time series used for trend charts.
type TrendInsight struct {
	IncomeTrends  []insights.MonthlyTotal `json:"incomeTrends"`
	ExpenseTrends []insights.MonthlyTotal `json:"expenseTrends"`
}

type TrendInsightResponse struct {
	Data  *TrendInsight `json:"data"`  // The time series, if the request was successful
	Error *string       `json:"error"` // The error, if any occurred
}
