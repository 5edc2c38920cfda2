// Package types implements special types for fintrack.
package types

import (
	"fmt"
	"time"
)

// MonthKey identifies a calendar month in a specific year.
type MonthKey struct {
	Year  int `json:"year" example:"2022"`
	Month int `json:"month" example:"4"` // January is 1
}

// MonthKeyOf returns the MonthKey for the month in which a time occurs.
func MonthKeyOf(t time.Time) MonthKey {
	year, month, _ := t.Date()
	return MonthKey{Year: year, Month: int(month)}
}

// String returns the month formatted as YYYY-MM.
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, k.Month)
}

// After reports whether the month instant k is after o.
func (k MonthKey) After(o MonthKey) bool {
	if k.Year != o.Year {
		return k.Year > o.Year
	}
	return k.Month > o.Month
}

// WeekKey identifies an ISO 8601 week in a specific ISO year.
//
// Note that the ISO year of the first and last days of a calendar year
// can differ from their calendar year.
type WeekKey struct {
	Year int `json:"year" example:"2022"`
	Week int `json:"week" example:"15"`
}

// WeekKeyOf returns the WeekKey for the ISO week in which a time occurs.
func WeekKeyOf(t time.Time) WeekKey {
	year, week := t.ISOWeek()
	return WeekKey{Year: year, Week: week}
}

// String returns the week formatted as YYYY-Www.
func (k WeekKey) String() string {
	return fmt.Sprintf("%04d-W%02d", k.Year, k.Week)
}

// After reports whether the week instant k is after o.
func (k WeekKey) After(o WeekKey) bool {
	if k.Year != o.Year {
		return k.Year > o.Year
	}
	return k.Week > o.Week
}
