// Package charts buckets transactions and monthly balances into labelled
// series for charts.
package charts

import (
	"sort"
	"strconv"
	"time"

	"github.com/finora/backend/internal/models"
	"github.com/finora/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Point is one bucket of a series.
type Point struct {
	Label  string          `json:"label" example:"Jan 2"` // Label of the bucket
	Amount decimal.Decimal `json:"amount" example:"31.5"` // Sum of all amounts in the bucket
}

const (
	dayKey        = "2006-01-02"
	dayLabel      = "Jan 2"
	rangeDayLabel = "2 Jan 2006"
)

func day(t time.Time) time.Time {
	t = t.In(time.UTC)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sumByDay(transactions []models.Transaction) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		key := t.Date.In(time.UTC).Format(dayKey)
		sums[key] = sums[key].Add(t.Amount)
	}
	return sums
}

// Daily returns one point per day of the month.
func Daily(transactions []models.Transaction, month types.Month) []Point {
	sums := sumByDay(transactions)

	points := make([]Point, 0, month.Days())
	for d := month.Start(); !d.After(month.End()); d = d.AddDate(0, 0, 1) {
		points = append(points, Point{Label: d.Format(dayLabel), Amount: sums[d.Format(dayKey)]})
	}
	return points
}

// IsFullYear reports whether from is January 1 and until is December 31
// of the same year.
func IsFullYear(from, until time.Time) bool {
	from, until = day(from), day(until)
	return from.Year() == until.Year() &&
		from.Month() == time.January && from.Day() == 1 &&
		until.Month() == time.December && until.Day() == 31
}

// Range returns one point per month for a full calendar year. For any
// other range, it returns one point per day from the start of the month
// of from to the end of the month of until.
func Range(transactions []models.Transaction, from, until time.Time) []Point {
	if until.Before(from) {
		return []Point{}
	}

	if IsFullYear(from, until) {
		year := day(from).Year()
		monthly := make(map[time.Month]decimal.Decimal)
		for _, t := range transactions {
			date := t.Date.In(time.UTC)
			if date.Year() == year {
				monthly[date.Month()] = monthly[date.Month()].Add(t.Amount)
			}
		}

		points := make([]Point, 0, 12)
		for m := time.January; m <= time.December; m++ {
			points = append(points, Point{Label: types.NewMonth(year, m).Label(), Amount: monthly[m]})
		}
		return points
	}

	sums := sumByDay(transactions)
	start := types.MonthOf(from).Start()
	end := types.MonthOf(until).End()

	points := make([]Point, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		points = append(points, Point{Label: d.Format(rangeDayLabel), Amount: sums[d.Format(dayKey)]})
	}
	return points
}

// Balances returns one point per month from from to until with the sum of
// one side of the monthly balances.
func Balances(balances []models.MonthlyBalance, from, until types.Month, t models.TransactionType) []Point {
	if until.Before(from) {
		return []Point{}
	}

	sums := make(map[int]decimal.Decimal)
	for _, b := range balances {
		i := types.MonthIndex(b.Year, b.Month)
		sums[i] = sums[i].Add(b.Amount(t))
	}

	points := make([]Point, 0)
	for m := from; !m.After(until); m = m.AddDate(0, 1) {
		points = append(points, Point{Label: m.Label(), Amount: sums[m.Index()]})
	}
	return points
}

// Yearly returns one point per year that has balances, oldest first.
func Yearly(balances []models.MonthlyBalance, t models.TransactionType) []Point {
	sums := make(map[int]decimal.Decimal)
	for _, b := range balances {
		sums[b.Year] = sums[b.Year].Add(b.Amount(t))
	}

	years := make([]int, 0, len(sums))
	for year := range sums {
		years = append(years, year)
	}
	sort.Ints(years)

	points := make([]Point, 0, len(years))
	for _, year := range years {
		points = append(points, Point{Label: strconv.Itoa(year), Amount: sums[year]})
	}
	return points
}
