// Package analytics aggregates in-memory sales records into category and
// monthly summaries.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord is a single sale. Invalid records are filtered out of every
// aggregation.
type SaleRecord struct {
	ID       string
	Product  string
	Category string
	Price    decimal.Decimal
	Quantity int
	Date     time.Time
	Valid    bool
}

// Total returns price x quantity.
func (r SaleRecord) Total() decimal.Decimal {
	return r.Price.Mul(decimal.NewFromInt(int64(r.Quantity)))
}

// CategorySummary aggregates all valid sales of one category.
type CategorySummary struct {
	Category     string
	TotalSales   decimal.Decimal
	AveragePrice decimal.Decimal
	ProductsSold int
}

func (s CategorySummary) String() string {
	return fmt.Sprintf("Category: %s, Total Sales: CHF%s, Avg Price: CHF%s, Products Sold: %d",
		s.Category, s.TotalSales.StringFixed(2), s.AveragePrice.StringFixed(2), s.ProductsSold)
}

// AnalyzeByCategory groups valid records by category and returns summaries
// sorted by total sales, highest first.
func AnalyzeByCategory(records []SaleRecord) []CategorySummary {
	type acc struct {
		total    decimal.Decimal
		priceSum decimal.Decimal
		records  int
		quantity int
	}

	byCategory := make(map[string]*acc)
	for _, r := range records {
		if !r.Valid {
			continue
		}
		a, ok := byCategory[r.Category]
		if !ok {
			a = &acc{total: decimal.Zero, priceSum: decimal.Zero}
			byCategory[r.Category] = a
		}
		a.total = a.total.Add(r.Total())
		a.priceSum = a.priceSum.Add(r.Price)
		a.records++
		a.quantity += r.Quantity
	}

	summaries := make([]CategorySummary, 0, len(byCategory))
	for category, a := range byCategory {
		summaries = append(summaries, CategorySummary{
			Category:     category,
			TotalSales:   a.total,
			AveragePrice: a.priceSum.DivRound(decimal.NewFromInt(int64(a.records)), 2),
			ProductsSold: a.quantity,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if c := summaries[i].TotalSales.Cmp(summaries[j].TotalSales); c != 0 {
			return c > 0
		}
		return summaries[i].Category < summaries[j].Category
	})
	return summaries
}

// MonthlyReport summarizes one calendar month of valid sales.
type MonthlyReport struct {
	Year       int
	Month      time.Month
	TotalSales decimal.Decimal
	// GrowthPct is the percentage change against the previous month that
	// has any sales, 0 for the first month in the data.
	GrowthPct     float64
	TopCategories []string
}

func (r MonthlyReport) String() string {
	return fmt.Sprintf("%d-%02d: Sales CHF%s, Growth: %.1f%%, Top Categories: %v",
		r.Year, int(r.Month), r.TotalSales.StringFixed(2), r.GrowthPct, r.TopCategories)
}

// MonthlyReports groups valid records by calendar month and returns reports
// in chronological order, each carrying its growth against the previous
// reported month and its top three categories by sales.
func MonthlyReports(records []SaleRecord) []MonthlyReport {
	type monthKey struct {
		year  int
		month time.Month
	}

	byMonth := make(map[monthKey][]SaleRecord)
	for _, r := range records {
		if !r.Valid {
			continue
		}
		key := monthKey{year: r.Date.Year(), month: r.Date.Month()}
		byMonth[key] = append(byMonth[key], r)
	}

	keys := make([]monthKey, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	reports := make([]MonthlyReport, 0, len(keys))
	prevTotal := decimal.Zero
	for i, key := range keys {
		monthRecords := byMonth[key]

		total := decimal.Zero
		categorySales := make(map[string]decimal.Decimal)
		for _, r := range monthRecords {
			total = total.Add(r.Total())
			categorySales[r.Category] = categorySales[r.Category].Add(r.Total())
		}

		growth := 0.0
		if i > 0 && prevTotal.IsPositive() {
			growth, _ = total.Sub(prevTotal).Div(prevTotal).Mul(decimal.NewFromInt(100)).Float64()
		}
		prevTotal = total

		reports = append(reports, MonthlyReport{
			Year:          key.year,
			Month:         key.month,
			TotalSales:    total,
			GrowthPct:     growth,
			TopCategories: topCategories(categorySales, 3),
		})
	}
	return reports
}

func topCategories(sales map[string]decimal.Decimal, n int) []string {
	categories := make([]string, 0, len(sales))
	for category := range sales {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if c := sales[categories[i]].Cmp(sales[categories[j]]); c != 0 {
			return c > 0
		}
		return categories[i] < categories[j]
	})
	if len(categories) > n {
		categories = categories[:n]
	}
	return categories
}
