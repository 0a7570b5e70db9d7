package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MehmetGoekce/go-examples/internal/analytics"
)

func runDataProcessing() {
	records := []analytics.SaleRecord{
		{ID: "1", Product: "Laptop", Category: "Electronics", Price: decimal.NewFromFloat(999.99), Quantity: 1, Date: date(2023, 1, 15), Valid: true},
		{ID: "2", Product: "T-shirt", Category: "Clothing", Price: decimal.NewFromFloat(24.99), Quantity: 3, Date: date(2023, 1, 20), Valid: true},
		{ID: "3", Product: "Headphones", Category: "Electronics", Price: decimal.NewFromFloat(149.99), Quantity: 2, Date: date(2023, 1, 25), Valid: true},
		{ID: "4", Product: "Book", Category: "Media", Price: decimal.NewFromFloat(19.99), Quantity: 5, Date: date(2023, 2, 5), Valid: true},
		{ID: "5", Product: "Smartphone", Category: "Electronics", Price: decimal.NewFromFloat(799.99), Quantity: 1, Date: date(2023, 2, 10), Valid: true},
		{ID: "6", Product: "Jeans", Category: "Clothing", Price: decimal.NewFromFloat(49.99), Quantity: 2, Date: date(2023, 2, 15), Valid: true},
		{ID: "7", Product: "Tablet", Category: "Electronics", Price: decimal.NewFromFloat(349.99), Quantity: 1, Date: date(2023, 3, 2), Valid: true},
		{ID: "8", Product: "Movie", Category: "Media", Price: decimal.NewFromFloat(14.99), Quantity: 3, Date: date(2023, 3, 8), Valid: true},
		{ID: "9", Product: "Sweater", Category: "Clothing", Price: decimal.NewFromFloat(39.99), Quantity: 2, Date: date(2023, 3, 15), Valid: true},
		{ID: "10", Product: "Invalid Item", Category: "Unknown", Price: decimal.Zero, Quantity: 0, Date: date(2023, 3, 20), Valid: false},
	}

	fmt.Println("=== Basic Sales Analysis ===")
	for _, summary := range analytics.AnalyzeByCategory(records) {
		fmt.Println(summary)
	}

	fmt.Println("\n=== Monthly Sales Reports ===")
	for _, report := range analytics.MonthlyReports(records) {
		fmt.Println(report)
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
