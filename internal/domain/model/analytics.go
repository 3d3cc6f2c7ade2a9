package model

import "github.com/shopspring/decimal"

// DailyRevenue groups orders created on one UTC calendar day.
type DailyRevenue struct {
	Date    string
	Orders  int64
	Revenue decimal.Decimal
}

// ItemSales sums order lines sharing the same snapshot name.
type ItemSales struct {
	Name     string
	Quantity int64
	Revenue  decimal.Decimal
}

// SalesSummary is the read-only analytics report.
type SalesSummary struct {
	TotalOrders  int64
	TotalRevenue decimal.Decimal
	ByDay        []DailyRevenue
	TopItems     []ItemSales
}
