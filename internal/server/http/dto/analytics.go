package dto

// DailyRevenueResponse is one row of the per-day breakdown.
type DailyRevenueResponse struct {
	Date    string  `json:"date"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// TopItemResponse is one of the best selling items.
type TopItemResponse struct {
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// AnalyticsResponse summarises sales.
type AnalyticsResponse struct {
	TotalOrders  int64                  `json:"total_orders"`
	TotalRevenue float64                `json:"total_revenue"`
	ByDay        []DailyRevenueResponse `json:"by_day"`
	TopItems     []TopItemResponse      `json:"top_items"`
}
