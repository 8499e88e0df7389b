package domain

// DailyOrderCount is one bucket of the recent orders histogram. The day is
// serialized under "_id" because that is the shape dashboard clients read.
type DailyOrderCount struct {
	Day   string `json:"_id" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// DashboardMetrics holds the figures shown on the dashboard
type DashboardMetrics struct {
	TotalOrders       int64             `json:"total_orders"`
	AverageOrderValue float64           `json:"average_order_value"`
	TotalRevenue      float64           `json:"total_revenue"`
	OrdersLast7Days   []DailyOrderCount `json:"orders_last_7_days"`
}
