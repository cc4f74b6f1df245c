// Package entity contains the core business objects of the project.
package entity

// SellerHistoryRow summarizes one salesperson's closed sales within a
// reporting window.
type SellerHistoryRow struct {
	Username     string  `json:"username"`      // The salesperson's account name.
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	VehiclesSold int     `json:"vehicles_sold"` // Number of sale transactions recorded.
	TotalSales   float64 `json:"total_sales"`   // Sum of the sale prices.
}

// InventoryTimeRow is the per-vehicle-type breakdown of how long sold
// vehicles sat in inventory.
type InventoryTimeRow struct {
	VehicleType string   `json:"vehicle_type"`
	SoldCount   int      `json:"sold_count"`   // Vehicles of this type with both a purchase and a sale.
	AverageDays *float64 `json:"average_days"` // Mean days between purchase and sale. Nil when nothing sold.
}

// InventoryTimeReport carries the overall average alongside the per-type
// breakdown, both over the same window.
type InventoryTimeReport struct {
	OverallAverageDays *float64           `json:"overall_average_days"` // Nil when no vehicle in the window has both records.
	ByVehicleType      []InventoryTimeRow `json:"by_vehicle_type"`
}

// PartsStatisticsRow aggregates one vendor's parts activity across all
// orders ever placed with them.
type PartsStatisticsRow struct {
	VendorName     string  `json:"vendor_name"`
	TotalQuantity  int     `json:"total_quantity"`  // Units ordered across every order line.
	TotalSpent     float64 `json:"total_spent"`     // Sum of quantity times unit price.
	OrderedCount   int     `json:"ordered_count"`   // Lines still in Ordered status.
	ReceivedCount  int     `json:"received_count"`  // Lines in Received status.
	InstalledCount int     `json:"installed_count"` // Lines in Installed status.
}

// MonthlySalesRow summarizes one calendar month of sales.
type MonthlySalesRow struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	VehiclesSold int     `json:"vehicles_sold"`
	GrossRevenue float64 `json:"gross_revenue"` // Sum of sale prices in the month.
	NetIncome    float64 `json:"net_income"`    // Gross minus purchase prices and parts cost of the vehicles sold.
}

// MonthlyDrilldownRow breaks one month's sales down per salesperson.
type MonthlyDrilldownRow struct {
	Username     string  `json:"username"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	VehiclesSold int     `json:"vehicles_sold"`
	TotalSales   float64 `json:"total_sales"`
}

// ConditionPriceRow is the average purchase price pivot for one vehicle
// type, split by condition.
type ConditionPriceRow struct {
	VehicleType string  `json:"vehicle_type"`
	Excellent   float64 `json:"excellent"`
	VeryGood    float64 `json:"very_good"`
	Good        float64 `json:"good"`
	Fair        float64 `json:"fair"`
}
