// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"ledger/internal/domain/entity"
)

// ReportRepository runs the read-only aggregate queries behind the business
// reports. Callers run each report inside a single transaction so every query
// of a report sees the same snapshot.
type ReportRepository interface {
	// SellerHistory aggregates sale count and revenue per salesperson for
	// sales recorded in [from, to].
	SellerHistory(ctx context.Context, from, to time.Time) ([]entity.SellerHistoryRow, error)

	// InventoryTime computes the mean days between purchase and sale over
	// vehicles with both records in [from, to], overall and per vehicle type.
	InventoryTime(ctx context.Context, from, to time.Time) (*entity.InventoryTimeReport, error)

	// PartsStatistics aggregates quantity, spend and status counts per vendor.
	PartsStatistics(ctx context.Context) ([]entity.PartsStatisticsRow, error)

	// MonthlySales aggregates sale count, gross revenue and net income per
	// calendar month within [from, to].
	MonthlySales(ctx context.Context, from, to time.Time) ([]entity.MonthlySalesRow, error)

	// MonthlyDrilldown breaks one month's sales down per salesperson.
	MonthlyDrilldown(ctx context.Context, year, month int) ([]entity.MonthlyDrilldownRow, error)

	// PricePerCondition computes the average purchase price per vehicle type
	// and condition.
	PricePerCondition(ctx context.Context) ([]entity.ConditionPriceRow, error)
}
