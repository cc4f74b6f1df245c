package usecase

import (
	"context"
	"time"

	"ledger/internal/domain/entity"
)

// --- Input DTOs ---

// ReportWindowInput bounds a report to sales recorded in [From, To].
// Zero values mean unbounded on that side.
type ReportWindowInput struct {
	From time.Time
	To   time.Time
}

// MonthlyDrilldownInput selects the calendar month to break down.
type MonthlyDrilldownInput struct {
	Year  int
	Month int
}

// ReportUsecase defines the interface for the management reports. Each report
// runs inside one transaction so its queries see a consistent snapshot.
type ReportUsecase interface {
	SellerHistory(ctx context.Context, input ReportWindowInput) ([]entity.SellerHistoryRow, error)
	AverageInventoryTime(ctx context.Context, input ReportWindowInput) (*entity.InventoryTimeReport, error)
	PartsStatistics(ctx context.Context) ([]entity.PartsStatisticsRow, error)
	MonthlySales(ctx context.Context, input ReportWindowInput) ([]entity.MonthlySalesRow, error)
	MonthlyDrilldown(ctx context.Context, input MonthlyDrilldownInput) ([]entity.MonthlyDrilldownRow, error)
	PricePerCondition(ctx context.Context) ([]entity.ConditionPriceRow, error)
}
