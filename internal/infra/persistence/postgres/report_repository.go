package postgres

import (
	"context"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reportRepository implements the repository.ReportRepository interface with
// raw aggregate SQL. The queries are read-only; callers wrap each report in
// one transaction so every query sees the same snapshot.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// SellerHistory aggregates sale count and revenue per salesperson.
func (repo *reportRepository) SellerHistory(ctx context.Context, from, to time.Time) ([]entity.SellerHistoryRow, error) {
	const query = `
		SELECT u.username,
		       u.first_name,
		       u.last_name,
		       COUNT(st.vehicle_identification_number) AS vehicles_sold,
		       COALESCE(SUM(st.sale_price), 0)         AS total_sales
		FROM "SaleTransaction" st
		JOIN "User" u ON u.username = st.username
		WHERE st.sold_on BETWEEN ? AND ?
		GROUP BY u.username, u.first_name, u.last_name
		ORDER BY total_sales DESC, u.username`

	var rows []entity.SellerHistoryRow
	if err := repo.db.WithContext(ctx).Raw(query, from, to).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to run seller history report")
	}

	return rows, nil
}

// InventoryTime computes the mean days between purchase and sale, overall
// and per vehicle type, over vehicles with both records in range.
func (repo *reportRepository) InventoryTime(ctx context.Context, from, to time.Time) (*entity.InventoryTimeReport, error) {
	const overallQuery = `
		SELECT AVG(st.sold_on - pt.purchased_on)::float8 AS average_days
		FROM "SaleTransaction" st
		JOIN "PurchaseTransaction" pt
		  ON pt.vehicle_identification_number = st.vehicle_identification_number
		WHERE st.sold_on BETWEEN ? AND ?
		  AND pt.purchased_on BETWEEN ? AND ?`

	var overall struct {
		AverageDays *float64
	}
	if err := repo.db.WithContext(ctx).Raw(overallQuery, from, to, from, to).Scan(&overall).Error; err != nil {
		return nil, errors.Wrap(err, "failed to run inventory time report")
	}

	const byTypeQuery = `
		SELECT v.vehicle_type,
		       COUNT(CASE WHEN st.sold_on IS NOT NULL AND pt.purchased_on IS NOT NULL THEN 1 END) AS sold_count,
		       AVG(st.sold_on - pt.purchased_on)::float8 AS average_days
		FROM "Vehicle" v
		LEFT JOIN "PurchaseTransaction" pt
		  ON pt.vehicle_identification_number = v.vehicle_identification_number
		 AND pt.purchased_on BETWEEN ? AND ?
		LEFT JOIN "SaleTransaction" st
		  ON st.vehicle_identification_number = v.vehicle_identification_number
		 AND st.sold_on BETWEEN ? AND ?
		GROUP BY v.vehicle_type
		ORDER BY v.vehicle_type`

	var byType []entity.InventoryTimeRow
	if err := repo.db.WithContext(ctx).Raw(byTypeQuery, from, to, from, to).Scan(&byType).Error; err != nil {
		return nil, errors.Wrap(err, "failed to run inventory time breakdown")
	}

	return &entity.InventoryTimeReport{
		OverallAverageDays: overall.AverageDays,
		ByVehicleType:      byType,
	}, nil
}

// PartsStatistics aggregates quantity, spend and status counts per vendor.
func (repo *reportRepository) PartsStatistics(ctx context.Context) ([]entity.PartsStatisticsRow, error) {
	const query = `
		SELECT v.name AS vendor_name,
		       COALESCE(SUM(p.quantity), 0)                AS total_quantity,
		       COALESCE(SUM(p.quantity * p.unit_price), 0) AS total_spent,
		       COUNT(CASE WHEN p.status = 'Ordered' THEN 1 END)   AS ordered_count,
		       COUNT(CASE WHEN p.status = 'Received' THEN 1 END)  AS received_count,
		       COUNT(CASE WHEN p.status = 'Installed' THEN 1 END) AS installed_count
		FROM "Vendor" v
		JOIN "PartsOrder" po ON po.name = v.name
		JOIN "Part" p ON p.order_number = po.order_number
		GROUP BY v.name
		ORDER BY v.name`

	var rows []entity.PartsStatisticsRow
	if err := repo.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to run parts statistics report")
	}

	return rows, nil
}

// MonthlySales aggregates sale count, gross revenue and net income per
// calendar month. Net income subtracts the purchase price and the parts cost
// of the vehicles sold that month.
func (repo *reportRepository) MonthlySales(ctx context.Context, from, to time.Time) ([]entity.MonthlySalesRow, error) {
	const query = `
		SELECT EXTRACT(YEAR FROM st.sold_on)::int  AS year,
		       EXTRACT(MONTH FROM st.sold_on)::int AS month,
		       COUNT(st.vehicle_identification_number) AS vehicles_sold,
		       COALESCE(SUM(st.sale_price), 0)          AS gross_revenue,
		       COALESCE(SUM(st.sale_price - COALESCE(pt.purchase_price, 0) - COALESCE(parts.total, 0)), 0) AS net_income
		FROM "SaleTransaction" st
		LEFT JOIN "PurchaseTransaction" pt
		  ON pt.vehicle_identification_number = st.vehicle_identification_number
		LEFT JOIN (
			SELECT vehicle_identification_number, SUM(total_cost) AS total
			FROM "PartsOrder"
			GROUP BY vehicle_identification_number
		) parts ON parts.vehicle_identification_number = st.vehicle_identification_number
		WHERE st.sold_on BETWEEN ? AND ?
		GROUP BY year, month
		ORDER BY year, month`

	var rows []entity.MonthlySalesRow
	if err := repo.db.WithContext(ctx).Raw(query, from, to).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to run monthly sales report")
	}

	return rows, nil
}

// MonthlyDrilldown breaks one month's sales down per salesperson.
func (repo *reportRepository) MonthlyDrilldown(ctx context.Context, year, month int) ([]entity.MonthlyDrilldownRow, error) {
	const query = `
		SELECT u.username,
		       u.first_name,
		       u.last_name,
		       COUNT(st.vehicle_identification_number) AS vehicles_sold,
		       COALESCE(SUM(st.sale_price), 0)         AS total_sales
		FROM "SaleTransaction" st
		JOIN "User" u ON u.username = st.username
		WHERE EXTRACT(YEAR FROM st.sold_on) = ?
		  AND EXTRACT(MONTH FROM st.sold_on) = ?
		GROUP BY u.username, u.first_name, u.last_name
		ORDER BY total_sales DESC, u.username`

	var rows []entity.MonthlyDrilldownRow
	if err := repo.db.WithContext(ctx).Raw(query, year, month).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to run monthly drilldown report")
	}

	return rows, nil
}

// PricePerCondition computes the average purchase price per vehicle type and
// condition.
func (repo *reportRepository) PricePerCondition(ctx context.Context) ([]entity.ConditionPriceRow, error) {
	const query = `
		SELECT v.vehicle_type,
		       COALESCE(AVG(CASE WHEN v.condition = 'Excellent' THEN pt.purchase_price END), 0) AS excellent,
		       COALESCE(AVG(CASE WHEN v.condition = 'Very Good' THEN pt.purchase_price END), 0) AS very_good,
		       COALESCE(AVG(CASE WHEN v.condition = 'Good' THEN pt.purchase_price END), 0)      AS good,
		       COALESCE(AVG(CASE WHEN v.condition = 'Fair' THEN pt.purchase_price END), 0)      AS fair
		FROM "Vehicle" v
		LEFT JOIN "PurchaseTransaction" pt
		  ON pt.vehicle_identification_number = v.vehicle_identification_number
		GROUP BY v.vehicle_type
		ORDER BY v.vehicle_type`

	var rows []entity.ConditionPriceRow
	if err := repo.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to run price per condition report")
	}

	return rows, nil
}
