package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface. Every report runs
// inside one transaction so its queries see the same snapshot.
type reportService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ReportServiceParams holds dependencies for reportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SellerHistory aggregates each salesperson's sale count and revenue within
// the window.
func (srv *reportService) SellerHistory(ctx context.Context, input usecase.ReportWindowInput) ([]entity.SellerHistoryRow, error) {
	from, to, err := normalizeWindow(input)
	if err != nil {
		return nil, err
	}

	var rows []entity.SellerHistoryRow

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewReportRepository().SellerHistory(ctx, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to compute seller history")
		}
		rows = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to run seller history report", slog.Any("error", err))

		return nil, err
	}

	return rows, nil
}

// AverageInventoryTime computes the mean days between purchase and sale over
// vehicles sold in the window, overall and per vehicle type.
func (srv *reportService) AverageInventoryTime(ctx context.Context, input usecase.ReportWindowInput) (*entity.InventoryTimeReport, error) {
	from, to, err := normalizeWindow(input)
	if err != nil {
		return nil, err
	}

	var report *entity.InventoryTimeReport

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewReportRepository().InventoryTime(ctx, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to compute inventory time")
		}
		report = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to run inventory time report", slog.Any("error", err))

		return nil, err
	}

	return report, nil
}

// PartsStatistics aggregates quantity, spend and status counts per vendor.
func (srv *reportService) PartsStatistics(ctx context.Context) ([]entity.PartsStatisticsRow, error) {
	var rows []entity.PartsStatisticsRow

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewReportRepository().PartsStatistics(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to compute parts statistics")
		}
		rows = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to run parts statistics report", slog.Any("error", err))

		return nil, err
	}

	return rows, nil
}

// MonthlySales aggregates sale count, gross revenue and net income per
// calendar month.
func (srv *reportService) MonthlySales(ctx context.Context, input usecase.ReportWindowInput) ([]entity.MonthlySalesRow, error) {
	from, to, err := normalizeWindow(input)
	if err != nil {
		return nil, err
	}

	var rows []entity.MonthlySalesRow

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewReportRepository().MonthlySales(ctx, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to compute monthly sales")
		}
		rows = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to run monthly sales report", slog.Any("error", err))

		return nil, err
	}

	return rows, nil
}

// MonthlyDrilldown breaks one month's sales down per salesperson.
func (srv *reportService) MonthlyDrilldown(ctx context.Context, input usecase.MonthlyDrilldownInput) ([]entity.MonthlyDrilldownRow, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "month %d out of range", input.Month)
	}
	if input.Year <= 0 {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "year %d out of range", input.Year)
	}

	var rows []entity.MonthlyDrilldownRow

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewReportRepository().MonthlyDrilldown(ctx, input.Year, input.Month)
		if err != nil {
			return errors.Wrap(err, "failed to compute monthly drilldown")
		}
		rows = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to run monthly drilldown report",
			slog.Int("year", input.Year), slog.Int("month", input.Month), slog.Any("error", err))

		return nil, err
	}

	return rows, nil
}

// PricePerCondition computes the average purchase price per vehicle type and
// condition.
func (srv *reportService) PricePerCondition(ctx context.Context) ([]entity.ConditionPriceRow, error) {
	var rows []entity.ConditionPriceRow

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewReportRepository().PricePerCondition(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to compute price per condition")
		}
		rows = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to run price per condition report", slog.Any("error", err))

		return nil, err
	}

	return rows, nil
}

// normalizeWindow fills the open ends of a report window and rejects an
// inverted one. The defaults cover all recorded history.
func normalizeWindow(input usecase.ReportWindowInput) (time.Time, time.Time, error) {
	from := input.From
	to := input.To

	if to.IsZero() {
		to = time.Now()
	}
	if !from.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, errors.Wrap(domainerrors.ErrValidationFailed, "report window starts after it ends")
	}

	return from, to, nil
}
