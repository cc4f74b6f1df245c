package impl

import (
	"context"
	"testing"
	"time"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	mockRepo "ledger/internal/mocks/repository"
	"ledger/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reportServiceFixtures holds all test dependencies for report service tests.
type reportServiceFixtures struct {
	txFixture
	service usecase.ReportUsecase
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	fixture := newTxFixture(t)
	service := NewReportService(ReportServiceParams{
		TxManager: fixture.txManager,
		Logger:    newDiscardLogger(),
	})

	return reportServiceFixtures{
		txFixture: fixture,
		service:   service,
	}
}

func TestReportService_SellerHistory_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	expected := []entity.SellerHistoryRow{
		{Username: "sales1", FirstName: "Sam", LastName: "Seller", VehiclesSold: 7, TotalSales: 103250.00},
		{Username: "sales2", FirstName: "Pat", LastName: "Jones", VehiclesSold: 3, TotalSales: 41900.00},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reportRepo := mockRepo.NewMockReportRepository(t)
		factory.EXPECT().NewReportRepository().Return(reportRepo)

		reportRepo.EXPECT().SellerHistory(ctx, from, to).Return(expected, nil)
	})

	rows, err := fx.service.SellerHistory(ctx, usecase.ReportWindowInput{From: from, To: to})

	require.NoError(t, err)
	assert.Equal(t, expected, rows)
}

func TestReportService_SellerHistory_InvertedWindow(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	input := usecase.ReportWindowInput{
		From: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	rows, err := fx.service.SellerHistory(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, rows)
}

func TestReportService_SellerHistory_DefaultsOpenEndToNow(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reportRepo := mockRepo.NewMockReportRepository(t)
		factory.EXPECT().NewReportRepository().Return(reportRepo)

		reportRepo.EXPECT().
			SellerHistory(ctx, from, mock.MatchedBy(func(to time.Time) bool {
				return !to.IsZero() && to.After(from)
			})).
			Return([]entity.SellerHistoryRow{}, nil)
	})

	rows, err := fx.service.SellerHistory(ctx, usecase.ReportWindowInput{From: from})

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReportService_SellerHistory_RepositoryError(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reportRepo := mockRepo.NewMockReportRepository(t)
		factory.EXPECT().NewReportRepository().Return(reportRepo)

		reportRepo.EXPECT().SellerHistory(ctx, from, to).Return(nil, errors.New("db error"))
	})

	rows, err := fx.service.SellerHistory(ctx, usecase.ReportWindowInput{From: from, To: to})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compute seller history")
	assert.Nil(t, rows)
}

func TestReportService_AverageInventoryTime_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	overall := 23.5
	expected := &entity.InventoryTimeReport{
		OverallAverageDays: &overall,
		ByVehicleType: []entity.InventoryTimeRow{
			{VehicleType: "Sedan", SoldCount: 4},
			{VehicleType: "Truck", SoldCount: 2},
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reportRepo := mockRepo.NewMockReportRepository(t)
		factory.EXPECT().NewReportRepository().Return(reportRepo)

		reportRepo.EXPECT().InventoryTime(ctx, from, to).Return(expected, nil)
	})

	report, err := fx.service.AverageInventoryTime(ctx, usecase.ReportWindowInput{From: from, To: to})

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, expected, report)
}

func TestReportService_AverageInventoryTime_NoSoldVehicles(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reportRepo := mockRepo.NewMockReportRepository(t)
		factory.EXPECT().NewReportRepository().Return(reportRepo)

		reportRepo.EXPECT().InventoryTime(ctx, from, to).
			Return(&entity.InventoryTimeReport{OverallAverageDays: nil}, nil)
	})

	report, err := fx.service.AverageInventoryTime(ctx, usecase.ReportWindowInput{From: from, To: to})

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Nil(t, report.OverallAverageDays)
}

func TestReportService_PartsStatistics_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	expected := []entity.PartsStatisticsRow{
		{VendorName: "Acme Parts", TotalQuantity: 12, TotalSpent: 840.50, OrderedCount: 2, ReceivedCount: 1, InstalledCount: 9},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reportRepo := mockRepo.NewMockReportRepository(t)
		factory.EXPECT().NewReportRepository().Return(reportRepo)

		reportRepo.EXPECT().PartsStatistics(ctx).Return(expected, nil)
	})

	rows, err := fx.service.PartsStatistics(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, rows)
}

func TestReportService_MonthlySales_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	expected := []entity.MonthlySalesRow{
		{Year: 2024, Month: 3, VehiclesSold: 5, GrossRevenue: 71000.00, NetIncome: 9400.00},
		{Year: 2024, Month: 2, VehiclesSold: 1, GrossRevenue: 8500.00, NetIncome: -250.00},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reportRepo := mockRepo.NewMockReportRepository(t)
		factory.EXPECT().NewReportRepository().Return(reportRepo)

		reportRepo.EXPECT().MonthlySales(ctx, from, to).Return(expected, nil)
	})

	rows, err := fx.service.MonthlySales(ctx, usecase.ReportWindowInput{From: from, To: to})

	require.NoError(t, err)
	assert.Equal(t, expected, rows)
}

func TestReportService_MonthlyDrilldown_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	expected := []entity.MonthlyDrilldownRow{
		{Username: "sales1", FirstName: "Sam", LastName: "Seller", VehiclesSold: 3, TotalSales: 42750.00},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reportRepo := mockRepo.NewMockReportRepository(t)
		factory.EXPECT().NewReportRepository().Return(reportRepo)

		reportRepo.EXPECT().MonthlyDrilldown(ctx, 2024, 3).Return(expected, nil)
	})

	rows, err := fx.service.MonthlyDrilldown(ctx, usecase.MonthlyDrilldownInput{Year: 2024, Month: 3})

	require.NoError(t, err)
	assert.Equal(t, expected, rows)
}

func TestReportService_MonthlyDrilldown_MonthOutOfRange(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()

	for _, month := range []int{0, 13, -1} {
		rows, err := fx.service.MonthlyDrilldown(ctx, usecase.MonthlyDrilldownInput{Year: 2024, Month: month})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Nil(t, rows)
	}
}

func TestReportService_MonthlyDrilldown_InvalidYear(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()

	rows, err := fx.service.MonthlyDrilldown(ctx, usecase.MonthlyDrilldownInput{Year: 0, Month: 6})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, rows)
}

func TestReportService_PricePerCondition_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	expected := []entity.ConditionPriceRow{
		{VehicleType: "Sedan", Excellent: 18200.00, VeryGood: 15100.00, Good: 11750.00, Fair: 7300.00},
		{VehicleType: "Truck", Good: 21400.00},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reportRepo := mockRepo.NewMockReportRepository(t)
		factory.EXPECT().NewReportRepository().Return(reportRepo)

		reportRepo.EXPECT().PricePerCondition(ctx).Return(expected, nil)
	})

	rows, err := fx.service.PricePerCondition(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, rows)
}
