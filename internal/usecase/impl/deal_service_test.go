package impl

import (
	"context"
	"testing"
	"time"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	mockRepo "ledger/internal/mocks/repository"
	"ledger/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dealServiceFixtures holds all test dependencies for deal service tests.
type dealServiceFixtures struct {
	txFixture
	service usecase.DealUsecase
}

func createTestDealService(t *testing.T) dealServiceFixtures {
	fixture := newTxFixture(t)
	service := NewDealService(DealServiceParams{
		TxManager: fixture.txManager,
		Logger:    newDiscardLogger(),
	})

	return dealServiceFixtures{
		txFixture: fixture,
		service:   service,
	}
}

func validRecordSaleInput() usecase.RecordSaleInput {
	return usecase.RecordSaleInput{
		VIN:        "1HGCM82633A004352",
		Username:   "sales1",
		CustomerID: 42,
		SalePrice:  15250.00,
		SoldOn:     time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
	}
}

func TestDealService_RecordSale_Success(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()
	input := validRecordSaleInput()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		dealRepo := mockRepo.NewMockDealRepository(t)
		partsRepo := mockRepo.NewMockPartsOrderRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		factory.EXPECT().NewDealRepository().Return(dealRepo)
		factory.EXPECT().NewPartsOrderRepository().Return(partsRepo)

		vehicleRepo.EXPECT().FindByVIN(ctx, input.VIN).Return(&entity.Vehicle{VIN: input.VIN}, nil)
		dealRepo.EXPECT().FindSaleByVIN(ctx, input.VIN).Return(nil, repository.ErrSaleNotFound)
		partsRepo.EXPECT().HasOpenParts(ctx, input.VIN).Return(false, nil)
		dealRepo.EXPECT().CreateSale(ctx, mock.AnythingOfType("*entity.SaleTransaction")).Return(nil)
	})

	sale, err := fx.service.RecordSale(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, input.VIN, sale.VIN)
	assert.Equal(t, input.Username, sale.Username)
	assert.Equal(t, input.SoldOn, sale.SoldOn)
}

func TestDealService_RecordSale_AlreadySold(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()
	input := validRecordSaleInput()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		dealRepo := mockRepo.NewMockDealRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		factory.EXPECT().NewDealRepository().Return(dealRepo)

		vehicleRepo.EXPECT().FindByVIN(ctx, input.VIN).Return(&entity.Vehicle{VIN: input.VIN}, nil)
		dealRepo.EXPECT().FindSaleByVIN(ctx, input.VIN).Return(&entity.SaleTransaction{VIN: input.VIN}, nil)
	})

	sale, err := fx.service.RecordSale(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, sale)
	assert.True(t, errors.Is(err, domainerrors.ErrVehicleAlreadySold))
}

func TestDealService_RecordSale_PendingPartsBlock(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()
	input := validRecordSaleInput()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		dealRepo := mockRepo.NewMockDealRepository(t)
		partsRepo := mockRepo.NewMockPartsOrderRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		factory.EXPECT().NewDealRepository().Return(dealRepo)
		factory.EXPECT().NewPartsOrderRepository().Return(partsRepo)

		vehicleRepo.EXPECT().FindByVIN(ctx, input.VIN).Return(&entity.Vehicle{VIN: input.VIN}, nil)
		dealRepo.EXPECT().FindSaleByVIN(ctx, input.VIN).Return(nil, repository.ErrSaleNotFound)
		partsRepo.EXPECT().HasOpenParts(ctx, input.VIN).Return(true, nil)
	})

	sale, err := fx.service.RecordSale(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, sale)
	assert.True(t, errors.Is(err, domainerrors.ErrVehicleUnavailable))
}

func TestDealService_RecordSale_LosesUniqueIndexRace(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()
	input := validRecordSaleInput()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		dealRepo := mockRepo.NewMockDealRepository(t)
		partsRepo := mockRepo.NewMockPartsOrderRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		factory.EXPECT().NewDealRepository().Return(dealRepo)
		factory.EXPECT().NewPartsOrderRepository().Return(partsRepo)

		vehicleRepo.EXPECT().FindByVIN(ctx, input.VIN).Return(&entity.Vehicle{VIN: input.VIN}, nil)
		dealRepo.EXPECT().FindSaleByVIN(ctx, input.VIN).Return(nil, repository.ErrSaleNotFound)
		partsRepo.EXPECT().HasOpenParts(ctx, input.VIN).Return(false, nil)
		dealRepo.EXPECT().
			CreateSale(ctx, mock.AnythingOfType("*entity.SaleTransaction")).
			Return(repository.ErrDuplicateSale)
	})

	sale, err := fx.service.RecordSale(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, sale)
	assert.True(t, errors.Is(err, domainerrors.ErrVehicleAlreadySold))
}

func TestDealService_RecordSale_NonPositivePrice(t *testing.T) {
	fx := createTestDealService(t)

	input := validRecordSaleInput()
	input.SalePrice = 0

	sale, err := fx.service.RecordSale(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, sale)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDealService_RecordSale_DefaultsDateToToday(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()
	input := validRecordSaleInput()
	input.SoldOn = time.Time{}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		dealRepo := mockRepo.NewMockDealRepository(t)
		partsRepo := mockRepo.NewMockPartsOrderRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		factory.EXPECT().NewDealRepository().Return(dealRepo)
		factory.EXPECT().NewPartsOrderRepository().Return(partsRepo)

		vehicleRepo.EXPECT().FindByVIN(ctx, input.VIN).Return(&entity.Vehicle{VIN: input.VIN}, nil)
		dealRepo.EXPECT().FindSaleByVIN(ctx, input.VIN).Return(nil, repository.ErrSaleNotFound)
		partsRepo.EXPECT().HasOpenParts(ctx, input.VIN).Return(false, nil)
		dealRepo.EXPECT().CreateSale(ctx, mock.AnythingOfType("*entity.SaleTransaction")).Return(nil)
	})

	sale, err := fx.service.RecordSale(ctx, input)

	require.NoError(t, err)
	assert.False(t, sale.SoldOn.IsZero())
}

func TestDealService_RecordPurchase_Duplicate(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()
	input := usecase.RecordPurchaseInput{
		VIN:           "1HGCM82633A004352",
		Username:      "sales1",
		CustomerID:    42,
		PurchasePrice: 9800.00,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		dealRepo := mockRepo.NewMockDealRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		factory.EXPECT().NewDealRepository().Return(dealRepo)

		vehicleRepo.EXPECT().FindByVIN(ctx, input.VIN).Return(&entity.Vehicle{VIN: input.VIN}, nil)
		dealRepo.EXPECT().
			FindPurchaseByVIN(ctx, input.VIN).
			Return(&entity.PurchaseTransaction{VIN: input.VIN}, nil)
	})

	purchase, err := fx.service.RecordPurchase(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, purchase)
	assert.True(t, errors.Is(err, domainerrors.ErrPurchaseAlreadyRecorded))
}

func TestDealService_RecordPurchase_UnknownCustomer(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()
	input := usecase.RecordPurchaseInput{
		VIN:           "1HGCM82633A004352",
		Username:      "sales1",
		CustomerID:    999,
		PurchasePrice: 9800.00,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		dealRepo := mockRepo.NewMockDealRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		factory.EXPECT().NewDealRepository().Return(dealRepo)

		vehicleRepo.EXPECT().FindByVIN(ctx, input.VIN).Return(&entity.Vehicle{VIN: input.VIN}, nil)
		dealRepo.EXPECT().FindPurchaseByVIN(ctx, input.VIN).Return(nil, repository.ErrPurchaseNotFound)
		dealRepo.EXPECT().
			CreatePurchase(ctx, mock.AnythingOfType("*entity.PurchaseTransaction")).
			Return(repository.ErrUnknownReference)
	})

	purchase, err := fx.service.RecordPurchase(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, purchase)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDealService_AcquireVehicle_Success(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()
	input := usecase.AcquireVehicleInput{
		Vehicle: validAddVehicleInput(),
		Purchase: usecase.RecordPurchaseInput{
			Username:      "sales1",
			CustomerID:    42,
			PurchasePrice: 9800.00,
			PurchasedOn:   time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		expectLookupsValid(t, ctx, factory, input.Vehicle)

		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		dealRepo := mockRepo.NewMockDealRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		factory.EXPECT().NewDealRepository().Return(dealRepo)

		vehicleRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Vehicle")).Return(nil)
		dealRepo.EXPECT().FindPurchaseByVIN(ctx, input.Vehicle.VIN).Return(nil, repository.ErrPurchaseNotFound)
		dealRepo.EXPECT().CreatePurchase(ctx, mock.AnythingOfType("*entity.PurchaseTransaction")).Return(nil)
	})

	purchase, err := fx.service.AcquireVehicle(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, purchase)
	assert.Equal(t, input.Vehicle.VIN, purchase.VIN)
	assert.Equal(t, 9800.00, purchase.PurchasePrice)
}

func TestDealService_AcquireVehicle_DuplicateVINRollsBack(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()
	input := usecase.AcquireVehicleInput{
		Vehicle: validAddVehicleInput(),
		Purchase: usecase.RecordPurchaseInput{
			Username:      "sales1",
			CustomerID:    42,
			PurchasePrice: 9800.00,
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		expectLookupsValid(t, ctx, factory, input.Vehicle)

		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		vehicleRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Vehicle")).
			Return(repository.ErrDuplicateVIN)
	})

	purchase, err := fx.service.AcquireVehicle(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, purchase)
	assert.True(t, errors.Is(err, domainerrors.ErrVINAlreadyExists))
}

func TestDealService_GetSaleDetails_NotFound(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		dealRepo := mockRepo.NewMockDealRepository(t)
		factory.EXPECT().NewDealRepository().Return(dealRepo)
		dealRepo.EXPECT().GetSaleDetails(ctx, "MISSING").Return(nil, repository.ErrSaleNotFound)
	})

	details, err := fx.service.GetSaleDetails(ctx, "MISSING")

	assert.Error(t, err)
	assert.Nil(t, details)
	assert.True(t, errors.Is(err, domainerrors.ErrSaleNotFound))
}

func TestDealService_GetPurchaseDetails_Success(t *testing.T) {
	fx := createTestDealService(t)

	ctx := context.Background()
	expected := &entity.DealDetails{
		VIN:          "1HGCM82633A004352",
		Price:        9800.00,
		CustomerName: "Jane Doe",
		StaffName:    "Sam Seller",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		dealRepo := mockRepo.NewMockDealRepository(t)
		factory.EXPECT().NewDealRepository().Return(dealRepo)
		dealRepo.EXPECT().GetPurchaseDetails(ctx, expected.VIN).Return(expected, nil)
	})

	details, err := fx.service.GetPurchaseDetails(ctx, expected.VIN)

	require.NoError(t, err)
	assert.Equal(t, expected, details)
}
