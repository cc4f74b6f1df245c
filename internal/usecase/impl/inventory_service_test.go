package impl

import (
	"context"
	"testing"

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

// inventoryServiceFixtures holds all test dependencies for inventory service tests.
type inventoryServiceFixtures struct {
	txFixture
	service usecase.InventoryUsecase
}

func createTestInventoryService(t *testing.T) inventoryServiceFixtures {
	fixture := newTxFixture(t)
	service := NewInventoryService(InventoryServiceParams{
		TxManager: fixture.txManager,
		Logger:    newDiscardLogger(),
	})

	return inventoryServiceFixtures{
		txFixture: fixture,
		service:   service,
	}
}

func validAddVehicleInput() usecase.AddVehicleInput {
	return usecase.AddVehicleInput{
		VIN:          "1HGCM82633A004352",
		VehicleType:  "Sedan",
		Manufacturer: "Honda",
		Condition:    "Good",
		ModelName:    "Accord",
		Year:         2019,
		FuelType:     "Gas",
		Horsepower:   192,
		Description:  "One owner, clean title",
		Colors:       []string{"Blue"},
	}
}

func expectLookupsValid(t *testing.T, ctx context.Context, factory *mockRepo.MockRepositoryFactory, input usecase.AddVehicleInput) *mockRepo.MockLookupRepository {
	t.Helper()

	lookupRepo := mockRepo.NewMockLookupRepository(t)
	factory.EXPECT().NewLookupRepository().Return(lookupRepo)
	lookupRepo.EXPECT().HasVehicleType(ctx, input.VehicleType).Return(true, nil)
	lookupRepo.EXPECT().HasManufacturer(ctx, input.Manufacturer).Return(true, nil)
	lookupRepo.EXPECT().MissingColors(ctx, input.Colors).Return(nil, nil)

	return lookupRepo
}

func TestInventoryService_AddVehicle_Success(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	input := validAddVehicleInput()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		expectLookupsValid(t, ctx, factory, input)

		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		vehicleRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Vehicle")).Return(nil)
	})

	vehicle, err := fx.service.AddVehicle(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, vehicle)
	assert.Equal(t, "1HGCM82633A004352", vehicle.VIN)
	assert.Equal(t, entity.ConditionGood, vehicle.Condition)
	assert.Equal(t, entity.FuelTypeGas, vehicle.FuelType)
}

func TestInventoryService_AddVehicle_NormalizesVIN(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	input := validAddVehicleInput()
	input.VIN = "  1hgcm82633a004352 "

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		expectLookupsValid(t, ctx, factory, input)

		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		vehicleRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Vehicle")).
			Run(func(ctx context.Context, vehicle *entity.Vehicle) {
				assert.Equal(t, "1HGCM82633A004352", vehicle.VIN)
			}).
			Return(nil)
	})

	vehicle, err := fx.service.AddVehicle(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "1HGCM82633A004352", vehicle.VIN)
}

func TestInventoryService_AddVehicle_DuplicateVIN(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	input := validAddVehicleInput()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		expectLookupsValid(t, ctx, factory, input)

		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		vehicleRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Vehicle")).
			Return(repository.ErrDuplicateVIN)
	})

	vehicle, err := fx.service.AddVehicle(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, vehicle)
	assert.True(t, errors.Is(err, domainerrors.ErrVINAlreadyExists))
}

func TestInventoryService_AddVehicle_UnknownManufacturer(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	input := validAddVehicleInput()
	input.Manufacturer = "Yugo"

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		lookupRepo := mockRepo.NewMockLookupRepository(t)
		factory.EXPECT().NewLookupRepository().Return(lookupRepo)
		lookupRepo.EXPECT().HasVehicleType(ctx, input.VehicleType).Return(true, nil)
		lookupRepo.EXPECT().HasManufacturer(ctx, "Yugo").Return(false, nil)
	})

	vehicle, err := fx.service.AddVehicle(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, vehicle)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownLookupValue))
}

func TestInventoryService_AddVehicle_UnknownColor(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	input := validAddVehicleInput()
	input.Colors = []string{"Blue", "Chartreuse"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		lookupRepo := mockRepo.NewMockLookupRepository(t)
		factory.EXPECT().NewLookupRepository().Return(lookupRepo)
		lookupRepo.EXPECT().HasVehicleType(ctx, input.VehicleType).Return(true, nil)
		lookupRepo.EXPECT().HasManufacturer(ctx, input.Manufacturer).Return(true, nil)
		lookupRepo.EXPECT().MissingColors(ctx, input.Colors).Return([]string{"Chartreuse"}, nil)
	})

	vehicle, err := fx.service.AddVehicle(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, vehicle)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownLookupValue))
	assert.Contains(t, err.Error(), "Chartreuse")
}

func TestInventoryService_AddVehicle_InvalidCondition(t *testing.T) {
	fx := createTestInventoryService(t)

	input := validAddVehicleInput()
	input.Condition = "Mint"

	vehicle, err := fx.service.AddVehicle(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, vehicle)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestInventoryService_AddVehicle_NoColors(t *testing.T) {
	fx := createTestInventoryService(t)

	input := validAddVehicleInput()
	input.Colors = nil

	vehicle, err := fx.service.AddVehicle(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, vehicle)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestInventoryService_UpdateVehicle_NotFound(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	input := usecase.UpdateVehicleInput(validAddVehicleInput())

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		expectLookupsValid(t, ctx, factory, usecase.AddVehicleInput(input))

		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		vehicleRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Vehicle")).
			Return(repository.ErrVehicleNotFound)
	})

	vehicle, err := fx.service.UpdateVehicle(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, vehicle)
	assert.True(t, errors.Is(err, domainerrors.ErrVehicleNotFound))
}

func TestInventoryService_SearchVehicles_Success(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	expected := []*entity.VehicleListing{
		{Vehicle: entity.Vehicle{VIN: "1HGCM82633A004352"}},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		vehicleRepo.EXPECT().
			Search(ctx, repository.SearchFilter{Keyword: "accord"}).
			Return(expected, nil)
	})

	listings, err := fx.service.SearchVehicles(ctx, usecase.SearchVehiclesInput{
		Role:    entity.RolePublic,
		Keyword: "accord",
	})

	require.NoError(t, err)
	assert.Equal(t, expected, listings)
}

func TestInventoryService_SearchVehicles_PublicCannotFilterByVIN(t *testing.T) {
	fx := createTestInventoryService(t)

	listings, err := fx.service.SearchVehicles(context.Background(), usecase.SearchVehiclesInput{
		Role: entity.RolePublic,
		VIN:  "1HGCM82633A004352",
	})

	assert.Error(t, err)
	assert.Nil(t, listings)
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}

func TestInventoryService_SearchVehicles_SoldFilterNeedsManager(t *testing.T) {
	fx := createTestInventoryService(t)

	listings, err := fx.service.SearchVehicles(context.Background(), usecase.SearchVehiclesInput{
		Role:         entity.RoleSalesperson,
		Availability: "sold",
	})

	assert.Error(t, err)
	assert.Nil(t, listings)
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}

func TestInventoryService_SearchVehicles_ManagerFiltersBySoldStatus(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		vehicleRepo.EXPECT().
			Search(ctx, repository.SearchFilter{Availability: repository.AvailabilitySold}).
			Return(nil, nil)
	})

	_, err := fx.service.SearchVehicles(ctx, usecase.SearchVehiclesInput{
		Role:         entity.RoleManager,
		Availability: "sold",
	})

	require.NoError(t, err)
}

func TestInventoryService_GetVehicle_Success(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	vin := "1HGCM82633A004352"
	listing := &entity.VehicleListing{Vehicle: entity.Vehicle{VIN: vin}}
	orders := []*entity.PartsOrder{{OrderNumber: vin + "-001", VIN: vin}}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		partsRepo := mockRepo.NewMockPartsOrderRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		factory.EXPECT().NewPartsOrderRepository().Return(partsRepo)
		vehicleRepo.EXPECT().FindListing(ctx, vin).Return(listing, nil)
		partsRepo.EXPECT().FindOrdersByVIN(ctx, vin).Return(orders, nil)
	})

	details, err := fx.service.GetVehicle(ctx, vin)

	require.NoError(t, err)
	assert.Equal(t, listing, details.Listing)
	assert.Equal(t, orders, details.PartsOrders)
}

func TestInventoryService_GetVehicle_NotFound(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		vehicleRepo.EXPECT().FindListing(ctx, "MISSING").Return(nil, repository.ErrVehicleNotFound)
	})

	details, err := fx.service.GetVehicle(ctx, "MISSING")

	assert.Error(t, err)
	assert.Nil(t, details)
	assert.True(t, errors.Is(err, domainerrors.ErrVehicleNotFound))
}

func TestInventoryService_ListReferenceData_Success(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		lookupRepo := mockRepo.NewMockLookupRepository(t)
		factory.EXPECT().NewLookupRepository().Return(lookupRepo)
		lookupRepo.EXPECT().ListVehicleTypes(ctx).Return([]string{"Sedan", "SUV"}, nil)
		lookupRepo.EXPECT().ListManufacturers(ctx).Return([]string{"Honda", "Toyota"}, nil)
		lookupRepo.EXPECT().ListColors(ctx).Return([]string{"Black", "Blue"}, nil)
	})

	data, err := fx.service.ListReferenceData(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"Sedan", "SUV"}, data.VehicleTypes)
	assert.Equal(t, []string{"Honda", "Toyota"}, data.Manufacturers)
	assert.Equal(t, []string{"Black", "Blue"}, data.Colors)
}
