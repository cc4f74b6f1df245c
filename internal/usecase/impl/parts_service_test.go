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

// partsServiceFixtures holds all test dependencies for parts service tests.
type partsServiceFixtures struct {
	txFixture
	service usecase.PartsUsecase
}

func createTestPartsService(t *testing.T) partsServiceFixtures {
	fixture := newTxFixture(t)
	service := NewPartsService(PartsServiceParams{
		TxManager: fixture.txManager,
		Logger:    newDiscardLogger(),
	})

	return partsServiceFixtures{
		txFixture: fixture,
		service:   service,
	}
}

func validAddPartsOrderInput() usecase.AddPartsOrderInput {
	return usecase.AddPartsOrderInput{
		VIN:        "1HGCM82633A004352",
		VendorName: "Apex Auto Parts",
		Parts: []usecase.PartInput{
			{VendorPartsNumber: "BRK-100", Description: "Brake pads", Quantity: 2, UnitPrice: 45.25},
			{VendorPartsNumber: "FLT-200", Description: "Oil filter", Quantity: 1, UnitPrice: 9.50},
		},
	}
}

func TestPartsService_AddPartsOrder_GeneratesOrderNumber(t *testing.T) {
	fx := createTestPartsService(t)

	ctx := context.Background()
	input := validAddPartsOrderInput()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		vendorRepo := mockRepo.NewMockVendorRepository(t)
		partsRepo := mockRepo.NewMockPartsOrderRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		factory.EXPECT().NewVendorRepository().Return(vendorRepo)
		factory.EXPECT().NewPartsOrderRepository().Return(partsRepo)

		vehicleRepo.EXPECT().FindByVIN(ctx, input.VIN).Return(&entity.Vehicle{VIN: input.VIN}, nil)
		vendorRepo.EXPECT().FindByName(ctx, input.VendorName).Return(&entity.Vendor{Name: input.VendorName}, nil)
		partsRepo.EXPECT().CountByVIN(ctx, input.VIN).Return(2, nil)
		partsRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.PartsOrder")).Return(nil)
	})

	order, err := fx.service.AddPartsOrder(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "1HGCM82633A004352-003", order.OrderNumber)
	assert.Equal(t, 100.00, order.TotalCost)
	require.Len(t, order.Parts, 2)
	assert.Equal(t, entity.PartStatusOrdered, order.Parts[0].Status)
	assert.Equal(t, entity.PartStatusOrdered, order.Parts[1].Status)
}

func TestPartsService_AddPartsOrder_VehicleNotFound(t *testing.T) {
	fx := createTestPartsService(t)

	ctx := context.Background()
	input := validAddPartsOrderInput()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		vehicleRepo.EXPECT().FindByVIN(ctx, input.VIN).Return(nil, repository.ErrVehicleNotFound)
	})

	order, err := fx.service.AddPartsOrder(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrVehicleNotFound))
}

func TestPartsService_AddPartsOrder_VendorNotFound(t *testing.T) {
	fx := createTestPartsService(t)

	ctx := context.Background()
	input := validAddPartsOrderInput()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		vehicleRepo := mockRepo.NewMockVehicleRepository(t)
		vendorRepo := mockRepo.NewMockVendorRepository(t)
		factory.EXPECT().NewVehicleRepository().Return(vehicleRepo)
		factory.EXPECT().NewVendorRepository().Return(vendorRepo)
		vehicleRepo.EXPECT().FindByVIN(ctx, input.VIN).Return(&entity.Vehicle{VIN: input.VIN}, nil)
		vendorRepo.EXPECT().FindByName(ctx, input.VendorName).Return(nil, repository.ErrVendorNotFound)
	})

	order, err := fx.service.AddPartsOrder(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrVendorNotFound))
}

func TestPartsService_AddPartsOrder_EmptyLines(t *testing.T) {
	fx := createTestPartsService(t)

	input := validAddPartsOrderInput()
	input.Parts = nil

	order, err := fx.service.AddPartsOrder(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPartsService_AddPartsOrder_DuplicateLine(t *testing.T) {
	fx := createTestPartsService(t)

	input := validAddPartsOrderInput()
	input.Parts[1].VendorPartsNumber = input.Parts[0].VendorPartsNumber

	order, err := fx.service.AddPartsOrder(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPartsService_AddPartsOrder_NonPositiveQuantity(t *testing.T) {
	fx := createTestPartsService(t)

	input := validAddPartsOrderInput()
	input.Parts[0].Quantity = 0

	order, err := fx.service.AddPartsOrder(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPartsService_UpdatePartStatus_Success(t *testing.T) {
	fx := createTestPartsService(t)

	ctx := context.Background()
	input := usecase.UpdatePartStatusInput{
		OrderNumber:       "1HGCM82633A004352-001",
		VendorPartsNumber: "BRK-100",
		Status:            "Installed",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partsRepo := mockRepo.NewMockPartsOrderRepository(t)
		factory.EXPECT().NewPartsOrderRepository().Return(partsRepo)
		partsRepo.EXPECT().
			FindPart(ctx, input.OrderNumber, input.VendorPartsNumber).
			Return(&entity.Part{
				VendorPartsNumber: input.VendorPartsNumber,
				OrderNumber:       input.OrderNumber,
				Status:            entity.PartStatusReceived,
			}, nil)
		partsRepo.EXPECT().
			UpdatePartStatus(ctx, input.OrderNumber, input.VendorPartsNumber, entity.PartStatusReceived, entity.PartStatusInstalled).
			Return(nil)
	})

	part, err := fx.service.UpdatePartStatus(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, part)
	assert.Equal(t, entity.PartStatusInstalled, part.Status)
}

func TestPartsService_UpdatePartStatus_BackwardMove(t *testing.T) {
	fx := createTestPartsService(t)

	ctx := context.Background()
	input := usecase.UpdatePartStatusInput{
		OrderNumber:       "1HGCM82633A004352-001",
		VendorPartsNumber: "BRK-100",
		Status:            "Ordered",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partsRepo := mockRepo.NewMockPartsOrderRepository(t)
		factory.EXPECT().NewPartsOrderRepository().Return(partsRepo)
		partsRepo.EXPECT().
			FindPart(ctx, input.OrderNumber, input.VendorPartsNumber).
			Return(&entity.Part{Status: entity.PartStatusInstalled}, nil)
	})

	part, err := fx.service.UpdatePartStatus(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, part)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestPartsService_UpdatePartStatus_ConcurrentChange(t *testing.T) {
	fx := createTestPartsService(t)

	ctx := context.Background()
	input := usecase.UpdatePartStatusInput{
		OrderNumber:       "1HGCM82633A004352-001",
		VendorPartsNumber: "BRK-100",
		Status:            "Received",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partsRepo := mockRepo.NewMockPartsOrderRepository(t)
		factory.EXPECT().NewPartsOrderRepository().Return(partsRepo)
		partsRepo.EXPECT().
			FindPart(ctx, input.OrderNumber, input.VendorPartsNumber).
			Return(&entity.Part{Status: entity.PartStatusOrdered}, nil)
		partsRepo.EXPECT().
			UpdatePartStatus(ctx, input.OrderNumber, input.VendorPartsNumber, entity.PartStatusOrdered, entity.PartStatusReceived).
			Return(repository.ErrStatusConflict)
	})

	part, err := fx.service.UpdatePartStatus(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, part)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestPartsService_UpdatePartStatus_UnknownStatus(t *testing.T) {
	fx := createTestPartsService(t)

	part, err := fx.service.UpdatePartStatus(context.Background(), usecase.UpdatePartStatusInput{
		OrderNumber:       "1HGCM82633A004352-001",
		VendorPartsNumber: "BRK-100",
		Status:            "Shipped",
	})

	assert.Error(t, err)
	assert.Nil(t, part)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPartsService_AddVendor_Duplicate(t *testing.T) {
	fx := createTestPartsService(t)

	ctx := context.Background()
	input := usecase.AddVendorInput{Name: "Apex Auto Parts", PhoneNumber: "555-0100"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		vendorRepo := mockRepo.NewMockVendorRepository(t)
		factory.EXPECT().NewVendorRepository().Return(vendorRepo)
		vendorRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Vendor")).
			Return(repository.ErrDuplicateVendor)
	})

	vendor, err := fx.service.AddVendor(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, vendor)
	assert.True(t, errors.Is(err, domainerrors.ErrVendorAlreadyExists))
}

func TestPartsService_ListVendors_Success(t *testing.T) {
	fx := createTestPartsService(t)

	ctx := context.Background()
	expected := []*entity.Vendor{{Name: "Apex Auto Parts"}}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		vendorRepo := mockRepo.NewMockVendorRepository(t)
		factory.EXPECT().NewVendorRepository().Return(vendorRepo)
		vendorRepo.EXPECT().List(ctx).Return(expected, nil)
	})

	vendors, err := fx.service.ListVendors(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, vendors)
}
