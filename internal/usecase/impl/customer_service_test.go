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

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	txFixture
	service usecase.CustomerUsecase
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	fixture := newTxFixture(t)
	service := NewCustomerService(CustomerServiceParams{
		TxManager: fixture.txManager,
		Logger:    newDiscardLogger(),
	})

	return customerServiceFixtures{
		txFixture: fixture,
		service:   service,
	}
}

func validIndividualInput() usecase.AddCustomerInput {
	return usecase.AddCustomerInput{
		Kind:        "Individual",
		Email:       "jane@example.com",
		PhoneNumber: "555-0101",
		Street:      "12 Oak Street",
		City:        "Springfield",
		State:       "IL",
		PostalCode:  "62704",
		Individual: &usecase.IndividualInput{
			SSN:       "123-45-6789",
			FirstName: "Jane",
			LastName:  "Doe",
		},
	}
}

func TestCustomerService_AddCustomer_Individual(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := validIndividualInput()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		customerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(customerRepo)
		customerRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Customer")).
			Run(func(ctx context.Context, customer *entity.Customer) {
				customer.ID = 42
			}).
			Return(nil)
	})

	customer, err := fx.service.AddCustomer(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, int64(42), customer.ID)
	assert.Equal(t, entity.CustomerKindIndividual, customer.Kind)
	require.NotNil(t, customer.Individual)
	assert.Equal(t, "123-45-6789", customer.Individual.SocialSecurityNumber)
	assert.Nil(t, customer.Business)
}

func TestCustomerService_AddCustomer_DuplicateIdentifier(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		customerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(customerRepo)
		customerRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Customer")).
			Return(repository.ErrDuplicateIdentifier)
	})

	customer, err := fx.service.AddCustomer(ctx, validIndividualInput())

	assert.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateCustomerID))
}

func TestCustomerService_AddCustomer_BothProfiles(t *testing.T) {
	fx := createTestCustomerService(t)

	input := validIndividualInput()
	input.Business = &usecase.BusinessInput{TaxID: "98-7654321", BusinessName: "Doe LLC"}

	customer, err := fx.service.AddCustomer(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCustomerService_AddCustomer_BusinessWithoutTaxID(t *testing.T) {
	fx := createTestCustomerService(t)

	input := usecase.AddCustomerInput{
		Kind:     "Business",
		Business: &usecase.BusinessInput{BusinessName: "Doe LLC"},
	}

	customer, err := fx.service.AddCustomer(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCustomerService_AddCustomer_UnknownKind(t *testing.T) {
	fx := createTestCustomerService(t)

	customer, err := fx.service.AddCustomer(context.Background(), usecase.AddCustomerInput{Kind: "Partnership"})

	assert.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCustomerService_FindByIdentifier_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		customerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(customerRepo)
		customerRepo.EXPECT().
			FindByIdentifier(ctx, "000-00-0000").
			Return(nil, repository.ErrCustomerNotFound)
	})

	customer, err := fx.service.FindByIdentifier(ctx, "000-00-0000")

	assert.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_FindByIdentifier_EmptyIdentifier(t *testing.T) {
	fx := createTestCustomerService(t)

	customer, err := fx.service.FindByIdentifier(context.Background(), "")

	assert.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCustomerService_UpdateCustomer_OnlyContactFields(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	existing := &entity.Customer{
		ID:   42,
		Kind: entity.CustomerKindIndividual,
		Individual: &entity.IndividualProfile{
			SocialSecurityNumber: "123-45-6789",
			FirstName:            "Jane",
			LastName:             "Doe",
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		customerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(customerRepo)
		customerRepo.EXPECT().FindByID(ctx, int64(42)).Return(existing, nil)
		customerRepo.EXPECT().
			UpdateBase(ctx, mock.AnythingOfType("*entity.Customer")).
			Run(func(ctx context.Context, customer *entity.Customer) {
				assert.Equal(t, "555-0199", customer.PhoneNumber)
				assert.Equal(t, "123-45-6789", customer.Individual.SocialSecurityNumber)
			}).
			Return(nil)
	})

	customer, err := fx.service.UpdateCustomer(ctx, usecase.UpdateCustomerInput{
		ID:          42,
		PhoneNumber: "555-0199",
		Street:      "99 Elm Street",
		City:        "Springfield",
		State:       "IL",
		PostalCode:  "62704",
	})

	require.NoError(t, err)
	assert.Equal(t, "555-0199", customer.PhoneNumber)
}

func TestCustomerService_DeleteCustomer_WithTransactions(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		customerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(customerRepo)
		customerRepo.EXPECT().Delete(ctx, int64(42)).Return(repository.ErrUnknownReference)
	})

	err := fx.service.DeleteCustomer(ctx, 42)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestCustomerService_DeleteCustomer_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		customerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(customerRepo)
		customerRepo.EXPECT().Delete(ctx, int64(7)).Return(repository.ErrCustomerNotFound)
	})

	err := fx.service.DeleteCustomer(ctx, 7)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}
