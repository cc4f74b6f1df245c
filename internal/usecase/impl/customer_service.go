package impl

import (
	"context"
	"log/slog"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// CustomerServiceParams holds dependencies for customerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddCustomer registers a new customer of exactly one kind. The SSN or tax
// ID must not already be registered.
func (srv *customerService) AddCustomer(ctx context.Context, input usecase.AddCustomerInput) (*entity.Customer, error) {
	customer, err := customerFromInput(input)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Adding customer", slog.String("kind", customer.Kind.String()))

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewCustomerRepository().Create(ctx, customer); err != nil {
			if errors.Is(err, repository.ErrDuplicateIdentifier) {
				return errors.Wrap(domainerrors.ErrDuplicateCustomerID, "identifier already registered")
			}

			return errors.Wrap(err, "failed to create customer")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add customer", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("Customer added", slog.Int64("customerID", customer.ID))

	return customer, nil
}

// GetCustomer retrieves a customer by surrogate ID.
func (srv *customerService) GetCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCustomerRepository().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
			}

			return errors.Wrap(err, "failed to find customer")
		}
		customer = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to get customer", slog.Int64("customerID", id), slog.Any("error", err))

		return nil, err
	}

	return customer, nil
}

// FindByIdentifier retrieves a customer by SSN or tax ID.
func (srv *customerService) FindByIdentifier(ctx context.Context, identifier string) (*entity.Customer, error) {
	if identifier == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "identifier is required")
	}

	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCustomerRepository().FindByIdentifier(ctx, identifier)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "no customer with this identifier")
			}

			return errors.Wrap(err, "failed to find customer")
		}
		customer = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to find customer by identifier", slog.Any("error", err))

		return nil, err
	}

	return customer, nil
}

// ListIdentifiers retrieves every registered SSN and tax ID, for the
// counterparty picker on transaction entry.
func (srv *customerService) ListIdentifiers(ctx context.Context) ([]string, error) {
	var identifiers []string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCustomerRepository().ListIdentifiers(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list identifiers")
		}
		identifiers = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list customer identifiers", slog.Any("error", err))

		return nil, err
	}

	return identifiers, nil
}

// UpdateCustomer modifies the shared contact fields of a customer. The kind
// and the identifying number never change.
func (srv *customerService) UpdateCustomer(ctx context.Context, input usecase.UpdateCustomerInput) (*entity.Customer, error) {
	srv.log(ctx).Info("Updating customer", slog.Int64("customerID", input.ID))

	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()

		found, err := customerRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
			}

			return errors.Wrap(err, "failed to find customer")
		}

		found.Email = optionalString(input.Email)
		found.PhoneNumber = input.PhoneNumber
		found.Address = entity.Address{
			Street:     input.Street,
			City:       input.City,
			State:      input.State,
			PostalCode: input.PostalCode,
		}

		if err := customerRepo.UpdateBase(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update customer")
		}
		customer = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update customer", slog.Int64("customerID", input.ID), slog.Any("error", err))

		return nil, err
	}

	return customer, nil
}

// DeleteCustomer removes a customer. Customers referenced by a sale or
// purchase transaction cannot be removed; the ledger keeps its history.
func (srv *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	srv.log(ctx).Info("Deleting customer", slog.Int64("customerID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewCustomerRepository().Delete(ctx, id); err != nil {
			switch {
			case errors.Is(err, repository.ErrCustomerNotFound):
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
			case errors.Is(err, repository.ErrUnknownReference):
				return errors.Wrap(domainerrors.ErrConflict, "customer has recorded transactions")
			}

			return errors.Wrap(err, "failed to delete customer")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete customer", slog.Int64("customerID", id), slog.Any("error", err))

		return err
	}

	return nil
}

// customerFromInput builds the customer entity and enforces that exactly one
// specialization matches the declared kind.
func customerFromInput(input usecase.AddCustomerInput) (*entity.Customer, error) {
	kind := entity.CustomerKind(input.Kind)
	if !kind.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown customer kind %q", input.Kind)
	}

	customer := &entity.Customer{
		Email:       optionalString(input.Email),
		PhoneNumber: input.PhoneNumber,
		Address: entity.Address{
			Street:     input.Street,
			City:       input.City,
			State:      input.State,
			PostalCode: input.PostalCode,
		},
		Kind: kind,
	}

	switch kind {
	case entity.CustomerKindIndividual:
		if input.Individual == nil || input.Business != nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "an individual customer needs exactly the individual profile")
		}
		if input.Individual.SSN == "" {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "social security number is required")
		}
		customer.Individual = &entity.IndividualProfile{
			SocialSecurityNumber: input.Individual.SSN,
			FirstName:            input.Individual.FirstName,
			LastName:             input.Individual.LastName,
		}
	case entity.CustomerKindBusiness:
		if input.Business == nil || input.Individual != nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a business customer needs exactly the business profile")
		}
		if input.Business.TaxID == "" {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "tax identification number is required")
		}
		customer.Business = &entity.BusinessProfile{
			TaxIdentificationNumber: input.Business.TaxID,
			BusinessName:            input.Business.BusinessName,
			ContactFirstName:        input.Business.ContactFirstName,
			ContactLastName:         input.Business.ContactLastName,
			ContactTitle:            input.Business.ContactTitle,
		}
	}

	return customer, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
