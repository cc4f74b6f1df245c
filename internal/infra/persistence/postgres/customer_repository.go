package postgres

import (
	"context"
	"slices"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// Create persists a new customer and its specialization row in one go,
// filling in the generated ID on the entity.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	switch customer.Kind {
	case entity.CustomerKindIndividual:
		individualM := &model.IndividualCustomerModel{
			CustomerID:           customerM.ID,
			SocialSecurityNumber: customer.Individual.SocialSecurityNumber,
			FirstName:            customer.Individual.FirstName,
			LastName:             customer.Individual.LastName,
		}
		if err := repo.db.WithContext(ctx).Create(individualM).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return repository.ErrDuplicateIdentifier
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create individual customer")
		}
	case entity.CustomerKindBusiness:
		businessM := &model.BusinessCustomerModel{
			CustomerID:              customerM.ID,
			TaxIdentificationNumber: customer.Business.TaxIdentificationNumber,
			BusinessName:            customer.Business.BusinessName,
			PrimaryContactFirstName: customer.Business.ContactFirstName,
			PrimaryContactLastName:  customer.Business.ContactLastName,
			PrimaryContactTitle:     customer.Business.ContactTitle,
		}
		if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return repository.ErrDuplicateIdentifier
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create business customer")
		}
	}

	customer.ID = customerM.ID

	return nil
}

// FindByID retrieves a customer with its specialization.
func (repo *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Preload("Individual").
		Preload("Business").
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// FindByIdentifier retrieves a customer by SSN or tax ID.
func (repo *customerRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Customer, error) {
	var individualM model.IndividualCustomerModel
	err := repo.db.WithContext(ctx).
		Where("social_security_number = ?", identifier).
		First(&individualM).Error
	if err == nil {
		return repo.FindByID(ctx, individualM.CustomerID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed to find customer by SSN")
	}

	var businessM model.BusinessCustomerModel
	err = repo.db.WithContext(ctx).
		Where("tax_identification_number = ?", identifier).
		First(&businessM).Error
	if err == nil {
		return repo.FindByID(ctx, businessM.CustomerID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed to find customer by tax ID")
	}

	return nil, repository.ErrCustomerNotFound
}

// ListIdentifiers retrieves every registered SSN and tax ID, sorted.
func (repo *customerRepository) ListIdentifiers(ctx context.Context) ([]string, error) {
	var ssns []string
	if err := repo.db.WithContext(ctx).
		Model(&model.IndividualCustomerModel{}).
		Pluck("social_security_number", &ssns).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list SSNs")
	}

	var taxIDs []string
	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessCustomerModel{}).
		Pluck("tax_identification_number", &taxIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tax IDs")
	}

	identifiers := make([]string, 0, len(ssns)+len(taxIDs))
	identifiers = append(identifiers, ssns...)
	identifiers = append(identifiers, taxIDs...)
	slices.Sort(identifiers)

	return identifiers, nil
}

// UpdateBase modifies the shared contact fields of a customer.
func (repo *customerRepository) UpdateBase(ctx context.Context, customer *entity.Customer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"email":               customer.Email,
			"phone_number":        customer.PhoneNumber,
			"address_street":      customer.Address.Street,
			"address_city":        customer.Address.City,
			"address_state":       customer.Address.State,
			"address_postal_code": customer.Address.PostalCode,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// Delete removes a customer and its specialization row.
func (repo *customerRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", id).
		Delete(&model.IndividualCustomerModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete individual specialization")
	}

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", id).
		Delete(&model.BusinessCustomerModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete business specialization")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CustomerModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			// Transactions still reference this customer.
			return repository.ErrUnknownReference
		}

		return errors.Wrap(result.Error, "failed to delete customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	customer := &entity.Customer{
		ID:          data.ID,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Address: entity.Address{
			Street:     data.AddressStreet,
			City:       data.AddressCity,
			State:      data.AddressState,
			PostalCode: data.AddressPostalCode,
		},
	}

	switch {
	case data.Individual != nil:
		customer.Kind = entity.CustomerKindIndividual
		customer.Individual = &entity.IndividualProfile{
			SocialSecurityNumber: data.Individual.SocialSecurityNumber,
			FirstName:            data.Individual.FirstName,
			LastName:             data.Individual.LastName,
		}
	case data.Business != nil:
		customer.Kind = entity.CustomerKindBusiness
		customer.Business = &entity.BusinessProfile{
			TaxIdentificationNumber: data.Business.TaxIdentificationNumber,
			BusinessName:            data.Business.BusinessName,
			ContactFirstName:        data.Business.PrimaryContactFirstName,
			ContactLastName:         data.Business.PrimaryContactLastName,
			ContactTitle:            data.Business.PrimaryContactTitle,
		}
	}

	return customer
}

// fromCustomerDomain converts a domain Customer entity to a GORM
// CustomerModel. Specialization rows are written separately.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:                data.ID,
		Email:             data.Email,
		PhoneNumber:       data.PhoneNumber,
		AddressStreet:     data.Address.Street,
		AddressCity:       data.Address.City,
		AddressState:      data.Address.State,
		AddressPostalCode: data.Address.PostalCode,
	}
}
