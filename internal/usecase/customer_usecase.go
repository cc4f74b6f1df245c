package usecase

import (
	"context"

	"ledger/internal/domain/entity"
)

// --- Input DTOs ---

// AddCustomerInput defines the data required to register a customer. Exactly
// one of Individual or Business must be set, matching Kind.
type AddCustomerInput struct {
	Kind        string
	Email       string
	PhoneNumber string
	Street      string
	City        string
	State       string
	PostalCode  string
	Individual  *IndividualInput
	Business    *BusinessInput
}

// IndividualInput carries the individual-specific customer fields.
type IndividualInput struct {
	SSN       string
	FirstName string
	LastName  string
}

// BusinessInput carries the business-specific customer fields.
type BusinessInput struct {
	TaxID            string
	BusinessName     string
	ContactFirstName string
	ContactLastName  string
	ContactTitle     string
}

// UpdateCustomerInput defines the mutable contact fields of a customer.
// The kind and the identifying number cannot change.
type UpdateCustomerInput struct {
	ID          int64
	Email       string
	PhoneNumber string
	Street      string
	City        string
	State       string
	PostalCode  string
}

// CustomerUsecase defines the interface for customer management operations.
type CustomerUsecase interface {
	AddCustomer(ctx context.Context, input AddCustomerInput) (*entity.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*entity.Customer, error)
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Customer, error)
	ListIdentifiers(ctx context.Context) ([]string, error)
	UpdateCustomer(ctx context.Context, input UpdateCustomerInput) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}
