// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateIdentifier is returned when an SSN or tax ID is already registered.
	ErrDuplicateIdentifier = errors.New("customer identifier already registered")
)

// CustomerRepository defines the standard operations for customer persistence.
type CustomerRepository interface {
	// Create persists a new customer and its specialization row in one go,
	// filling in the generated ID on the entity.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a customer with its specialization.
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)

	// FindByIdentifier retrieves a customer by SSN or tax ID.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Customer, error)

	// ListIdentifiers retrieves every registered SSN and tax ID, sorted.
	ListIdentifiers(ctx context.Context) ([]string, error)

	// UpdateBase modifies the shared contact fields of a customer. The kind
	// and the specialization keys are immutable.
	UpdateBase(ctx context.Context, customer *entity.Customer) error

	// Delete removes a customer and its specialization row.
	Delete(ctx context.Context, id int64) error
}
