// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for vendor persistence.
var (
	// ErrVendorNotFound is returned when a vendor is not found.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrDuplicateVendor is returned when trying to create a vendor whose name already exists.
	ErrDuplicateVendor = errors.New("vendor already exists")
)

// VendorRepository defines the standard operations for vendor persistence.
type VendorRepository interface {
	// Create persists a new vendor.
	Create(ctx context.Context, vendor *entity.Vendor) error

	// FindByName retrieves a single vendor by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Vendor, error)

	// List retrieves every vendor, sorted by name.
	List(ctx context.Context) ([]*entity.Vendor, error)
}
