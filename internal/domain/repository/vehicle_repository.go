// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for vehicle persistence.
var (
	// ErrVehicleNotFound is returned when a vehicle is not found.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrDuplicateVIN is returned when trying to create a vehicle whose VIN already exists.
	ErrDuplicateVIN = errors.New("vehicle already exists")
	// ErrUnknownReference is returned when a write references a lookup value,
	// vehicle, vendor, customer or user that does not exist.
	ErrUnknownReference = errors.New("referenced record does not exist")
)

// Availability selects which vehicles a search returns relative to their
// sold and pending-parts state.
type Availability string

const (
	// AvailabilityAny applies no availability filter.
	AvailabilityAny Availability = ""
	// AvailabilityForSale keeps vehicles that are unsold with no pending parts.
	AvailabilityForSale Availability = "available"
	// AvailabilityUnsold keeps vehicles without a sale, pending parts or not.
	AvailabilityUnsold Availability = "unsold"
	// AvailabilitySold keeps vehicles that have been sold.
	AvailabilitySold Availability = "sold"
)

// SearchFilter is the conjunction of search criteria. Zero values mean the
// criterion is not applied; an empty filter matches every vehicle.
type SearchFilter struct {
	VIN          string
	VehicleType  string
	Manufacturer string
	Color        string
	Condition    entity.Condition
	FuelType     entity.FuelType
	YearMin      int
	YearMax      int
	Keyword      string // Matched against manufacturer, model name, year and description.
	Availability Availability
}

// VehicleRepository defines the standard operations for vehicle persistence.
// The application layer will depend on this interface, not the concrete implementation.
type VehicleRepository interface {
	// Create persists a new vehicle together with its color associations.
	Create(ctx context.Context, vehicle *entity.Vehicle) error

	// Update modifies the mutable fields of an existing vehicle and replaces
	// its color associations. The VIN identifies the row and never changes.
	Update(ctx context.Context, vehicle *entity.Vehicle) error

	// FindByVIN retrieves a single vehicle with its colors.
	FindByVIN(ctx context.Context, vin string) (*entity.Vehicle, error)

	// FindListing retrieves one vehicle together with its derived sale and
	// parts state.
	FindListing(ctx context.Context, vin string) (*entity.VehicleListing, error)

	// Search retrieves every vehicle matching the filter, with derived state.
	Search(ctx context.Context, filter SearchFilter) ([]*entity.VehicleListing, error)

	// Counts computes the dashboard totals over the whole inventory.
	Counts(ctx context.Context) (*entity.VehicleCounts, error)
}
