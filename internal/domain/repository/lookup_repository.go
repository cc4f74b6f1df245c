// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// LookupRepository reads the immutable reference sets that constrain vehicle
// fields. The sets are seeded at setup and never mutated through this interface.
type LookupRepository interface {
	// ListVehicleTypes retrieves every valid vehicle type, sorted.
	ListVehicleTypes(ctx context.Context) ([]string, error)

	// ListManufacturers retrieves every valid manufacturer name, sorted.
	ListManufacturers(ctx context.Context) ([]string, error)

	// ListColors retrieves every valid color name, sorted.
	ListColors(ctx context.Context) ([]string, error)

	// HasVehicleType reports whether the vehicle type is in the lookup set.
	HasVehicleType(ctx context.Context, vehicleType string) (bool, error)

	// HasManufacturer reports whether the manufacturer is in the lookup set.
	HasManufacturer(ctx context.Context, manufacturer string) (bool, error)

	// MissingColors returns the subset of the given colors that are not in
	// the lookup set. An empty result means every color is valid.
	MissingColors(ctx context.Context, colors []string) ([]string, error)
}
