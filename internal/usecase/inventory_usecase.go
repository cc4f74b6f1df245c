// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ledger/internal/domain/entity"
)

// --- Input DTOs ---

// AddVehicleInput defines the data required to take a vehicle into inventory.
type AddVehicleInput struct {
	VIN          string
	VehicleType  string
	Manufacturer string
	Condition    string
	ModelName    string
	Year         int
	FuelType     string
	Horsepower   int
	Description  string
	Colors       []string
}

// UpdateVehicleInput defines the mutable fields of a vehicle. The VIN only
// identifies the row; it cannot be changed.
type UpdateVehicleInput struct {
	VIN          string
	VehicleType  string
	Manufacturer string
	Condition    string
	ModelName    string
	Year         int
	FuelType     string
	Horsepower   int
	Description  string
	Colors       []string
}

// SearchVehiclesInput is the conjunction of search criteria together with the
// caller's role, which gates the VIN and sold-status refinements.
type SearchVehiclesInput struct {
	Role         entity.Role
	VIN          string
	VehicleType  string
	Manufacturer string
	Color        string
	Condition    string
	FuelType     string
	YearMin      int
	YearMax      int
	Keyword      string
	Availability string // "", "available", "unsold" or "sold".
}

// --- Output DTOs ---

// VehicleDetailsOutput is the full detail view of one vehicle: the listing
// plus every parts order placed against it.
type VehicleDetailsOutput struct {
	Listing     *entity.VehicleListing
	PartsOrders []*entity.PartsOrder
}

// InventoryUsecase defines the interface for vehicle inventory operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type InventoryUsecase interface {
	AddVehicle(ctx context.Context, input AddVehicleInput) (*entity.Vehicle, error)
	UpdateVehicle(ctx context.Context, input UpdateVehicleInput) (*entity.Vehicle, error)
	SearchVehicles(ctx context.Context, input SearchVehiclesInput) ([]*entity.VehicleListing, error)
	GetVehicle(ctx context.Context, vin string) (*VehicleDetailsOutput, error)
	VehicleCounts(ctx context.Context) (*entity.VehicleCounts, error)
	ListReferenceData(ctx context.Context) (*entity.ReferenceData, error)
}
