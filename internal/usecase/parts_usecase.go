package usecase

import (
	"context"

	"ledger/internal/domain/entity"
)

// --- Input DTOs ---

// PartInput is a single line item on a new parts order.
type PartInput struct {
	VendorPartsNumber string
	Description       string
	Quantity          int
	UnitPrice         float64
}

// AddPartsOrderInput defines the data required to place a parts order against
// a vehicle. When OrderNumber is empty the next "{VIN}-NNN" number is
// assigned automatically.
type AddPartsOrderInput struct {
	VIN         string
	OrderNumber string
	VendorName  string
	Parts       []PartInput
}

// UpdatePartStatusInput moves one part forward in its lifecycle.
type UpdatePartStatusInput struct {
	OrderNumber       string
	VendorPartsNumber string
	Status            string
}

// AddVendorInput defines the data required to register a parts vendor.
type AddVendorInput struct {
	Name        string
	PhoneNumber string
	Street      string
	City        string
	State       string
	PostalCode  string
}

// PartsUsecase defines the interface for parts order and vendor operations.
type PartsUsecase interface {
	AddPartsOrder(ctx context.Context, input AddPartsOrderInput) (*entity.PartsOrder, error)
	UpdatePartStatus(ctx context.Context, input UpdatePartStatusInput) (*entity.Part, error)
	AddVendor(ctx context.Context, input AddVendorInput) (*entity.Vendor, error)
	ListVendors(ctx context.Context) ([]*entity.Vendor, error)
}
