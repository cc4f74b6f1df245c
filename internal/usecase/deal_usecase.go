package usecase

import (
	"context"
	"time"

	"ledger/internal/domain/entity"
)

// --- Input DTOs ---

// RecordSaleInput defines the data required to close a sale on an
// available vehicle.
type RecordSaleInput struct {
	VIN        string
	Username   string
	CustomerID int64
	SalePrice  float64
	SoldOn     time.Time
}

// RecordPurchaseInput defines the data required to record buying a vehicle
// that already exists in inventory.
type RecordPurchaseInput struct {
	VIN           string
	Username      string
	CustomerID    int64
	PurchasePrice float64
	PurchasedOn   time.Time
}

// AcquireVehicleInput adds a vehicle and records its purchase in one step, so
// a failed purchase never leaves an orphaned vehicle behind.
type AcquireVehicleInput struct {
	Vehicle  AddVehicleInput
	Purchase RecordPurchaseInput
}

// DealUsecase defines the interface for sale and purchase transaction
// operations.
type DealUsecase interface {
	RecordSale(ctx context.Context, input RecordSaleInput) (*entity.SaleTransaction, error)
	RecordPurchase(ctx context.Context, input RecordPurchaseInput) (*entity.PurchaseTransaction, error)
	AcquireVehicle(ctx context.Context, input AcquireVehicleInput) (*entity.PurchaseTransaction, error)
	GetSaleDetails(ctx context.Context, vin string) (*entity.DealDetails, error)
	GetPurchaseDetails(ctx context.Context, vin string) (*entity.DealDetails, error)
}
