// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for transaction persistence.
var (
	// ErrSaleNotFound is returned when no sale exists for a vehicle.
	ErrSaleNotFound = errors.New("sale transaction not found")
	// ErrPurchaseNotFound is returned when no purchase exists for a vehicle.
	ErrPurchaseNotFound = errors.New("purchase transaction not found")
	// ErrDuplicateSale is returned when a sale already exists for the VIN.
	// Under concurrency the unique index decides the winner.
	ErrDuplicateSale = errors.New("sale already recorded for vehicle")
	// ErrDuplicatePurchase is returned when a purchase already exists for the VIN.
	ErrDuplicatePurchase = errors.New("purchase already recorded for vehicle")
)

// DealRepository defines the standard operations for sale and purchase
// transaction persistence.
type DealRepository interface {
	// CreateSale persists a sale transaction. The unique index on the VIN
	// guarantees at most one sale per vehicle even under concurrent inserts.
	CreateSale(ctx context.Context, sale *entity.SaleTransaction) error

	// CreatePurchase persists a purchase transaction, at most one per vehicle.
	CreatePurchase(ctx context.Context, purchase *entity.PurchaseTransaction) error

	// FindSaleByVIN retrieves the sale transaction for a vehicle.
	FindSaleByVIN(ctx context.Context, vin string) (*entity.SaleTransaction, error)

	// FindPurchaseByVIN retrieves the purchase transaction for a vehicle.
	FindPurchaseByVIN(ctx context.Context, vin string) (*entity.PurchaseTransaction, error)

	// GetSaleDetails retrieves the sale together with counterparty and staff names.
	GetSaleDetails(ctx context.Context, vin string) (*entity.DealDetails, error)

	// GetPurchaseDetails retrieves the purchase together with counterparty and staff names.
	GetPurchaseDetails(ctx context.Context, vin string) (*entity.DealDetails, error)
}
